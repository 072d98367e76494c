// Package sizelegend is the legend that samples the marker sizes of the
// traces referencing it.
package sizelegend

import (
	"embed"

	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/hcl"
	"github.com/specialistvlad/figcore/internal/layoututil"
	"github.com/specialistvlad/figcore/internal/markerlegend"
	"github.com/specialistvlad/figcore/internal/registry"
)

//go:embed attributes.hcl
var manifest embed.FS

var attributes = hcl.MustLoadManifest(manifest, "attributes.hcl", "layout")

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sizelegend component.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent(&registry.Component{
		Name:       "sizelegend",
		Attributes: attributes,
		SupplyLayoutDefaults: markerlegend.Supply(markerlegend.Options{
			Base:        "sizelegend",
			Attributes:  attributes.Sub("sizelegend"),
			RegistryKey: "_sizelegends",
			Extra:       supplySamples,
		}),
	})
}

// Sample markers are drawn in the legend's font color unless set.
func supplySamples(inst *layoututil.Instance, _ map[string]any) {
	inst.Coerce("nsamples", nil)
	font := figure.AsMap(inst.Out["font"])
	inst.Coerce("markercolor", font["color"])
}
