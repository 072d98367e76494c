// Package symbollegend is the legend listing the marker symbols used by
// the traces referencing it.
package symbollegend

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

// Register registers the symbollegend component.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent(&registry.Component{
		Name:       "symbollegend",
		Attributes: attributes,
		SupplyLayoutDefaults: markerlegend.Supply(markerlegend.Options{
			Base:        "symbollegend",
			Attributes:  attributes.Sub("symbollegend"),
			RegistryKey: "_symbollegends",
			Extra: func(inst *layoututil.Instance, _ map[string]any) {
				inst.Coerce("markersize", nil)
				inst.Coerce("markercolor", figure.AsMap(inst.Out["font"])["color"])
			},
		}),
	})
}
