// Package colorlegend is the legend explaining the marker colors of the
// traces that reference it.
package colorlegend

import (
	"embed"

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

// Register registers the colorlegend component.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent(&registry.Component{
		Name:       "colorlegend",
		Attributes: attributes,
		SupplyLayoutDefaults: markerlegend.Supply(markerlegend.Options{
			Base:        "colorlegend",
			Attributes:  attributes.Sub("colorlegend"),
			RegistryKey: "_colorlegends",
			Extra:       supplyBinning,
		}),
	})
}

func supplyBinning(inst *layoututil.Instance, _ map[string]any) {
	if inst.Coerce("binning", nil) == "auto" {
		inst.Coerce("nbins", nil)
	}
}
