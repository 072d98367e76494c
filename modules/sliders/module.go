// Package sliders is the slider component. Each step of a slider replays a
// restyle, relayout or animate call.
package sliders

import (
	"embed"

	"github.com/specialistvlad/figcore/internal/hcl"
	"github.com/specialistvlad/figcore/internal/registry"
)

//go:embed attributes.hcl
var manifest embed.FS

var attributes = hcl.MustLoadManifest(manifest, "attributes.hcl", "layout")

// RegistryKey lists the indices of the drawn sliders.
const RegistryKey = "_sliders"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sliders component.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent(&registry.Component{
		Name:                 "sliders",
		Attributes:           attributes,
		SupplyLayoutDefaults: SupplyLayoutDefaults,
	})
}
