// Package updatemenus is the update menu component: dropdowns and button
// rows whose buttons replay restyle and relayout calls.
package updatemenus

import (
	"embed"

	"github.com/specialistvlad/figcore/internal/hcl"
	"github.com/specialistvlad/figcore/internal/registry"
)

//go:embed attributes.hcl
var manifest embed.FS

var attributes = hcl.MustLoadManifest(manifest, "attributes.hcl", "layout")

// RegistryKey lists the indices of the drawn menus.
const RegistryKey = "_updatemenus"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the updatemenus component.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent(&registry.Component{
		Name:                 "updatemenus",
		Attributes:           attributes,
		SupplyLayoutDefaults: SupplyLayoutDefaults,
	})
}
