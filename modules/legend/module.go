// Package legend is the trace legend component. A figure can hold several
// legends ("legend", "legend2", ...); each trace lists itself in the one its
// "legend" attribute names.
package legend

import (
	"embed"

	"github.com/specialistvlad/figcore/internal/hcl"
	"github.com/specialistvlad/figcore/internal/registry"
)

//go:embed attributes.hcl
var manifest embed.FS

var attributes = hcl.MustLoadManifest(manifest, "attributes.hcl", "layout")

// RegistryKey is the layout key listing the ids of the drawn legends.
const RegistryKey = "_legends"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the legend component.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent(&registry.Component{
		Name:                 "legend",
		Attributes:           attributes,
		SupplyLayoutDefaults: SupplyLayoutDefaults,
	})
}
