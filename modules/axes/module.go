// Package axes is the cartesian axes component. Axes are numbered per
// letter ("xaxis", "xaxis2", "yaxis", ...) and exist when a visible trace
// is drawn against them or the layout names them.
package axes

import (
	"embed"
	"fmt"

	"github.com/specialistvlad/figcore/internal/hcl"
	"github.com/specialistvlad/figcore/internal/registry"
	"github.com/specialistvlad/figcore/internal/schema"
)

//go:embed axis.hcl xaxis.hcl yaxis.hcl
var manifests embed.FS

var attributes = schema.NewContainer("layout").
	Add(axisAttributes("x")).
	Add(axisAttributes("y"))

// axisAttributes joins the shared axis schema with the linkage attributes
// of one letter.
func axisAttributes(letter string) *schema.Container {
	name := letter + "axis"
	common := hcl.MustLoadManifest(manifests, "axis.hcl", name)
	links := hcl.MustLoadManifest(manifests, name+".hcl", name)
	merged, conflicts := common.Merge(links)
	if len(conflicts) > 0 {
		panic(fmt.Sprintf("axes: %s redefines shared attributes %v", name, conflicts))
	}
	merged.Numbered = true
	return merged
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the axes component.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent(&registry.Component{
		Name:                 "axes",
		Attributes:           attributes,
		SupplyLayoutDefaults: SupplyLayoutDefaults,
	})
}
