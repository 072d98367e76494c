// Package bar is the bar trace type and the layout attributes that arrange
// bars sharing a location.
package bar

import (
	"embed"

	"github.com/specialistvlad/figcore/internal/coerce"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/hcl"
	"github.com/specialistvlad/figcore/internal/layoututil"
	"github.com/specialistvlad/figcore/internal/registry"
)

//go:embed attributes.hcl layout_attributes.hcl
var manifests embed.FS

var (
	traceAttributes  = hcl.MustLoadManifest(manifests, "attributes.hcl", "bar")
	layoutAttributes = hcl.MustLoadManifest(manifests, "layout_attributes.hcl", "layout")
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the bar trace type.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTraceType(&registry.TraceType{
		Name:                 "bar",
		Attributes:           traceAttributes,
		HasLegend:            true,
		Cartesian:            true,
		SupplyDefaults:       SupplyDefaults,
		LayoutAttributes:     layoutAttributes,
		SupplyLayoutDefaults: SupplyLayoutDefaults,
	})
}

// SupplyDefaults resolves a bar trace. A trace without data is hidden.
func SupplyDefaults(rc *figure.Context, c *coerce.Coercer, defaultColor string, layoutOut map[string]any) error {
	x := c.Coerce("x", nil)
	y := c.Coerce("y", nil)
	if figure.ArrayLen(x) == 0 && figure.ArrayLen(y) == 0 {
		rc.Logger().Debug("Bar trace has no data, hiding it.")
		c.Set("visible", false)
		return nil
	}

	dfltOrientation := "v"
	if x != nil && y == nil {
		dfltOrientation = "h"
	}
	c.Coerce("orientation", dfltOrientation)

	c.Coerce("base", nil)
	c.Coerce("width", nil)
	c.Coerce("offset", nil)
	c.Coerce("text", nil)
	c.Coerce("textposition", nil)

	c.Coerce("marker.color", defaultColor)
	c.Coerce("marker.opacity", nil)
	c.Coerce("marker.line.color", nil)
	c.Coerce("marker.line.width", nil)
	c.Coerce("marker.colorlegend", nil)
	return nil
}

// SupplyLayoutDefaults resolves barmode and the gaps between bars.
func SupplyLayoutDefaults(rc *figure.Context, layoutIn, layoutOut map[string]any, fullData []map[string]any) error {
	c := layoututil.LayoutCoercer(rc, layoutAttributes, layoutIn, layoutOut)

	mode := c.Coerce("barmode", nil)
	c.Coerce("barnorm", nil)
	dfltGap := 0.2
	if mode == "overlay" && len(fullData) == 1 {
		dfltGap = 0
	}
	c.Coerce("bargap", dfltGap)
	c.Coerce("bargroupgap", nil)
	return c.Err()
}
