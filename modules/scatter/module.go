// Package scatter is the scatter trace type: points, lines and filled areas
// over cartesian axes.
package scatter

import (
	"embed"
	"strings"

	"github.com/specialistvlad/figcore/internal/coerce"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/hcl"
	"github.com/specialistvlad/figcore/internal/registry"
)

//go:embed attributes.hcl
var manifest embed.FS

// linesOnlyPoints is the series length from which mode defaults to plain
// lines instead of lines+markers.
const linesOnlyPoints = 20

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the scatter trace type.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTraceType(&registry.TraceType{
		Name:           "scatter",
		Attributes:     hcl.MustLoadManifest(manifest, "attributes.hcl", "scatter"),
		HasLegend:      true,
		Cartesian:      true,
		SupplyDefaults: SupplyDefaults,
	})
}

// SupplyDefaults resolves a scatter trace. A trace without data is hidden.
func SupplyDefaults(rc *figure.Context, c *coerce.Coercer, defaultColor string, layoutOut map[string]any) error {
	n := pointCount(c.Coerce("x", nil), c.Coerce("y", nil))
	if n == 0 {
		rc.Logger().Debug("Scatter trace has no data, hiding it.")
		c.Set("visible", false)
		return nil
	}

	dfltMode := "lines"
	if n < linesOnlyPoints {
		dfltMode = "lines+markers"
	}
	mode, _ := c.Coerce("mode", dfltMode).(string)

	c.Coerce("text", nil)
	if hasFlag(mode, "text") {
		c.Coerce("textposition", nil)
	}

	lineColor := defaultColor
	if hasFlag(mode, "lines") {
		if v, ok := c.Coerce("line.color", defaultColor).(string); ok {
			lineColor = v
		}
		c.Coerce("line.width", nil)
		c.Coerce("line.dash", nil)
		c.Coerce("line.shape", nil)
		c.Coerce("connectgaps", nil)
	}

	if hasFlag(mode, "markers") {
		c.Coerce("marker.color", defaultColor)
		c.Coerce("marker.size", nil)
		c.Coerce("marker.symbol", nil)
		c.Coerce("marker.opacity", nil)
		c.Coerce("marker.line.color", nil)
		c.Coerce("marker.line.width", nil)
		c.Coerce("marker.colorlegend", nil)
		c.Coerce("marker.sizelegend", nil)
		c.Coerce("marker.symbollegend", nil)
	}

	if fill := c.Coerce("fill", nil); fill != "none" {
		c.Coerce("fillcolor", coerce.AddAlpha(lineColor, 0.5))
	}
	return nil
}

// pointCount is the number of drawable points. A missing coordinate array
// is implied from the other one's indices.
func pointCount(x, y any) int {
	switch {
	case x != nil && y != nil:
		return min(figure.ArrayLen(x), figure.ArrayLen(y))
	case y != nil:
		return figure.ArrayLen(y)
	case x != nil:
		return figure.ArrayLen(x)
	}
	return 0
}

func hasFlag(flaglist, flag string) bool {
	for _, part := range strings.Split(flaglist, "+") {
		if part == flag {
			return true
		}
	}
	return false
}
