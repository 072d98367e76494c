// Package markerlegend resolves the data-driven legends that explain a
// marker property rather than list traces: colorlegend, sizelegend and
// symbollegend. Traces opt in with marker.<base> = "<base>N".
package markerlegend

import (
	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/layoututil"
	"github.com/specialistvlad/figcore/internal/registry"
	"github.com/specialistvlad/figcore/internal/schema"
)

// Placement is shared by every marker legend: right of the plot area,
// vertically centered, or under it when horizontal.
var Placement = layoututil.Placement{
	Vertical:   layoututil.Anchor{X: 1.02, XAnchor: "left", Y: 0.5, YAnchor: "middle"},
	Horizontal: layoututil.Anchor{X: 1, XAnchor: "right", Y: -0.15, YAnchor: "top"},
}

// Options describes one kind of marker legend.
type Options struct {
	// Base is both the layout container name and the marker attribute that
	// references it, e.g. "colorlegend".
	Base string
	// Attributes is the schema of the numbered layout container.
	Attributes *schema.Container
	// RegistryKey lists the drawn legend ids, e.g. "_colorlegends".
	RegistryKey string
	// Extra coerces the attributes specific to this kind of legend.
	Extra func(inst *layoututil.Instance, layoutOut map[string]any)
}

// Supply returns the layout defaults routine for a marker legend kind.
// A legend exists only when a visible trace references it.
func Supply(opts Options) registry.SupplyLayoutFunc {
	return func(rc *figure.Context, layoutIn, layoutOut map[string]any, fullData []map[string]any) error {
		ids := layoututil.DiscoverIDs(fullData, attrpath.Names("marker", opts.Base), opts.Base)

		var drawn []string
		for _, id := range ids {
			inst := layoututil.NewInstance(rc, opts.Attributes, layoutIn, id, opts.Base)
			if visible := inst.Coerce("visible", nil); visible == false {
				inst.Attach(layoutOut)
				continue
			}
			supplyCommon(inst, layoutOut)
			if opts.Extra != nil {
				opts.Extra(inst, layoutOut)
			}
			if err := inst.Err(); err != nil {
				return err
			}
			inst.Attach(layoutOut)
			drawn = append(drawn, id)
		}
		if len(ids) > 0 {
			rc.Logger().Debug("Marker legends resolved.", "kind", opts.Base, "legends", drawn)
		}
		layoututil.Publish(layoutOut, opts.RegistryKey, drawn)
		return nil
	}
}

func supplyCommon(inst *layoututil.Instance, layoutOut map[string]any) {
	inst.Coerce("bgcolor", layoutOut["paper_bgcolor"])
	inst.Coerce("bordercolor", nil)
	inst.Coerce("borderwidth", nil)
	font := inst.CoerceFont("font", figure.AsMap(layoutOut["font"]))
	inst.Position(Placement)
	if text := inst.Coerce("title.text", nil); text != nil {
		inst.CoerceFont("title.font", font)
	}
	inst.Coerce("itemclick", nil)
}
