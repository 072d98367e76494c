package legend

import (
	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/layoututil"
)

var placement = layoututil.Placement{
	Vertical:   layoututil.Anchor{X: 1.02, XAnchor: "left", Y: 1, YAnchor: "auto"},
	Horizontal: layoututil.Anchor{X: 0, XAnchor: "left", Y: -0.1, YAnchor: "top"},
}

// entries summarizes the traces that can be listed in legends.
type entries struct {
	count    int
	explicit bool
	grouped  bool
	ids      []string
}

func collect(rc *figure.Context, fullData []map[string]any) entries {
	var e entries
	for i, trace := range fullData {
		if !figure.IsVisible(trace) {
			continue
		}
		// Only trace types with a legend entry resolve showlegend.
		if show, _ := trace["showlegend"].(bool); !show {
			continue
		}
		e.count++
		if rc.Provenance.IsUser(figure.TracePath(i).Append(attrpath.NameSegment("showlegend")).String()) {
			e.explicit = true
		}
		if group, _ := trace["legendgroup"].(string); group != "" {
			e.grouped = true
		}
		if id, ok := trace["legend"].(string); ok {
			e.ids = layoututil.MergeIDs(e.ids, id)
		}
	}
	return e
}

// SupplyLayoutDefaults resolves showlegend and every legend that an
// eligible trace references. Legends are skipped entirely when showlegend
// is false.
func SupplyLayoutDefaults(rc *figure.Context, layoutIn, layoutOut map[string]any, fullData []map[string]any) error {
	e := collect(rc, fullData)

	c := layoututil.LayoutCoercer(rc, attributes, layoutIn, layoutOut)
	show, _ := c.Coerce("showlegend", e.count > 1 || e.explicit).(bool)
	if err := c.Err(); err != nil {
		return err
	}
	if !show {
		layoututil.Publish(layoutOut, RegistryKey, nil)
		return nil
	}

	legendAttrs := attributes.Sub("legend")
	var drawn []string
	for _, id := range e.ids {
		inst := layoututil.NewInstance(rc, legendAttrs, layoutIn, id, "legend")
		if visible := inst.Coerce("visible", nil); visible == false {
			inst.Attach(layoutOut)
			continue
		}
		supplyLegend(inst, layoutOut, e.grouped)
		if err := inst.Err(); err != nil {
			return err
		}
		inst.Attach(layoutOut)
		drawn = append(drawn, id)
	}
	rc.Logger().Debug("Legends resolved.", "entries", e.count, "legends", drawn)
	layoututil.Publish(layoutOut, RegistryKey, drawn)
	return nil
}

func supplyLegend(inst *layoututil.Instance, layoutOut map[string]any, grouped bool) {
	inst.Coerce("bgcolor", layoutOut["paper_bgcolor"])
	inst.Coerce("bordercolor", nil)
	inst.Coerce("borderwidth", nil)
	font := inst.CoerceFont("font", figure.AsMap(layoutOut["font"]))

	orientation := inst.Position(placement)

	order := "normal"
	if barmode := layoutOut["barmode"]; orientation == "v" && (barmode == "stack" || barmode == "relative") {
		order = "reversed"
	}
	if grouped {
		if order == "normal" {
			order = "grouped"
		} else {
			order += "+grouped"
		}
	}
	inst.Coerce("traceorder", order)
	if grouped {
		inst.Coerce("tracegroupgap", nil)
	}

	inst.Coerce("itemsizing", nil)
	inst.Coerce("itemwidth", nil)
	inst.Coerce("itemclick", nil)
	inst.Coerce("itemdoubleclick", nil)
	inst.Coerce("groupclick", nil)
	inst.Coerce("valign", nil)

	if text := inst.Coerce("title.text", nil); text != nil {
		side := "top"
		if orientation == "h" {
			side = "left"
		}
		inst.Coerce("title.side", side)
		inst.CoerceFont("title.font", font)
	}
	inst.Coerce("uirevision", layoutOut["uirevision"])
}
