package axes

import (
	"math"
	"sort"
	"strings"

	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/coerce"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/layoututil"
)

// lightFraction is how far grid lines are blended from the axis color
// toward the plot background.
const lightFraction = 10.0 / 11.0

var letters = []string{"x", "y"}

// axisName turns a trace reference into a layout key: "x2" -> "xaxis2".
func axisName(id string) string {
	return id[:1] + "axis" + id[1:]
}

// axisID is the inverse of axisName: "xaxis2" -> "x2".
func axisID(name string) string {
	return name[:1] + strings.TrimPrefix(name[1:], "axis")
}

// discover lists the axis names of one letter, ordered by number.
func discover(fullData []map[string]any, layoutIn map[string]any, letter string) []string {
	var names []string
	for _, id := range layoututil.DiscoverIDs(fullData, attrpath.Names(letter+"axis"), letter) {
		names = append(names, axisName(id))
	}
	names = layoututil.MergeIDs(names, layoututil.IDsInLayout(layoutIn, letter+"axis")...)
	sort.SliceStable(names, func(i, j int) bool {
		return layoututil.IDNumber(names[i], letter+"axis") < layoututil.IDNumber(names[j], letter+"axis")
	})
	return names
}

// SupplyLayoutDefaults resolves every referenced axis and publishes the
// drawn ones under "_xaxes" and "_yaxes". A figure without traces still
// gets one x and one y axis.
func SupplyLayoutDefaults(rc *figure.Context, layoutIn, layoutOut map[string]any, fullData []map[string]any) error {
	names := map[string][]string{}
	known := map[string]bool{}
	for _, letter := range letters {
		names[letter] = discover(fullData, layoutIn, letter)
		if len(fullData) == 0 && len(names[letter]) == 0 {
			names[letter] = []string{letter + "axis"}
		}
		for _, name := range names[letter] {
			known[axisID(name)] = true
		}
	}

	for _, letter := range letters {
		var drawn []string
		for _, name := range names[letter] {
			inst := layoututil.NewInstance(rc, attributes.Sub(letter+"axis"), layoutIn, name, letter+"axis")
			visible := inst.Coerce("visible", nil) != false
			if visible {
				supplyAxis(rc, inst, letter, layoutOut, fullData)
				supplyLinks(rc, inst, letter, layoutOut, known)
			}
			if err := inst.Err(); err != nil {
				return err
			}
			inst.Attach(layoutOut)
			if visible {
				drawn = append(drawn, name)
			}
		}
		layoututil.Publish(layoutOut, "_"+letter+"axes", drawn)
	}
	return nil
}

// tracesOn returns the visible traces drawn against axis id.
func tracesOn(fullData []map[string]any, letter, id string) []map[string]any {
	var out []map[string]any
	for _, trace := range fullData {
		if figure.IsVisible(trace) && trace[letter+"axis"] == id {
			out = append(out, trace)
		}
	}
	return out
}

func supplyAxis(rc *figure.Context, inst *layoututil.Instance, letter string, layoutOut map[string]any, fullData []map[string]any) {
	if axType := inst.Coerce("type", nil); axType == "-" {
		detected := autotype(tracesOn(fullData, letter, axisID(inst.ID)), letter)
		rc.Logger().Debug("Detected axis type.", "axis", inst.ID, "type", detected)
		inst.Set("type", detected)
	}
	axType, _ := inst.Out["type"].(string)

	color, _ := inst.Coerce("color", nil).(string)
	font := figure.AsMap(layoutOut["font"])

	inst.Coerce("title.text", nil)
	inst.Coerce("title.standoff", nil)
	inst.CoerceFont("title.font", map[string]any{
		"family": font["family"],
		"size":   bigFont(font["size"]),
		"color":  color,
	})

	// An explicit range turns autorange off.
	var dfltAutorange any
	if rng, explicit := inst.Coerce2("range", nil); explicit && completeRange(rng) {
		dfltAutorange = false
	}
	inst.Coerce("autorange", dfltAutorange)
	inst.Coerce("rangemode", nil)
	inst.Coerce("fixedrange", nil)

	if axType == "category" || axType == "multicategory" {
		supplyCategoryOrder(inst)
	}

	ticks := supplyTicks(inst, color)
	supplyTickLabels(inst, color, font)
	supplyLines(inst, color, ticks, layoutOut)

	inst.Coerce("domain", nil)
	inst.Coerce("automargin", nil)
	inst.Coerce("hoverformat", nil)
	inst.Coerce("uirevision", layoutOut["uirevision"])

	if show, _ := inst.Coerce("showspikes", nil).(bool); show {
		inst.Coerce("spikecolor", nil)
		inst.Coerce("spikethickness", nil)
		inst.Coerce("spikemode", nil)
	}
}

// completeRange reports whether both range ends are set.
func completeRange(v any) bool {
	rng, ok := v.([]any)
	return ok && len(rng) == 2 && rng[0] != nil && rng[1] != nil
}

// supplyCategoryOrder defaults categoryorder to "array" when the user gave
// a categoryarray. "array" without a usable array falls back to "trace".
func supplyCategoryOrder(inst *layoututil.Instance) {
	dflt := "trace"
	if raw, ok := inst.Input("categoryarray"); ok && figure.ArrayLen(raw) > 0 {
		dflt = "array"
	}
	if inst.Coerce("categoryorder", dflt) != "array" {
		return
	}
	if figure.ArrayLen(inst.Coerce("categoryarray", nil)) == 0 {
		inst.Delete("categoryarray")
		inst.Set("categoryorder", "trace")
	}
}

// supplyTicks resolves tick marks. Setting any of ticklen, tickwidth or
// tickcolor turns ticks on; with ticks off the three are dropped.
func supplyTicks(inst *layoututil.Instance, color string) string {
	_, lenSet := inst.Coerce2("ticklen", nil)
	_, widthSet := inst.Coerce2("tickwidth", nil)
	_, colorSet := inst.Coerce2("tickcolor", color)
	dflt := ""
	if lenSet || widthSet || colorSet {
		dflt = "outside"
	}
	ticks, _ := inst.Coerce("ticks", dflt).(string)
	if ticks == "" {
		inst.Delete("ticklen")
		inst.Delete("tickwidth")
		inst.Delete("tickcolor")
	}

	dfltMode := "auto"
	if raw, ok := inst.Input("tickvals"); ok && figure.ArrayLen(raw) > 0 {
		dfltMode = "array"
	} else if inputGiven(inst, "tick0") || inputGiven(inst, "dtick") {
		dfltMode = "linear"
	}
	switch inst.Coerce("tickmode", dfltMode) {
	case "array":
		inst.Coerce("tickvals", nil)
		inst.Coerce("ticktext", nil)
	case "linear":
		inst.Coerce("tick0", 0.0)
		inst.Coerce("dtick", 1.0)
	default:
		inst.Coerce("nticks", nil)
	}
	return ticks
}

func supplyTickLabels(inst *layoututil.Instance, color string, font map[string]any) {
	if show, _ := inst.Coerce("showticklabels", nil).(bool); !show {
		return
	}
	inst.CoerceFont("tickfont", map[string]any{
		"family": font["family"],
		"size":   font["size"],
		"color":  color,
	})
	inst.Coerce("tickangle", nil)
	inst.Coerce("tickformat", nil)
	inst.Coerce("tickprefix", nil)
	inst.Coerce("ticksuffix", nil)
}

// supplyLines resolves the axis line, grid and zero line. Grid lines
// default to the axis color blended into the plot background.
func supplyLines(inst *layoututil.Instance, color, ticks string, layoutOut map[string]any) {
	showLine, _ := inst.Coerce("showline", nil).(bool)
	if showLine {
		inst.Coerce("linecolor", color)
		inst.Coerce("linewidth", nil)
	}
	if showLine || ticks != "" {
		inst.Coerce("mirror", nil)
	}

	showGrid, _ := inst.Coerce("showgrid", true).(bool)
	if showGrid {
		bg, _ := layoutOut["plot_bgcolor"].(string)
		inst.Coerce("gridcolor", coerce.Blend(color, bg, 1-lightFraction))
		inst.Coerce("gridwidth", nil)
	}
	if zero, _ := inst.Coerce("zeroline", showGrid).(bool); zero {
		inst.Coerce("zerolinecolor", color)
		inst.Coerce("zerolinewidth", nil)
	}
}

// supplyLinks resolves anchoring and the matches and scaleanchor
// constraints. References to missing axes or to the axis itself are
// dropped. When both constraints are set, matches wins.
func supplyLinks(rc *figure.Context, inst *layoututil.Instance, letter string, layoutOut map[string]any, known map[string]bool) {
	id := axisID(inst.ID)
	dropInvalid := func(attr string) string {
		ref, _ := inst.Coerce(attr, nil).(string)
		if ref == "" {
			return ""
		}
		if ref == id || !known[ref] {
			rc.Logger().Debug("Dropping axis reference.", "axis", inst.ID, "attribute", attr, "ref", ref)
			inst.Delete(attr)
			return ""
		}
		return ref
	}

	dropInvalid("anchor")
	dropInvalid("overlaying")
	inst.Coerce("side", nil)

	matches := dropInvalid("matches")
	scaleanchor := dropInvalid("scaleanchor")
	if scaleanchor != "" && matches != "" {
		rc.Logger().Debug("Axis both matches and scales to another axis, keeping matches.", "axis", inst.ID)
		inst.Delete("scaleanchor")
		scaleanchor = ""
	}
	if scaleanchor != "" {
		if closesCycle(layoutOut, id, scaleanchor) {
			rc.Logger().Debug("Dropping circular scaleanchor.", "axis", inst.ID, "ref", scaleanchor)
			inst.Delete("scaleanchor")
			return
		}
		inst.Coerce("scaleratio", nil)
		inst.Coerce("constrain", nil)
	}
}

// closesCycle reports whether anchoring axis id to ref would close a loop
// through the scaleanchor links of the axes resolved so far.
func closesCycle(layoutOut map[string]any, id, ref string) bool {
	seen := map[string]bool{}
	for ref != "" && !seen[ref] {
		if ref == id {
			return true
		}
		seen[ref] = true
		ref, _ = figure.AsMap(layoutOut[axisName(ref)])["scaleanchor"].(string)
	}
	return false
}

func inputGiven(inst *layoututil.Instance, path string) bool {
	v, ok := inst.Input(path)
	return ok && v != nil
}

// bigFont is the title size for a base font size.
func bigFont(size any) any {
	f, ok := size.(float64)
	if !ok {
		return nil
	}
	return math.Round(f * 1.2)
}
