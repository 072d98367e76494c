package sliders

import (
	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/coerce"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/layoututil"
)

// SupplyLayoutDefaults resolves layout.sliders.
func SupplyLayoutDefaults(rc *figure.Context, layoutIn, layoutOut map[string]any, _ []map[string]any) error {
	sliders, err := layoututil.ArrayDefaults(rc, layoututil.ArrayOptions{
		Schema:   attributes.Array("sliders"),
		In:       layoutIn,
		Out:      layoutOut,
		Template: rc.LayoutTemplate,
		Prefix:   figure.LayoutPath(),
		Item: func(c *coerce.Coercer, index int) error {
			return supplySlider(rc, c, index, layoutOut)
		},
	})
	if err != nil {
		return err
	}

	var drawn []int
	for i, slider := range sliders {
		if figure.IsVisible(slider) {
			drawn = append(drawn, i)
		}
	}
	layoututil.PublishIndices(layoutOut, RegistryKey, drawn)
	return nil
}

func supplySlider(rc *figure.Context, c *coerce.Coercer, index int, layoutOut map[string]any) error {
	steps, err := layoututil.ArrayDefaults(rc, layoututil.ArrayOptions{
		Schema:   c.Attributes().Array("steps"),
		In:       c.In(),
		Out:      c.Out(),
		Template: c.Template(),
		Prefix:   figure.LayoutPath().Append(attrpath.NameSegment("sliders"), attrpath.IndexSegment(index)),
		Item:     supplyStep,
	})
	if err != nil {
		return err
	}

	visibleSteps := 0
	for _, s := range steps {
		if s["visible"] == true {
			visibleSteps++
		}
	}
	if visible := c.Coerce("visible", visibleSteps > 0); visible != true {
		layoututil.Hide(c, "name", "templateitemname")
		return nil
	}

	// The active step must exist.
	if active, _ := c.Coerce("active", nil).(float64); len(steps) > 0 && active > float64(len(steps)-1) {
		c.Set("active", float64(len(steps)-1))
	}

	for _, attr := range []string{"lenmode", "len", "x", "xanchor", "y", "yanchor"} {
		c.Coerce(attr, nil)
	}
	for _, side := range []string{"t", "r", "b", "l"} {
		c.Coerce("pad."+side, nil)
	}

	font := c.CoerceFont("font", figure.AsMap(layoutOut["font"]))
	if show, _ := c.Coerce("currentvalue.visible", nil).(bool); show {
		c.Coerce("currentvalue.xanchor", nil)
		c.Coerce("currentvalue.offset", nil)
		c.Coerce("currentvalue.prefix", nil)
		c.Coerce("currentvalue.suffix", nil)
		c.CoerceFont("currentvalue.font", font)
	}

	c.Coerce("transition.duration", nil)
	c.Coerce("transition.easing", nil)

	for _, attr := range []string{
		"bgcolor", "activebgcolor", "bordercolor", "borderwidth",
		"ticklen", "tickwidth", "tickcolor", "minorticklen",
	} {
		c.Coerce(attr, nil)
	}
	return nil
}

// supplyStep resolves one step. The step value defaults to its label.
func supplyStep(c *coerce.Coercer, _ int) error {
	if !layoututil.Action(c) {
		return nil
	}
	label := c.Coerce("label", nil)
	c.Coerce("value", label)
	c.Coerce("execute", nil)
	return nil
}
