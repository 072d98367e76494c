package updatemenus

import (
	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/coerce"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/layoututil"
)

// SupplyLayoutDefaults resolves layout.updatemenus. A menu is visible by
// default when at least one of its buttons is.
func SupplyLayoutDefaults(rc *figure.Context, layoutIn, layoutOut map[string]any, _ []map[string]any) error {
	menus, err := layoututil.ArrayDefaults(rc, layoututil.ArrayOptions{
		Schema:   attributes.Array("updatemenus"),
		In:       layoutIn,
		Out:      layoutOut,
		Template: rc.LayoutTemplate,
		Prefix:   figure.LayoutPath(),
		Item: func(c *coerce.Coercer, index int) error {
			return supplyMenu(rc, c, index, layoutOut)
		},
	})
	if err != nil {
		return err
	}

	var drawn []int
	for i, menu := range menus {
		if figure.IsVisible(menu) {
			drawn = append(drawn, i)
		}
	}
	layoututil.PublishIndices(layoutOut, RegistryKey, drawn)
	return nil
}

func supplyMenu(rc *figure.Context, c *coerce.Coercer, index int, layoutOut map[string]any) error {
	prefix := figure.LayoutPath().Append(attrpath.NameSegment("updatemenus"), attrpath.IndexSegment(index))
	buttons, err := layoututil.ArrayDefaults(rc, layoututil.ArrayOptions{
		Schema:   c.Attributes().Array("buttons"),
		In:       c.In(),
		Out:      c.Out(),
		Template: c.Template(),
		Prefix:   prefix,
		Item:     supplyButton,
	})
	if err != nil {
		return err
	}

	anyVisible := false
	for _, b := range buttons {
		if b["visible"] == true {
			anyVisible = true
			break
		}
	}
	if visible := c.Coerce("visible", anyVisible); visible != true {
		layoututil.Hide(c, "name", "templateitemname")
		return nil
	}

	c.Coerce("active", nil)
	c.Coerce("type", nil)
	c.Coerce("direction", nil)
	c.Coerce("showactive", nil)
	c.Coerce("x", nil)
	c.Coerce("xanchor", nil)
	c.Coerce("y", nil)
	c.Coerce("yanchor", nil)
	for _, side := range []string{"t", "r", "b", "l"} {
		c.Coerce("pad."+side, nil)
	}
	c.CoerceFont("font", figure.AsMap(layoutOut["font"]))
	c.Coerce("bgcolor", layoutOut["paper_bgcolor"])
	c.Coerce("bordercolor", nil)
	c.Coerce("borderwidth", nil)
	return nil
}

func supplyButton(c *coerce.Coercer, _ int) error {
	if !layoututil.Action(c) {
		return nil
	}
	c.Coerce("args2", nil)
	c.Coerce("label", nil)
	c.Coerce("execute", nil)
	return nil
}
