package layoututil

import (
	"github.com/specialistvlad/figcore/internal/coerce"
	"github.com/specialistvlad/figcore/internal/figure"
)

// Action resolves the visibility, method and args of an interactive array
// item, such as a menu button or a slider step. Items that can do nothing,
// with neither args nor the "skip" method, are hidden by default. The
// default reads raw values, falling back to the item's template entry.
// Reports whether the item is visible; callers coerce the rest only then.
func Action(c *coerce.Coercer) bool {
	skip := raw(c, "method") == "skip"
	if visible := c.Coerce("visible", skip || figure.IsArray(raw(c, "args"))); visible != true {
		Hide(c, "name", "templateitemname")
		return false
	}
	c.Coerce("method", nil)
	c.Coerce("args", nil)
	return true
}

func raw(c *coerce.Coercer, key string) any {
	if v := c.In()[key]; v != nil {
		return v
	}
	return c.Template()[key]
}
