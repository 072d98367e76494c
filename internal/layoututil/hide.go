package layoututil

import "github.com/specialistvlad/figcore/internal/coerce"

// Hide removes everything but the given keys and "visible" from the
// coercer's output, for instances that turned out invisible after some of
// their attributes were resolved.
func Hide(c *coerce.Coercer, keep ...string) {
	kept := map[string]bool{"visible": true}
	for _, k := range keep {
		kept[k] = true
	}
	for k := range c.Out() {
		if !kept[k] {
			c.Delete(k)
		}
	}
	c.Set("visible", false)
}
