package coerce

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	hexColor  = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	funcColor = regexp.MustCompile(`^(rgba?|hsla?)\(\s*([^)]*)\)$`)
)

// ParseColor parses a CSS color: hex, rgb(), rgba(), hsl(), hsla(), a CSS
// color name or "transparent". It returns the color and its alpha.
func ParseColor(s string) (colorful.Color, float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return colorful.Color{}, 0, true
	}
	if hex, ok := cssColorNames[s]; ok {
		s = hex
	}
	if hexColor.MatchString(s) {
		c, err := colorful.Hex(s)
		return c, 1, err == nil
	}

	m := funcColor.FindStringSubmatch(s)
	if m == nil {
		return colorful.Color{}, 0, false
	}
	fn := m[1]
	parts := strings.Split(m[2], ",")
	wantAlpha := strings.HasSuffix(fn, "a")
	if (wantAlpha && len(parts) != 4) || (!wantAlpha && len(parts) != 3) {
		return colorful.Color{}, 0, false
	}

	alpha := 1.0
	if wantAlpha {
		a, ok := parseComponent(parts[3], 1)
		if !ok || a < 0 || a > 1 {
			return colorful.Color{}, 0, false
		}
		alpha = a
	}

	if strings.HasPrefix(fn, "rgb") {
		var rgb [3]float64
		for i := range rgb {
			v, ok := parseComponent(parts[i], 255)
			if !ok || v < 0 || v > 255 {
				return colorful.Color{}, 0, false
			}
			rgb[i] = v / 255
		}
		return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, alpha, true
	}

	h, okH := parseComponent(parts[0], 360)
	sat, okS := parsePercent(parts[1])
	light, okL := parsePercent(parts[2])
	if !okH || !okS || !okL {
		return colorful.Color{}, 0, false
	}
	for h < 0 {
		h += 360
	}
	return colorful.Hsl(h-360*float64(int(h/360)), sat, light), alpha, true
}

// ValidColor reports whether s is a color ParseColor accepts.
func ValidColor(s string) bool {
	_, _, ok := ParseColor(s)
	return ok
}

// AddAlpha returns c with its opacity set to alpha, as an rgba() string.
// Unparseable colors are returned unchanged.
func AddAlpha(c string, alpha float64) string {
	col, _, ok := ParseColor(c)
	if !ok {
		return c
	}
	return RGBA(col, alpha)
}

// Blend mixes fg over bg: frac 0 yields bg, 1 yields fg. Both colors must
// be opaque-parseable; otherwise fg is returned unchanged.
func Blend(fg, bg string, frac float64) string {
	f, _, okF := ParseColor(fg)
	b, alphaB, okB := ParseColor(bg)
	if !okF || !okB || alphaB == 0 {
		return fg
	}
	return b.BlendRgb(f, frac).Clamped().Hex()
}

// RGBA formats a color as "rgba(r, g, b, a)".
func RGBA(c colorful.Color, alpha float64) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// parseComponent parses a plain number or a percentage of scale.
func parseComponent(s string, scale float64) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		p, ok := parsePercent(s)
		return p * scale, ok
	}
	if strings.HasSuffix(s, "deg") {
		s = strings.TrimSuffix(s, "deg")
	}
	return ToNumber(s)
}

// parsePercent parses "50%" or a bare fraction into [0, 1].
func parsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		v, ok := ToNumber(strings.TrimSuffix(s, "%"))
		if !ok || v < 0 || v > 100 {
			return 0, false
		}
		return v / 100, true
	}
	v, ok := ToNumber(s)
	if !ok || v < 0 || v > 1 {
		return 0, false
	}
	return v, true
}
