package coerce

import (
	"math"
	"regexp"
	"strings"

	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Valid checks v against leaf and returns the normalized value to store.
// The returned value never aliases v.
func Valid(leaf *schema.Leaf, v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	if leaf.ArrayOk && figure.IsArray(v) {
		return figure.CloneValue(figure.Normalize(v)), true
	}

	switch leaf.ValType {
	case schema.Any:
		return figure.CloneValue(figure.Normalize(v)), true
	case schema.Boolean:
		b, ok := v.(bool)
		return b, ok
	case schema.Number:
		return validNumber(leaf, v, false)
	case schema.Integer:
		return validNumber(leaf, v, true)
	case schema.String:
		return validString(leaf, v)
	case schema.Enumerated:
		return validEnumerated(leaf, v)
	case schema.Color:
		s, ok := v.(string)
		if !ok || !ValidColor(s) {
			return nil, false
		}
		return s, true
	case schema.FlagList:
		return validFlagList(leaf, v)
	case schema.SubplotID:
		s, ok := v.(string)
		if !ok || !IsSubplotID(s, leaf.Base) {
			return nil, false
		}
		return s, true
	case schema.DataArray:
		if !figure.IsArray(v) {
			return nil, false
		}
		return figure.CloneValue(figure.Normalize(v)), true
	case schema.InfoArray:
		return validInfoArray(leaf, v)
	}
	return nil, false
}

// ToNumber converts a number or a numeric string to a finite float64.
func ToNumber(v any) (float64, bool) {
	var f float64
	switch t := figure.Normalize(v).(type) {
	case float64:
		f = t
	case string:
		num, err := convert.Convert(cty.StringVal(strings.TrimSpace(t)), cty.Number)
		if err != nil || num.IsNull() {
			return 0, false
		}
		f, _ = num.AsBigFloat().Float64()
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func validNumber(leaf *schema.Leaf, v any, integer bool) (any, bool) {
	f, ok := ToNumber(v)
	if !ok {
		return nil, false
	}
	if integer && math.Trunc(f) != f {
		return nil, false
	}
	if leaf.Min != nil && f < *leaf.Min {
		return nil, false
	}
	if leaf.Max != nil && f > *leaf.Max {
		return nil, false
	}
	return f, true
}

func validString(leaf *schema.Leaf, v any) (any, bool) {
	var s string
	switch t := figure.Normalize(v).(type) {
	case string:
		s = t
	case float64:
		if leaf.Strict || math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, false
		}
		str, err := convert.Convert(cty.NumberFloatVal(t), cty.String)
		if err != nil {
			return nil, false
		}
		s = str.AsString()
	case bool:
		if leaf.Strict {
			return nil, false
		}
		str, err := convert.Convert(cty.BoolVal(t), cty.String)
		if err != nil {
			return nil, false
		}
		s = str.AsString()
	default:
		return nil, false
	}
	if leaf.NoBlank && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return s, true
}

func validEnumerated(leaf *schema.Leaf, v any) (any, bool) {
	v = figure.Normalize(v)
	if figure.IsArray(v) || figure.AsMap(v) != nil {
		return nil, false
	}
	for _, allowed := range leaf.Values {
		if allowed == v {
			return v, true
		}
	}
	return nil, false
}

func validFlagList(leaf *schema.Leaf, v any) (any, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil, false
	}
	for _, extra := range leaf.Extras {
		if s == extra {
			return s, true
		}
	}
	for _, part := range strings.Split(s, "+") {
		if !contains(leaf.Flags, part) {
			return nil, false
		}
	}
	return s, true
}

func validInfoArray(leaf *schema.Leaf, v any) (any, bool) {
	arr, ok := figure.Normalize(v).([]any)
	if !ok {
		return nil, false
	}
	n := len(leaf.Items)
	if leaf.FreeLength {
		n = len(arr)
	} else if len(arr) > n {
		return nil, false
	}

	dflt, _ := leaf.Default.([]any)
	out := make([]any, n)
	for i := range out {
		item, _ := leaf.ItemAt(i)
		if i < len(arr) && item != nil {
			if val, valid := Valid(item, arr[i]); valid {
				out[i] = val
				continue
			}
		}
		switch {
		case item != nil && item.Default != nil:
			out[i] = figure.CloneValue(item.Default)
		case i < len(dflt):
			out[i] = figure.CloneValue(dflt[i])
		}
	}
	return out, true
}

var subplotNumber = regexp.MustCompile(`^([2-9]|[1-9][0-9]+)$`)

// IsSubplotID reports whether id is base or base followed by a number
// greater than one: "x", "x2", "x10", but not "x1" or "x01".
func IsSubplotID(id, base string) bool {
	if id == base {
		return true
	}
	return strings.HasPrefix(id, base) && subplotNumber.MatchString(id[len(base):])
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
