package figure

import "strings"

// CloneValue deep-copies maps and slices. Scalars are returned as is.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = CloneValue(e)
		}
		return out
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	case []int:
		out := make([]int, len(t))
		copy(out, t)
		return out
	default:
		return v
	}
}

// CloneMap deep-copies a tree. A nil map yields nil.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = CloneValue(v)
	}
	return out
}

// Normalize converts a decoded tree into the canonical shape used by the
// engine: every integer becomes float64, map[any]any becomes
// map[string]any and typed slices become []any. It returns a new value.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			if s, ok := k.(string); ok {
				out[s] = Normalize(e)
			}
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	case int:
		return float64(t)
	case int8:
		return float64(t)
	case int16:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint8:
		return float64(t)
	case uint16:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}

// NormalizeMap is Normalize for a tree root. Non-map results yield nil.
func NormalizeMap(m map[string]any) map[string]any {
	out, _ := Normalize(m).(map[string]any)
	return out
}

// StripPrivate returns a copy of the tree without keys that start with an
// underscore, at any depth.
func StripPrivate(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			if strings.HasPrefix(k, "_") {
				continue
			}
			out[k] = StripPrivate(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = StripPrivate(e)
		}
		return out
	default:
		return CloneValue(v)
	}
}

// AsMap returns v as a tree, or nil.
func AsMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// IsArray reports whether v is a slice value carried by a tree.
func IsArray(v any) bool {
	switch v.(type) {
	case []any, []string, []float64, []int, []map[string]any:
		return true
	}
	return false
}

// ArrayLen returns the length of an array value, or 0.
func ArrayLen(v any) int {
	switch t := v.(type) {
	case []any:
		return len(t)
	case []string:
		return len(t)
	case []float64:
		return len(t)
	case []int:
		return len(t)
	case []map[string]any:
		return len(t)
	}
	return 0
}

// IsVisible reports whether a resolved trace or component is shown.
// "legendonly" traces count as visible.
func IsVisible(m map[string]any) bool {
	v, ok := m["visible"]
	if !ok {
		return true
	}
	b, isBool := v.(bool)
	return !isBool || b
}
