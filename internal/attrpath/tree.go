package attrpath

import (
	"errors"
	"fmt"
)

// Get retrieves the value at path from a nested tree of maps and slices.
func Get(tree map[string]any, p Path) (any, bool) {
	if tree == nil || len(p) == 0 {
		return nil, false
	}

	var current any = tree
	for _, seg := range p {
		switch node := current.(type) {
		case map[string]any:
			if seg.IsIndex() {
				return nil, false
			}
			v, ok := node[seg.Name]
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			if !seg.IsIndex() || seg.Index >= len(node) {
				return nil, false
			}
			current = node[seg.Index]
		default:
			return nil, false
		}
	}
	return current, true
}

// GetMap is Get for values expected to be containers.
func GetMap(tree map[string]any, p Path) map[string]any {
	v, _ := Get(tree, p)
	m, _ := v.(map[string]any)
	return m
}

// ErrIndexOutOfRange is returned by Set for an index past the end of its
// array. Arrays grow by appending only.
var ErrIndexOutOfRange = errors.New("index out of range")

// Set writes value at path, creating intermediate maps and slices as needed.
// An index may address an existing element or the one just past the end;
// anything further fails with ErrIndexOutOfRange and leaves tree untouched.
func Set(tree map[string]any, p Path, value any) error {
	if tree == nil || len(p) == 0 {
		return nil
	}
	if err := CheckSet(tree, p); err != nil {
		return err
	}
	setIn(tree, p, value)
	return nil
}

// CheckSet reports whether Set could write at path without leaving a gap in
// any array along the way.
func CheckSet(tree map[string]any, p Path) error {
	var current any = tree
	for i, seg := range p {
		if !seg.IsIndex() {
			m, _ := current.(map[string]any)
			current = m[seg.Name]
			continue
		}
		arr, _ := current.([]any)
		if seg.Index > len(arr) {
			return fmt.Errorf("%s: %w (length %d)", p[:i+1], ErrIndexOutOfRange, len(arr))
		}
		current = nil
		if seg.Index < len(arr) {
			current = arr[seg.Index]
		}
	}
	return nil
}

func setIn(container any, p Path, value any) any {
	seg := p[0]
	rest := p[1:]

	if seg.IsIndex() {
		arr, _ := container.([]any)
		if seg.Index == len(arr) {
			arr = append(arr, nil)
		}
		if len(rest) == 0 {
			arr[seg.Index] = value
		} else {
			arr[seg.Index] = setIn(childFor(arr[seg.Index], rest[0]), rest, value)
		}
		return arr
	}

	m, ok := container.(map[string]any)
	if !ok {
		m = make(map[string]any)
	}
	if len(rest) == 0 {
		m[seg.Name] = value
	} else {
		m[seg.Name] = setIn(childFor(m[seg.Name], rest[0]), rest, value)
	}
	return m
}

// childFor returns the existing child when it has the right shape for the
// next segment, or a fresh container otherwise.
func childFor(existing any, next Segment) any {
	if next.IsIndex() {
		if arr, ok := existing.([]any); ok {
			return arr
		}
		return []any{}
	}
	if m, ok := existing.(map[string]any); ok {
		return m
	}
	return make(map[string]any)
}

// Delete removes the value at path. Deleting an array element removes it and
// shifts later elements down. Returns true if something was removed.
func Delete(tree map[string]any, p Path) bool {
	if tree == nil || len(p) == 0 {
		return false
	}
	parentPath, last := p.Parent()

	var parent any = tree
	if len(parentPath) > 0 {
		v, ok := Get(tree, parentPath)
		if !ok {
			return false
		}
		parent = v
	}

	switch node := parent.(type) {
	case map[string]any:
		if last.IsIndex() {
			return false
		}
		if _, ok := node[last.Name]; !ok {
			return false
		}
		delete(node, last.Name)
		return true
	case []any:
		if !last.IsIndex() || last.Index >= len(node) {
			return false
		}
		shrunk := append(node[:last.Index:last.Index], node[last.Index+1:]...)
		Set(tree, parentPath, shrunk)
		return true
	}
	return false
}
