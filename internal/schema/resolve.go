package schema

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/figcore/internal/attrpath"
)

// ErrNotFound is returned when a path does not exist in a schema.
var ErrNotFound = errors.New("attribute not found in schema")

// PathError describes a failed schema path resolution.
type PathError struct {
	Path   attrpath.Path
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("schema path %q: %s", e.Path.String(), e.Reason)
}

func (e *PathError) Unwrap() error { return ErrNotFound }

// Resolve walks p from root and returns the node it addresses.
//
// An index into an array container resolves to the item container, except
// when the index is the final segment: then the array container itself is
// returned, since replacing or removing a whole item has the array's edit
// semantics. Indices into info_array, array_ok and data_array leaves
// resolve to the item schema or the leaf itself.
func Resolve(root *Container, p attrpath.Path) (Node, error) {
	if root == nil {
		return nil, &PathError{Path: p, Reason: "no schema"}
	}
	if len(p) == 0 {
		return root, nil
	}

	var cur Node = root
	for i, seg := range p {
		last := i == len(p)-1
		switch n := cur.(type) {
		case *Container:
			if seg.IsIndex() {
				return nil, &PathError{Path: p, Reason: fmt.Sprintf("container %q is not an array", n.Name)}
			}
			child, ok := n.Child(seg.Name)
			if !ok {
				return nil, &PathError{Path: p, Reason: fmt.Sprintf("no attribute %q", seg.Name)}
			}
			cur = child
		case *ArrayContainer:
			if !seg.IsIndex() {
				return nil, &PathError{Path: p, Reason: fmt.Sprintf("array %q needs an index", n.Name)}
			}
			if last {
				return n, nil
			}
			cur = n.Item
		case *Leaf:
			if !seg.IsIndex() {
				return nil, &PathError{Path: p, Reason: fmt.Sprintf("attribute %q has no children", n.Name)}
			}
			switch {
			case n.ValType == InfoArray && len(n.Items) > 0:
				item, ok := n.ItemAt(seg.Index)
				if !ok {
					return nil, &PathError{Path: p, Reason: fmt.Sprintf("index %d out of range for %q", seg.Index, n.Name)}
				}
				cur = item
			case n.ArrayOk || n.ValType == DataArray || n.ValType == InfoArray:
				// Per-point entries share the leaf's schema.
			default:
				return nil, &PathError{Path: p, Reason: fmt.Sprintf("attribute %q is not an array", n.Name)}
			}
		}
	}
	return cur, nil
}

// ResolveLeaf is Resolve restricted to leaves.
func ResolveLeaf(root *Container, p attrpath.Path) (*Leaf, error) {
	n, err := Resolve(root, p)
	if err != nil {
		return nil, err
	}
	leaf, ok := n.(*Leaf)
	if !ok {
		return nil, &PathError{Path: p, Reason: "not a leaf attribute"}
	}
	return leaf, nil
}

// Walk visits n and its descendants depth-first, in declaration order.
// Returning false from fn skips the node's children. Array containers are
// visited, then their item container under the same path.
func Walk(n Node, fn func(p attrpath.Path, n Node) bool) {
	walk(nil, n, fn)
}

func walk(p attrpath.Path, n Node, fn func(attrpath.Path, Node) bool) {
	if !fn(p, n) {
		return
	}
	switch v := n.(type) {
	case *Container:
		for _, child := range v.Children() {
			walk(p.Append(attrpath.NameSegment(child.NodeName())), child, fn)
		}
	case *ArrayContainer:
		if v.Item != nil {
			for _, child := range v.Item.Children() {
				walk(p.Append(attrpath.NameSegment(child.NodeName())), child, fn)
			}
		}
	}
}
