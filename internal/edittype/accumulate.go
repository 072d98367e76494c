package edittype

import (
	"context"

	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/ctxlog"
	"github.com/specialistvlad/figcore/internal/schema"
)

// Accumulate sets the flags a change to n requires. An explicit edit type
// decides alone; otherwise the edit types of all non-private descendants
// are unioned.
func Accumulate(target Target, n schema.Node) {
	if e := n.EditType(); e != "" {
		for _, flag := range e.Flags() {
			target.set(flag)
		}
		return
	}

	var children []schema.Node
	switch v := n.(type) {
	case *schema.Container:
		children = v.Children()
	case *schema.ArrayContainer:
		if v.Item != nil {
			children = v.Item.Children()
		}
	case *schema.Leaf:
		for _, item := range v.Items {
			Accumulate(target, item)
		}
	}
	for _, child := range children {
		if schema.IsPrivate(child.NodeName()) {
			continue
		}
		Accumulate(target, child)
	}
}

// ForPaths accumulates the flags for every changed path. A leaf without an
// edit type takes the one of its nearest ancestor. Paths the schema does not
// know set "calc", the coarsest recomputation.
func ForPaths(ctx context.Context, target Target, root *schema.Container, paths []attrpath.Path) {
	logger := ctxlog.FromContext(ctx)
	for _, p := range paths {
		if len(p) > 0 && p[0].Name != "" && schema.IsPrivate(p[0].Name) {
			continue
		}
		n, err := schema.Resolve(root, p)
		if err != nil {
			logger.Debug("Unknown attribute path in mutation, assuming full recalculation.", "path", p.String(), "error", err)
			target.set("calc")
			continue
		}
		if _, isLeaf := n.(*schema.Leaf); isLeaf && n.EditType() == "" {
			if anc := nearestEdited(root, p); anc != nil {
				n = anc
			}
		}
		Accumulate(target, n)
	}
}

func nearestEdited(root *schema.Container, p attrpath.Path) schema.Node {
	for i := len(p) - 1; i >= 0; i-- {
		n, err := schema.Resolve(root, p[:i])
		if err == nil && n.EditType() != "" {
			return n
		}
	}
	return nil
}
