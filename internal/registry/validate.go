package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/coerce"
	"github.com/specialistvlad/figcore/internal/ctxlog"
	"github.com/specialistvlad/figcore/internal/edittype"
	"github.com/specialistvlad/figcore/internal/schema"
)

// ValidateRegistry performs a strict consistency check of every registered
// schema. A failure is a programmer error in a module or a manifest.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	errs := append([]string(nil), r.conflicts...)

	for _, c := range r.components {
		if c.SupplyLayoutDefaults == nil {
			errs = append(errs, fmt.Sprintf("component '%s': no defaults routine", c.Name))
		}
	}
	for _, name := range r.traceOrder {
		t := r.traceTypes[name]
		if t.SupplyDefaults == nil {
			errs = append(errs, fmt.Sprintf("trace type '%s': no defaults routine", name))
		}
		if t.LayoutAttributes != nil && t.SupplyLayoutDefaults == nil {
			errs = append(errs, fmt.Sprintf("trace type '%s': layout attributes without a layout defaults routine", name))
		}
		errs = append(errs, validateSchema("trace type '"+name+"'", r.traceAttrs[name], edittype.IsTraceFlag)...)
	}
	errs = append(errs, validateSchema("layout", r.layout, edittype.IsLayoutFlag)...)

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validated.", "components", len(r.components), "trace_types", len(r.traceOrder))
	return nil
}

// validateSchema checks edit flags against a vocabulary, static defaults
// against their own leaf, and that every leaf has an edit type of its own or
// from an ancestor.
func validateSchema(owner string, root *schema.Container, inVocab func(string) bool) []string {
	var errs []string
	edited := map[string]bool{}

	schema.Walk(root, func(p attrpath.Path, n schema.Node) bool {
		parent, _ := p.Parent()
		inherited := len(p) > 0 && edited[parent.String()]
		if n.EditType() != "" || inherited {
			edited[p.String()] = true
		}

		for _, flag := range n.EditType().Flags() {
			if !inVocab(flag) {
				errs = append(errs, fmt.Sprintf("%s: '%s' has edit flag '%s' outside its vocabulary", owner, p, flag))
			}
		}

		leaf, ok := n.(*schema.Leaf)
		if !ok {
			return true
		}
		if !edited[p.String()] && !schema.IsPrivate(leaf.Name) {
			errs = append(errs, fmt.Sprintf("%s: attribute '%s' has no edit type", owner, p))
		}
		if leaf.Default != nil {
			if _, valid := coerce.Valid(leaf, leaf.Default); !valid {
				errs = append(errs, fmt.Sprintf("%s: default %v of '%s' fails its own validation", owner, leaf.Default, p))
			}
		}
		for i, item := range leaf.Items {
			if item.Default == nil {
				continue
			}
			if _, valid := coerce.Valid(item, item.Default); !valid {
				errs = append(errs, fmt.Sprintf("%s: default %v of '%s[%d]' fails its own validation", owner, item.Default, p, i))
			}
		}
		return true
	})
	return errs
}
