package plots

import (
	"context"
	"fmt"
	"sort"

	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/ctxlog"
	"github.com/specialistvlad/figcore/internal/edittype"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/schema"
)

type edit struct {
	key   string
	path  attrpath.Path
	value any
}

// parseEdits parses every key once, in key order. A nil value deletes.
func parseEdits(edits map[string]any) ([]edit, error) {
	keys := make([]string, 0, len(edits))
	for k := range edits {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]edit, 0, len(keys))
	for _, k := range keys {
		p, err := attrpath.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("invalid attribute path %q: %w", k, err)
		}
		out = append(out, edit{key: k, path: p, value: edits[k]})
	}
	return out, nil
}

// checkEdits rejects edits that would index past the end of an array in
// tree. Deletions are always allowed.
func checkEdits(tree map[string]any, edits []edit) error {
	for _, e := range edits {
		if e.value == nil {
			continue
		}
		if err := attrpath.CheckSet(tree, e.path); err != nil {
			return fmt.Errorf("cannot set %q: %w", e.key, err)
		}
	}
	return nil
}

// Restyle changes trace attributes of the given traces, all traces when
// traces is nil, re-resolves the figure and returns the phases to re-run.
//
// An array value is distributed over the traces: the k-th listed trace
// receives element k modulo its length. To set an array-valued attribute,
// wrap the array: {"x": [[1, 2, 3]]}.
func (p *Plot) Restyle(ctx context.Context, edits map[string]any, traces []int) (*edittype.TraceFlags, error) {
	parsed, indices, err := p.prepareRestyle(edits, traces)
	if err != nil {
		return nil, err
	}
	flags := edittype.NewTraceFlags()
	p.applyRestyle(ctx, flags, parsed, indices)
	if err := p.resupply(ctx); err != nil {
		return nil, err
	}
	return flags, nil
}

// Relayout changes layout attributes, re-resolves the figure and returns the
// phases to re-run. Paths to array items ("updatemenus[1]") replace the
// item, or remove it when the value is nil.
func (p *Plot) Relayout(ctx context.Context, edits map[string]any) (*edittype.LayoutFlags, error) {
	parsed, err := parseEdits(edits)
	if err != nil {
		return nil, err
	}
	if err := checkEdits(p.input.Layout, parsed); err != nil {
		return nil, err
	}
	flags := edittype.NewLayoutFlags()
	p.applyRelayout(ctx, flags, parsed)
	if err := p.resupply(ctx); err != nil {
		return nil, err
	}
	return flags, nil
}

// Update combines Restyle and Relayout with a single re-resolution. The two
// flag sets are returned separately.
func (p *Plot) Update(ctx context.Context, traceEdits, layoutEdits map[string]any, traces []int) (*edittype.TraceFlags, *edittype.LayoutFlags, error) {
	tparsed, indices, err := p.prepareRestyle(traceEdits, traces)
	if err != nil {
		return nil, nil, err
	}
	lparsed, err := parseEdits(layoutEdits)
	if err != nil {
		return nil, nil, err
	}
	if err := checkEdits(p.input.Layout, lparsed); err != nil {
		return nil, nil, err
	}

	tflags := edittype.NewTraceFlags()
	p.applyRestyle(ctx, tflags, tparsed, indices)
	lflags := edittype.NewLayoutFlags()
	p.applyRelayout(ctx, lflags, lparsed)
	if err := p.resupply(ctx); err != nil {
		return nil, nil, err
	}
	return tflags, lflags, nil
}

func (p *Plot) prepareRestyle(edits map[string]any, traces []int) ([]edit, []int, error) {
	parsed, err := parseEdits(edits)
	if err != nil {
		return nil, nil, err
	}
	if traces == nil {
		traces = make([]int, len(p.input.Data))
		for i := range traces {
			traces[i] = i
		}
	}
	for _, i := range traces {
		if i < 0 || i >= len(p.input.Data) {
			return nil, nil, fmt.Errorf("trace index %d out of range [0, %d)", i, len(p.input.Data))
		}
		if err := checkEdits(p.input.Data[i], parsed); err != nil {
			return nil, nil, fmt.Errorf("trace %d: %w", i, err)
		}
	}
	return parsed, traces, nil
}

func (p *Plot) applyRestyle(ctx context.Context, flags *edittype.TraceFlags, edits []edit, traces []int) {
	explicit := explicitKeys(edits)
	for k, i := range traces {
		if p.input.Data[i] == nil {
			p.input.Data[i] = map[string]any{}
		}
		trace := p.input.Data[i]
		typ, _ := p.resolved.Data[i]["type"].(string)
		attrs := p.supplier.TraceAttributes(typ)

		var changed []attrpath.Path
		for _, e := range edits {
			v := e.value
			if arr, ok := v.([]any); ok {
				if len(arr) == 0 {
					continue
				}
				v = arr[k%len(arr)]
			}
			setOrDelete(trace, e.path, v)
			changed = append(changed, e.path)
			if v != nil {
				changed = append(changed, applyImplied(attrs, trace, e.path, explicit)...)
			}
		}
		edittype.ForPaths(ctx, flags, attrs, changed)
	}
	ctxlog.FromContext(ctx).Debug("Restyle applied.", "edits", len(edits), "traces", traces, "flags", flags.Names())
}

func (p *Plot) applyRelayout(ctx context.Context, flags *edittype.LayoutFlags, edits []edit) {
	explicit := explicitKeys(edits)
	attrs := p.supplier.LayoutAttributes()
	var changed []attrpath.Path
	for _, e := range edits {
		setOrDelete(p.input.Layout, e.path, e.value)
		changed = append(changed, e.path)
		if e.value != nil {
			changed = append(changed, applyImplied(attrs, p.input.Layout, e.path, explicit)...)
		}
	}
	edittype.ForPaths(ctx, flags, attrs, changed)
	ctxlog.FromContext(ctx).Debug("Relayout applied.", "edits", len(edits), "flags", flags.Names())
}

func explicitKeys(edits []edit) map[string]bool {
	out := make(map[string]bool, len(edits))
	for _, e := range edits {
		out[e.path.String()] = true
	}
	return out
}

func setOrDelete(tree map[string]any, p attrpath.Path, v any) {
	if v == nil {
		attrpath.Delete(tree, p)
		return
	}
	// Paths were checked by checkEdits and implied edits only touch
	// siblings, so Set cannot fail here.
	_ = attrpath.Set(tree, p, figure.CloneValue(figure.Normalize(v)))
}

// applyImplied applies the implied edits of the leaf at p, skipping paths
// the same call sets explicitly, and returns the paths it changed.
func applyImplied(root *schema.Container, tree map[string]any, p attrpath.Path, explicit map[string]bool) []attrpath.Path {
	implied, parent := impliedFor(root, p)
	var changed []attrpath.Path
	keys := make([]string, 0, len(implied))
	for k := range implied {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rel, err := attrpath.Parse(k)
		if err != nil {
			continue
		}
		target := parent.Join(rel)
		if explicit[target.String()] {
			continue
		}
		setOrDelete(tree, target, implied[k])
		changed = append(changed, target)
	}
	return changed
}

// impliedFor finds the implied edits for a change at p. A change to one
// item of an info array implies the edits of the whole attribute.
func impliedFor(root *schema.Container, p attrpath.Path) (map[string]any, attrpath.Path) {
	for _, candidate := range []attrpath.Path{p, trimIndex(p)} {
		if candidate == nil {
			continue
		}
		leaf, err := schema.ResolveLeaf(root, candidate)
		if err != nil || len(leaf.ImpliedEdits) == 0 {
			continue
		}
		parent, _ := candidate.Parent()
		return leaf.ImpliedEdits, parent
	}
	return nil, nil
}

func trimIndex(p attrpath.Path) attrpath.Path {
	if len(p) < 2 || !p.Last().IsIndex() {
		return nil
	}
	parent, _ := p.Parent()
	return parent
}
