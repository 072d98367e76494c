package template

import (
	"context"
	"fmt"

	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/ctxlog"
	"github.com/specialistvlad/figcore/internal/edittype"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/schema"
)

// Resolver runs the full defaults-supply pipeline.
type Resolver interface {
	Schemas
	Resolve(ctx context.Context, fig *figure.Figure) (*figure.Resolved, error)
}

// Make extracts a template from fig. The figure is resolved first, which
// validates every value; captured values are then read from the original
// sparse input, so only what the author chose ends up in the template.
func Make(ctx context.Context, r Resolver, fig *figure.Figure) (*Template, error) {
	logger := ctxlog.FromContext(ctx)
	resolved, err := r.Resolve(ctx, fig)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve figure for template extraction: %w", err)
	}

	t := New()
	for i, traceOut := range resolved.Data {
		typ, _ := traceOut["type"].(string)
		m := &maker{prov: resolved.Provenance}
		entry := m.container(r.TraceAttributes(typ), figure.AsMap(figure.StripPrivate(fig.Trace(i))), figure.TracePath(i), "")
		if entry == nil {
			entry = map[string]any{}
		}
		t.Data[typ] = append(t.Data[typ], entry)
	}

	layoutIn := figure.AsMap(figure.StripPrivate(fig.Clone().Layout))
	delete(layoutIn, "template")
	m := &maker{prov: resolved.Provenance}
	if layout := m.container(r.LayoutAttributes(), layoutIn, figure.LayoutPath(), ""); layout != nil {
		t.Layout = layout
	}

	logger.Debug("Template extracted.", "trace_types", len(t.Data), "layout_keys", len(t.Layout))
	return t, nil
}

type maker struct {
	prov figure.Provenance
}

// container captures the style values of in, a container instance at path.
// It returns nil when nothing was captured.
func (m *maker) container(attrs *schema.Container, in map[string]any, path attrpath.Path, inherited schema.EditType) map[string]any {
	if attrs == nil || in == nil {
		return nil
	}
	if attrs.Edit != "" {
		inherited = attrs.Edit
	}

	out := map[string]any{}
	for key, v := range in {
		child, ok := attrs.Child(key)
		if !ok {
			if entry := m.arrayDefaults(attrs, key, v, inherited); entry != nil {
				out[key] = entry
			}
			continue
		}
		childPath := path.Append(attrpath.NameSegment(key))
		switch n := child.(type) {
		case *schema.Leaf:
			if m.keepLeaf(n, v, childPath, inherited) {
				out[key] = figure.CloneValue(v)
			}
		case *schema.Container:
			if sub := m.container(n, figure.AsMap(v), childPath, inherited); sub != nil {
				out[key] = sub
			}
		case *schema.ArrayContainer:
			if items := m.array(n, v, childPath, inherited); items != nil {
				out[key] = items
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// array captures the named items of an array container.
func (m *maker) array(arr *schema.ArrayContainer, v any, path attrpath.Path, inherited schema.EditType) []any {
	items, _ := v.([]any)
	if arr.Edit != "" {
		inherited = arr.Edit
	}
	var out []any
	for i, raw := range items {
		item := figure.AsMap(raw)
		name, _ := item["name"].(string)
		if name == "" {
			continue
		}
		captured := m.container(arr.Item, item, path.Append(attrpath.IndexSegment(i)), inherited)
		if captured == nil {
			captured = map[string]any{}
		}
		captured["name"] = name
		out = append(out, captured)
	}
	return out
}

// arrayDefaults captures a <singular>defaults input entry. Defaults entries
// are never resolved, so the style rule alone decides.
func (m *maker) arrayDefaults(attrs *schema.Container, key string, v any, inherited schema.EditType) map[string]any {
	for _, child := range attrs.Children() {
		arr, ok := child.(*schema.ArrayContainer)
		if !ok || arr.DefaultsKey() != key {
			continue
		}
		if arr.Edit != "" {
			inherited = arr.Edit
		}
		defaults := &maker{}
		return defaults.container(arr.Item, figure.AsMap(v), nil, inherited)
	}
	return nil
}

// keepLeaf decides whether a leaf value belongs in a template.
func (m *maker) keepLeaf(leaf *schema.Leaf, v any, path attrpath.Path, inherited schema.EditType) bool {
	if leaf.NoTemplate || leaf.ValType == schema.DataArray {
		return false
	}
	if leaf.ArrayOk && figure.IsArray(v) {
		return false
	}
	edit := leaf.Edit
	if edit == "" {
		edit = inherited
	}
	if !edittype.StyleOnly(edit) {
		return false
	}
	if m.prov == nil {
		return v != nil
	}
	return m.prov.IsUser(path.String())
}
