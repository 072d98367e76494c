package template

import (
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/schema"
)

// Template is a captured set of style values.
type Template struct {
	Data   map[string][]map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
	Layout map[string]any              `json:"layout,omitempty" yaml:"layout,omitempty"`
}

// Schemas gives access to the attribute schemas a template is shaped by.
type Schemas interface {
	LayoutAttributes() *schema.Container
	TraceAttributes(traceType string) *schema.Container
}

// New returns an empty template.
func New() *Template {
	return &Template{Data: map[string][]map[string]any{}, Layout: map[string]any{}}
}

// FromValue converts a decoded {data, layout} tree, such as the value of a
// figure's layout.template, into a Template. It reports false when v has
// the wrong shape.
func FromValue(v any) (*Template, bool) {
	m := figure.AsMap(figure.Normalize(v))
	if m == nil {
		return nil, false
	}
	t := New()
	if raw, ok := m["layout"]; ok {
		layout := figure.AsMap(raw)
		if layout == nil {
			return nil, false
		}
		t.Layout = layout
	}
	if raw, ok := m["data"]; ok {
		data := figure.AsMap(raw)
		if data == nil {
			return nil, false
		}
		for typ, entries := range data {
			list, ok := entries.([]any)
			if !ok {
				return nil, false
			}
			for _, e := range list {
				entry := figure.AsMap(e)
				if entry == nil {
					entry = map[string]any{}
				}
				t.Data[typ] = append(t.Data[typ], entry)
			}
		}
	}
	return t, true
}

// ToMap returns the template as a plain tree, the shape stored in
// layout.template.
func (t *Template) ToMap() map[string]any {
	data := make(map[string]any, len(t.Data))
	for typ, entries := range t.Data {
		list := make([]any, len(entries))
		for i, e := range entries {
			list[i] = figure.CloneMap(e)
		}
		data[typ] = list
	}
	layout := figure.CloneMap(t.Layout)
	if layout == nil {
		layout = map[string]any{}
	}
	return map[string]any{"data": data, "layout": layout}
}

// Empty reports whether the template captures nothing.
func (t *Template) Empty() bool {
	if len(t.Layout) > 0 {
		return false
	}
	for _, entries := range t.Data {
		for _, e := range entries {
			if len(e) > 0 {
				return false
			}
		}
	}
	return true
}
