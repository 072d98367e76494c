package template

import (
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/layoututil"
	"github.com/specialistvlad/figcore/internal/schema"
)

// Apply returns a copy of fig with t merged beneath it: values of the figure
// win, template values fill the gaps. Trace entries apply cyclically per
// trace type. The result carries no layout.template. Inputs are not
// modified.
func Apply(fig *figure.Figure, t *Template, schemas Schemas) *figure.Figure {
	out := fig.Clone()
	delete(out.Layout, "template")
	if t == nil {
		return out
	}

	out.Layout = applyContainer(schemas.LayoutAttributes(), out.Layout, t.Layout)

	seen := map[string]int{}
	for i, trace := range out.Data {
		typ, ok := trace["type"].(string)
		if !ok {
			typ = "scatter"
		}
		entries := t.Data[typ]
		n := seen[typ]
		seen[typ] = n + 1
		if len(entries) == 0 {
			continue
		}
		out.Data[i] = applyContainer(schemas.TraceAttributes(typ), trace, entries[n%len(entries)])
	}
	return out
}

// applyContainer merges tmpl beneath live. live is modified and returned.
func applyContainer(attrs *schema.Container, live, tmpl map[string]any) map[string]any {
	if live == nil {
		live = map[string]any{}
	}
	if attrs == nil || tmpl == nil {
		return live
	}

	for key, tv := range tmpl {
		child, ok := attrs.Child(key)
		if !ok {
			continue
		}
		switch n := child.(type) {
		case *schema.Leaf:
			if _, present := live[key]; !present && !n.NoTemplate {
				live[key] = figure.CloneValue(tv)
			}
		case *schema.Container:
			sub := figure.AsMap(tv)
			if sub == nil {
				continue
			}
			// Numbered instances are styled, never created.
			if n.Numbered && key != n.Name && figure.AsMap(live[key]) == nil {
				continue
			}
			live[key] = applyContainer(n, figure.AsMap(live[key]), sub)
			if !n.Numbered || key != n.Name {
				continue
			}
			// A template entry for the base id styles every numbered
			// instance without its own entry.
			for liveKey, lv := range live {
				base, numbered := schema.SplitNumberedID(liveKey)
				if !numbered || base != key || tmpl[liveKey] != nil || figure.AsMap(lv) == nil {
					continue
				}
				live[liveKey] = applyContainer(n, figure.AsMap(lv), sub)
			}
		case *schema.ArrayContainer:
			applyArray(n, live, tmpl)
		}
	}

	// Defaults entries without named items still style live items.
	for _, child := range attrs.Children() {
		arr, ok := child.(*schema.ArrayContainer)
		if !ok || tmpl[arr.Name] != nil || tmpl[arr.DefaultsKey()] == nil {
			continue
		}
		applyArray(arr, live, tmpl)
	}
	return live
}

// applyArray applies the array container rules: named entries by
// templateitemname, the defaults entry otherwise, unmatched references are
// hidden and unused named entries are appended.
func applyArray(arr *schema.ArrayContainer, live, tmpl map[string]any) {
	defaults := figure.AsMap(tmpl[arr.DefaultsKey()])
	named := map[string]map[string]any{}
	var order []string
	if list, ok := tmpl[arr.Name].([]any); ok {
		for _, raw := range list {
			entry := figure.AsMap(raw)
			if n, ok := entry["name"].(string); ok && n != "" {
				if _, dup := named[n]; !dup {
					order = append(order, n)
				}
				named[n] = entry
			}
		}
	}

	items, _ := live[arr.Name].([]any)
	used := map[string]bool{}
	for i, raw := range items {
		item := figure.AsMap(raw)
		if item == nil {
			continue
		}
		if ref, ok := item["templateitemname"].(string); ok && ref != "" {
			used[ref] = true
			entry, found := named[ref]
			if !found {
				item["visible"] = false
				continue
			}
			items[i] = applyContainer(arr.Item, item, layoututil.MergeBeneath(entry, defaults))
			continue
		}
		if n, ok := item["name"].(string); ok && named[n] != nil && item["visible"] == false {
			used[n] = true
		}
		items[i] = applyContainer(arr.Item, item, defaults)
	}

	for _, n := range order {
		if used[n] {
			continue
		}
		item := applyContainer(arr.Item, map[string]any{"templateitemname": n}, layoututil.MergeBeneath(named[n], defaults))
		items = append(items, item)
	}
	if items != nil {
		live[arr.Name] = items
	}
}
