package layoututil

import (
	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/coerce"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/schema"
)

// ItemFunc supplies the defaults of one array item. c coerces against the
// item schema with the matching template entry applied.
type ItemFunc func(c *coerce.Coercer, index int) error

// ArrayOptions describes one templated array container.
type ArrayOptions struct {
	// Schema is the array container node, e.g. layout "updatemenus" or a
	// menu's "buttons".
	Schema *schema.ArrayContainer
	// In and Out are the parent containers holding the array.
	In, Out map[string]any
	// Template is the parent container of the template, or nil.
	Template map[string]any
	// Prefix is the provenance path of the parent container.
	Prefix attrpath.Path
	Item   ItemFunc
}

// ArrayDefaults resolves a templated array container. Each live item is
// styled by the named template entry its templateitemname selects, or by
// the <singular>defaults entry. An item naming a template entry that does
// not exist is made invisible. Named template entries no live item selected
// are appended, so templates can inject items. Returns the resolved items.
func ArrayDefaults(rc *figure.Context, opts ArrayOptions) ([]map[string]any, error) {
	name := opts.Schema.Name
	inItems, _ := opts.In[name].([]any)

	named := map[string]map[string]any{}
	var namedOrder []string
	for _, raw := range figureArray(opts.Template[name]) {
		entry := figure.AsMap(raw)
		if n, ok := entry["name"].(string); ok && n != "" {
			if _, dup := named[n]; !dup {
				namedOrder = append(namedOrder, n)
			}
			named[n] = entry
		}
	}
	defaults := figure.AsMap(opts.Template[opts.Schema.DefaultsKey()])
	used := map[string]bool{}

	var outItems []map[string]any
	resolve := func(itemIn map[string]any, tmpl map[string]any, index int) error {
		itemOut := map[string]any{}
		c := coerce.New(opts.Schema.Item, itemIn, itemOut,
			coerce.WithTemplate(tmpl),
			coerce.WithProvenance(rc.Provenance, opts.Prefix.Append(attrpath.NameSegment(name), attrpath.IndexSegment(index))),
			coerce.WithContext(rc.Context()),
		)
		c.Coerce("name", nil)
		c.Coerce("templateitemname", nil)
		if err := opts.Item(c, index); err != nil {
			return err
		}
		if err := c.Err(); err != nil {
			return err
		}
		itemOut["_index"] = index
		outItems = append(outItems, itemOut)
		return nil
	}

	for i, raw := range inItems {
		itemIn := figure.AsMap(raw)
		if itemIn == nil {
			outItems = append(outItems, map[string]any{"visible": false, "_index": i})
			continue
		}

		tmpl := defaults
		if ref, ok := itemIn["templateitemname"].(string); ok && ref != "" {
			entry, found := named[ref]
			used[ref] = true
			if !found {
				rc.Logger().Debug("Template item not found, hiding array item.", "array", name, "index", i, "templateitemname", ref)
				outItems = append(outItems, map[string]any{"visible": false, "templateitemname": ref, "_index": i})
				continue
			}
			tmpl = MergeBeneath(entry, defaults)
		} else if n, ok := itemIn["name"].(string); ok && named[n] != nil && itemIn["visible"] == false {
			// A same-named invisible live item suppresses the inherited one.
			used[n] = true
		}

		if err := resolve(itemIn, tmpl, i); err != nil {
			return nil, err
		}
	}

	next := len(inItems)
	for _, n := range namedOrder {
		if used[n] {
			continue
		}
		itemIn := map[string]any{"templateitemname": n}
		if err := resolve(itemIn, MergeBeneath(named[n], defaults), next); err != nil {
			return nil, err
		}
		next++
	}

	if len(outItems) > 0 || opts.In[name] != nil {
		out := make([]any, len(outItems))
		for i, item := range outItems {
			out[i] = item
		}
		opts.Out[name] = out
	}
	return outItems, nil
}

// MergeBeneath returns a copy of top completed with the keys of bottom it
// lacks, recursively. Values of top win.
func MergeBeneath(top, bottom map[string]any) map[string]any {
	if bottom == nil {
		return figure.CloneMap(top)
	}
	out := figure.CloneMap(bottom)
	for k, v := range top {
		if tm, ok := v.(map[string]any); ok {
			if bm, ok := out[k].(map[string]any); ok {
				out[k] = MergeBeneath(tm, bm)
				continue
			}
		}
		out[k] = figure.CloneValue(v)
	}
	return out
}

func figureArray(v any) []any {
	arr, _ := v.([]any)
	return arr
}
