package layoututil

import (
	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/coerce"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/schema"
)

// Instance is one resolved copy of a numbered layout component, such as
// "legend2" or "xaxis".
type Instance struct {
	ID  string
	In  map[string]any
	Out map[string]any
	*coerce.Coercer
}

// NewInstance prepares the coercion of layout[id] against attrs. The
// template entry for id falls back to the entry for base, so "xaxis2" is
// styled by a template's "xaxis".
func NewInstance(rc *figure.Context, attrs *schema.Container, layoutIn map[string]any, id, base string) *Instance {
	in := figure.AsMap(layoutIn[id])
	if in == nil {
		in = map[string]any{}
	}
	out := map[string]any{}
	c := coerce.New(attrs, in, out,
		coerce.WithTemplate(TemplateFor(rc.LayoutTemplate, id, base)),
		coerce.WithProvenance(rc.Provenance, figure.LayoutPath().Append(attrpath.NameSegment(id))),
		coerce.WithContext(rc.Context()),
	)
	return &Instance{ID: id, In: in, Out: out, Coercer: c}
}

// Attach stores the resolved instance in the layout output under its id.
func (inst *Instance) Attach(layoutOut map[string]any) {
	layoutOut[inst.ID] = inst.Out
}

// TemplateFor returns the template container for id, falling back to the
// one for base.
func TemplateFor(tmpl map[string]any, id, base string) map[string]any {
	if m := figure.AsMap(tmpl[id]); m != nil {
		return m
	}
	return figure.AsMap(tmpl[base])
}

// LayoutCoercer coerces root-level layout attributes, such as "showlegend"
// or "barmode", against attrs.
func LayoutCoercer(rc *figure.Context, attrs *schema.Container, layoutIn, layoutOut map[string]any) *coerce.Coercer {
	return coerce.New(attrs, layoutIn, layoutOut,
		coerce.WithTemplate(rc.LayoutTemplate),
		coerce.WithProvenance(rc.Provenance, figure.LayoutPath()),
		coerce.WithContext(rc.Context()),
	)
}
