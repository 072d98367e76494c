package figure

// Figure is the partial description a user submits: a list of traces and a
// layout. Both may be sparse and loosely typed.
type Figure struct {
	Data   []map[string]any `json:"data" yaml:"data"`
	Layout map[string]any   `json:"layout" yaml:"layout"`
}

// Resolved is the fully specified configuration produced by defaults-supply.
type Resolved struct {
	Data       []map[string]any `json:"data" yaml:"data"`
	Layout     map[string]any   `json:"layout" yaml:"layout"`
	Provenance Provenance       `json:"-" yaml:"-"`
}

// Clone returns a deep copy of the figure. A nil layout becomes an empty
// map so callers can write into it.
func (f *Figure) Clone() *Figure {
	out := &Figure{Layout: map[string]any{}}
	if f == nil {
		return out
	}
	if f.Layout != nil {
		out.Layout = CloneMap(f.Layout)
	}
	if f.Data != nil {
		out.Data = make([]map[string]any, len(f.Data))
		for i, trace := range f.Data {
			out.Data[i] = CloneMap(trace)
		}
	}
	return out
}

// Trace returns the input map of trace i, or an empty map when the index is
// out of range or the entry is nil.
func (f *Figure) Trace(i int) map[string]any {
	if f == nil || i < 0 || i >= len(f.Data) || f.Data[i] == nil {
		return map[string]any{}
	}
	return f.Data[i]
}

// Clone returns a deep copy of the resolved configuration, provenance
// included.
func (r *Resolved) Clone() *Resolved {
	out := &Resolved{
		Layout:     CloneMap(r.Layout),
		Provenance: r.Provenance.Clone(),
	}
	if r.Data != nil {
		out.Data = make([]map[string]any, len(r.Data))
		for i, trace := range r.Data {
			out.Data[i] = CloneMap(trace)
		}
	}
	return out
}
