package figure

import (
	"sort"
	"strings"

	"github.com/specialistvlad/figcore/internal/attrpath"
)

// Source tells where a resolved leaf value came from.
type Source int

const (
	SourceDefault Source = iota
	SourceTemplate
	SourceUser
)

func (s Source) String() string {
	switch s {
	case SourceUser:
		return "user"
	case SourceTemplate:
		return "template"
	default:
		return "default"
	}
}

// Provenance maps canonical leaf paths such as "layout.legend.x" or
// "data[1].marker.color" to the source of their resolved value.
type Provenance map[string]Source

// Record stores the source of the value at p.
func (p Provenance) Record(path attrpath.Path, s Source) {
	if p == nil {
		return
	}
	p[path.String()] = s
}

// Source returns the recorded source for a canonical path.
func (p Provenance) Source(path string) (Source, bool) {
	s, ok := p[path]
	return s, ok
}

// IsUser reports whether the value at path came from explicit user input.
func (p Provenance) IsUser(path string) bool {
	s, ok := p[path]
	return ok && s == SourceUser
}

// Forget removes the entry at path and every entry beneath it.
func (p Provenance) Forget(path string) {
	for k := range p {
		if k == path || strings.HasPrefix(k, path+".") || strings.HasPrefix(k, path+"[") {
			delete(p, k)
		}
	}
}

// Paths returns the recorded paths in lexical order.
func (p Provenance) Paths() []string {
	out := make([]string, 0, len(p))
	for k := range p {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Clone returns a copy of the provenance map.
func (p Provenance) Clone() Provenance {
	out := make(Provenance, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// LayoutPath returns the provenance prefix for layout attributes.
func LayoutPath() attrpath.Path {
	return attrpath.Names("layout")
}

// TracePath returns the provenance prefix for the attributes of trace i.
func TracePath(i int) attrpath.Path {
	return attrpath.Path{attrpath.NameSegment("data"), attrpath.IndexSegment(i)}
}
