package attrpath

// Segment represents a single component of a path: either a name (`label`)
// or an array index (`[2]`).
type Segment struct {
	Name  string
	Index int // -1 indicates a name segment.
}

// NameSegment creates a new segment addressing a named child.
func NameSegment(name string) Segment {
	return Segment{Name: name, Index: -1}
}

// IndexSegment creates a new segment addressing an array element.
func IndexSegment(index int) Segment {
	return Segment{Index: index}
}

// IsIndex returns true if the segment addresses an array element.
func (s Segment) IsIndex() bool {
	return s.Index != -1
}

// Path is the structured representation of an attribute address.
type Path []Segment

// Names builds a path made only of name segments.
func Names(names ...string) Path {
	p := make(Path, 0, len(names))
	for _, n := range names {
		p = append(p, NameSegment(n))
	}
	return p
}

// Append returns a new path with the given segments added. The receiver is
// never modified, so prefixes can be shared safely.
func (p Path) Append(segs ...Segment) Path {
	out := make(Path, 0, len(p)+len(segs))
	out = append(out, p...)
	return append(out, segs...)
}

// Join returns a new path with other appended.
func (p Path) Join(other Path) Path {
	return p.Append(other...)
}

// Parent returns the path without its last segment, and that last segment.
func (p Path) Parent() (Path, Segment) {
	if len(p) == 0 {
		return nil, Segment{Index: -1}
	}
	return p[: len(p)-1 : len(p)-1], p[len(p)-1]
}

// Last returns the final segment of the path.
func (p Path) Last() Segment {
	if len(p) == 0 {
		return Segment{Index: -1}
	}
	return p[len(p)-1]
}

// HasPrefix reports whether prefix is a leading sub-path of p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i, s := range prefix {
		if p[i] != s {
			return false
		}
	}
	return true
}
