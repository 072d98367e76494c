package attrpath

import (
	"strconv"
	"strings"
)

// String serializes the Path into its canonical string representation.
func (p Path) String() string {
	var sb strings.Builder
	for i, segment := range p {
		if segment.IsIndex() {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(segment.Index))
			sb.WriteByte(']')
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(segment.Name)
	}
	return sb.String()
}

// Equal checks for segment-wise equality between two paths.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}
