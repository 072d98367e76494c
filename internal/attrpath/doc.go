/*
Package attrpath provides a structured, type-safe representation for attribute
paths within a figure, based on the canonical format used by the mutation API.

The format is a dot-separated sequence of names, each optionally followed by
one or more bracketed indices, e.g. `title.font.size`, `buttons[2].label` or
`xaxis2.range[0]`.

Paths are parsed once into a slice of segments, each either a Name or an
Index, so that schema and tree traversal never re-parse strings.
*/
package attrpath
