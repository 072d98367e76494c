package attrpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// segmentRegex parses one dot-delimited part, e.g. `name`, `name[1]` or `name[1][0]`.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*)((?:\[\d+\])*)$`)

var indexRegex = regexp.MustCompile(`\[(\d+)\]`)

// Parse creates a Path by parsing its canonical string representation.
func Parse(raw string) (Path, error) {
	if raw == "" {
		return nil, fmt.Errorf("attribute path cannot be empty")
	}

	var p Path
	for _, part := range strings.Split(raw, ".") {
		if part == "" {
			return nil, fmt.Errorf("attribute path %q contains empty segment", raw)
		}

		matches := segmentRegex.FindStringSubmatch(part)
		if matches == nil {
			return nil, fmt.Errorf("invalid path segment format: %q", part)
		}

		p = append(p, NameSegment(matches[1]))
		for _, idx := range indexRegex.FindAllStringSubmatch(matches[2], -1) {
			index, err := strconv.Atoi(idx[1])
			if err != nil {
				return nil, fmt.Errorf("invalid index in %q: %w", part, err)
			}
			p = append(p, IndexSegment(index))
		}
	}

	return p, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// path literals written by component authors.
func MustParse(raw string) Path {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}
