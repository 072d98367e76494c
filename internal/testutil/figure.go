package testutil

import (
	"strings"
	"testing"

	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/stretchr/testify/require"
)

// FigureYAML decodes a figure from a YAML snippet. The snippet can be
// indented to match the surrounding Go code.
func FigureYAML(t *testing.T, src string) *figure.Figure {
	t.Helper()

	fig, err := figure.Decode(strings.NewReader(unindent(src)))
	require.NoError(t, err, "test figure must be valid YAML")
	return fig
}

// unindent removes common leading whitespace from a multi-line string,
// allowing for readable, indented YAML snippets in Go tests.
func unindent(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) == 0 {
		return ""
	}

	// Remove leading/trailing empty lines that are common with multi-line literals
	if strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) == 0 {
		return ""
	}

	// Find the minimum indentation of non-empty lines
	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := 0
		for _, r := range line {
			if r == ' ' || r == '\t' {
				indent++
			} else {
				break
			}
		}
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}

	if minIndent <= 0 {
		return strings.Join(lines, "\n")
	}

	// Strip the common indentation from each line
	var b strings.Builder
	for i, line := range lines {
		if len(line) >= minIndent {
			b.WriteString(line[minIndent:])
		} else {
			b.WriteString(strings.TrimSpace(line))
		}
		if i < len(lines)-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
