package template

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/figcore/internal/figure"
	"gopkg.in/yaml.v3"
)

// Decode reads a template document. YAML is a superset of JSON, so both
// formats are accepted.
func Decode(r io.Reader) (*Template, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to decode template: %w", err)
	}
	t, ok := FromValue(raw)
	if !ok {
		return nil, errors.New("template must have the shape {data: {type: [...]}, layout: {...}}")
	}
	return t, nil
}

// Load reads a template from a file.
func Load(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open template %s: %w", path, err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// WriteYAML writes the template as YAML.
func (t *Template) WriteYAML(w io.Writer) error {
	return figure.Encode(w, t.ToMap(), "yaml")
}

// WriteJSON writes the template as indented JSON.
func (t *Template) WriteJSON(w io.Writer) error {
	return figure.Encode(w, t.ToMap(), "json")
}
