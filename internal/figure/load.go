package figure

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a figure document. YAML is a superset of JSON, so both
// formats are accepted. An empty document yields an empty figure.
func Decode(r io.Reader) (*Figure, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode figure: %w", err)
	}
	return FromMap(raw)
}

// Load reads a figure document from a file.
func Load(path string) (*Figure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open figure %s: %w", path, err)
	}
	defer f.Close()

	fig, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fig, nil
}

// FromMap builds a figure from a decoded document of the shape
// {data: [...], layout: {...}}. Trace entries that are not objects are kept
// as empty traces so trace indices stay stable.
func FromMap(raw map[string]any) (*Figure, error) {
	fig := &Figure{Layout: map[string]any{}}
	if raw == nil {
		return fig, nil
	}

	switch data := Normalize(raw["data"]).(type) {
	case nil:
	case []any:
		fig.Data = make([]map[string]any, len(data))
		for i, entry := range data {
			trace, _ := entry.(map[string]any)
			if trace == nil {
				trace = map[string]any{}
			}
			fig.Data[i] = trace
		}
	default:
		return nil, fmt.Errorf("figure 'data' must be a list, got %T", data)
	}

	switch layout := Normalize(raw["layout"]).(type) {
	case nil:
	case map[string]any:
		fig.Layout = layout
	default:
		return nil, fmt.Errorf("figure 'layout' must be an object, got %T", layout)
	}
	return fig, nil
}

// Encode writes v as "json" (indented) or "yaml".
func Encode(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
