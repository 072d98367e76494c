package hcl

import (
	"fmt"
	"io/fs"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/figcore/internal/schema"
)

// ParseManifest parses the source of one manifest into a container named
// rootName.
func ParseManifest(src []byte, filename, rootName string) (*schema.Container, hcl.Diagnostics) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	root, bodyDiags := translateContainer(file.Body, rootName)
	diags = append(diags, bodyDiags...)
	if diags.HasErrors() {
		return nil, diags
	}
	return root, diags
}

// LoadManifest reads and parses a manifest from a file system, typically an
// embed.FS owned by a module.
func LoadManifest(fsys fs.FS, path, rootName string) (*schema.Container, error) {
	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	root, diags := ParseManifest(src, path, rootName)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}
	return root, nil
}

// MustLoadManifest is LoadManifest for manifests compiled into the binary.
// A broken embedded manifest is a programmer error, so it panics.
func MustLoadManifest(fsys fs.FS, path, rootName string) *schema.Container {
	root, err := LoadManifest(fsys, path, rootName)
	if err != nil {
		panic(err)
	}
	return root
}
