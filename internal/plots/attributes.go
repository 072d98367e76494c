package plots

import (
	"embed"

	"github.com/specialistvlad/figcore/internal/hcl"
	"github.com/specialistvlad/figcore/internal/schema"
)

//go:embed layout_attributes.hcl trace_attributes.hcl
var manifests embed.FS

// BaseLayoutAttributes returns the layout attributes every figure has.
func BaseLayoutAttributes() *schema.Container {
	return hcl.MustLoadManifest(manifests, "layout_attributes.hcl", "layout")
}

// BaseTraceAttributes returns the attributes every trace type shares.
func BaseTraceAttributes() *schema.Container {
	return hcl.MustLoadManifest(manifests, "trace_attributes.hcl", "trace")
}
