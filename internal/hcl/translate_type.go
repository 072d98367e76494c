// This file contains the logic for parsing the `val_type` keyword of an
// attribute block.

package hcl

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/figcore/internal/schema"
)

// translateValType converts a `val_type` expression into a schema.ValType.
// Both quoted strings (`"number"`) and bare keywords (`number`) are accepted.
func translateValType(expr hcl.Expression) (schema.ValType, hcl.Diagnostics) {
	var name string
	if traversal, diags := hcl.AbsTraversalForExpr(expr); !diags.HasErrors() && len(traversal) == 1 {
		name = traversal.RootName()
	} else if diags := gohcl.DecodeExpression(expr, nil, &name); diags.HasErrors() {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid value type",
			Detail:   "The 'val_type' attribute must be a type keyword like 'number' or a string naming one.",
			Subject:  expr.Range().Ptr(),
		}}
	}

	vt := schema.ValType(name)
	if !vt.IsKnown() {
		known := make([]string, 0, len(schema.KnownValTypes))
		for _, k := range schema.KnownValTypes {
			known = append(known, string(k))
		}
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported value type",
			Detail:   fmt.Sprintf("The keyword '%s' is not a valid value type. Supported types are: %s.", name, strings.Join(known, ", ")),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return vt, nil
}
