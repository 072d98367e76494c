// This file contains the logic for translating manifest blocks into schema
// nodes.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/figcore/internal/schema"
)

// containerBodySchema is the HCL schema for the body of a `container` or
// `array` block, and for a manifest's root body.
var containerBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "edit_type"},
		{Name: "description"},
		{Name: "numbered"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "attribute", LabelNames: []string{"name"}},
		{Type: "container", LabelNames: []string{"name"}},
		{Type: "array", LabelNames: []string{"name"}},
	},
}

// attributeBodySchema is the HCL schema for the body of an `attribute`
// block and of an info_array `item` block.
var attributeBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		// `val_type` is required, but we check for its existence manually
		// to provide a better error message.
		{Name: "val_type"},
		{Name: "description"},
		{Name: "default"},
		{Name: "edit_type"},
		{Name: "min"},
		{Name: "max"},
		{Name: "values"},
		{Name: "flags"},
		{Name: "extras"},
		{Name: "base"},
		{Name: "array_ok"},
		{Name: "free_length"},
		{Name: "no_blank"},
		{Name: "strict"},
		{Name: "templatable"},
		{Name: "implied_edits"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "item"},
	},
}

// translateContainer converts a container body into a schema container.
func translateContainer(body hcl.Body, name string) (*schema.Container, hcl.Diagnostics) {
	content, diags := body.Content(containerBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	c := schema.NewContainer(name)
	diags = append(diags, decodeString(content.Attributes, "edit_type", (*string)(&c.Edit))...)
	diags = append(diags, decodeString(content.Attributes, "description", &c.Description)...)
	diags = append(diags, decodeBool(content.Attributes, "numbered", &c.Numbered)...)

	for _, block := range content.Blocks {
		childName := block.Labels[0]
		if c.Has(childName) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate attribute definition",
				Detail:   fmt.Sprintf("An attribute named '%s' has already been defined in '%s'.", childName, name),
				Subject:  &block.DefRange,
			})
			continue
		}

		var child schema.Node
		var childDiags hcl.Diagnostics
		switch block.Type {
		case "attribute":
			child, childDiags = translateLeaf(block.Body, childName, block.DefRange)
		case "container":
			child, childDiags = translateContainer(block.Body, childName)
		case "array":
			child, childDiags = translateArray(block.Body, childName)
		}
		diags = append(diags, childDiags...)
		if childDiags.HasErrors() {
			continue
		}
		c.Add(child)
	}

	return c, diags
}

// translateArray converts an `array` block. Its body describes the item.
func translateArray(body hcl.Body, name string) (*schema.ArrayContainer, hcl.Diagnostics) {
	item, diags := translateContainer(body, name)
	if diags.HasErrors() {
		return nil, diags
	}
	arr := &schema.ArrayContainer{
		Name:        name,
		Description: item.Description,
		Edit:        item.Edit,
		Item:        item,
	}
	// The edit type belongs to the array; items fall back to their leaves.
	item.Edit = ""
	return arr, diags
}

// translateLeaf converts an `attribute` or `item` block into a leaf.
func translateLeaf(body hcl.Body, name string, defRange hcl.Range) (*schema.Leaf, hcl.Diagnostics) {
	content, diags := body.Content(attributeBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	valTypeAttr, exists := content.Attributes["val_type"]
	if !exists {
		missing := body.MissingItemRange()
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing 'val_type' attribute",
			Detail:   fmt.Sprintf("The 'val_type' attribute is required for attribute '%s'.", name),
			Subject:  &missing,
		})
		return nil, diags
	}

	valType, typeDiags := translateValType(valTypeAttr.Expr)
	diags = append(diags, typeDiags...)
	if typeDiags.HasErrors() {
		return nil, diags
	}

	leaf := &schema.Leaf{Name: name, ValType: valType}
	templatable := true
	attrs := content.Attributes
	diags = append(diags, decodeString(attrs, "description", &leaf.Description)...)
	diags = append(diags, decodeString(attrs, "edit_type", (*string)(&leaf.Edit))...)
	diags = append(diags, decodeString(attrs, "base", &leaf.Base)...)
	diags = append(diags, decodeBool(attrs, "array_ok", &leaf.ArrayOk)...)
	diags = append(diags, decodeBool(attrs, "free_length", &leaf.FreeLength)...)
	diags = append(diags, decodeBool(attrs, "no_blank", &leaf.NoBlank)...)
	diags = append(diags, decodeBool(attrs, "strict", &leaf.Strict)...)
	diags = append(diags, decodeBool(attrs, "templatable", &templatable)...)
	leaf.NoTemplate = !templatable
	diags = append(diags, decodeStrings(attrs, "flags", &leaf.Flags)...)
	diags = append(diags, decodeStrings(attrs, "extras", &leaf.Extras)...)

	var floatDiags hcl.Diagnostics
	leaf.Min, floatDiags = decodeFloatPtr(attrs, "min")
	diags = append(diags, floatDiags...)
	leaf.Max, floatDiags = decodeFloatPtr(attrs, "max")
	diags = append(diags, floatDiags...)

	if attr, ok := attrs["default"]; ok {
		val, valDiags := literalValue(attr)
		diags = append(diags, valDiags...)
		leaf.Default = val
	}

	if attr, ok := attrs["values"]; ok {
		val, valDiags := literalValue(attr)
		diags = append(diags, valDiags...)
		list, isList := val.([]any)
		if !isList && !valDiags.HasErrors() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid 'values' attribute",
				Detail:   fmt.Sprintf("The 'values' of attribute '%s' must be a list.", name),
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
		leaf.Values = list
	}

	if attr, ok := attrs["implied_edits"]; ok {
		val, valDiags := literalValue(attr)
		diags = append(diags, valDiags...)
		edits, isMap := val.(map[string]any)
		if !isMap && !valDiags.HasErrors() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid 'implied_edits' attribute",
				Detail:   fmt.Sprintf("The 'implied_edits' of attribute '%s' must be an object.", name),
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
		leaf.ImpliedEdits = edits
	}

	for i, block := range content.Blocks.OfType("item") {
		item, itemDiags := translateLeaf(block.Body, fmt.Sprintf("%s[%d]", name, i), block.DefRange)
		diags = append(diags, itemDiags...)
		if itemDiags.HasErrors() {
			continue
		}
		if item.Edit == "" {
			item.Edit = leaf.Edit
		}
		leaf.Items = append(leaf.Items, item)
	}

	diags = append(diags, checkLeafShape(leaf, defRange)...)
	return leaf, diags
}

// checkLeafShape validates constraints that depend on the value type.
func checkLeafShape(leaf *schema.Leaf, subject hcl.Range) hcl.Diagnostics {
	var diags hcl.Diagnostics
	fail := func(detail string) {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid attribute definition",
			Detail:   fmt.Sprintf("Attribute '%s': %s", leaf.Name, detail),
			Subject:  &subject,
		})
	}

	switch leaf.ValType {
	case schema.Enumerated:
		if len(leaf.Values) == 0 {
			fail("enumerated attributes require 'values'.")
		}
	case schema.FlagList:
		if len(leaf.Flags) == 0 {
			fail("flaglist attributes require 'flags'.")
		}
	case schema.SubplotID:
		if leaf.Base == "" {
			fail("subplotid attributes require 'base'.")
		}
	case schema.InfoArray:
		if len(leaf.Items) == 0 {
			fail("info_array attributes require at least one 'item' block.")
		}
	}
	if leaf.Min != nil && leaf.Max != nil && *leaf.Min > *leaf.Max {
		fail("'min' is greater than 'max'.")
	}
	return diags
}

func decodeString(attrs hcl.Attributes, name string, target *string) hcl.Diagnostics {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}
	return gohcl.DecodeExpression(attr.Expr, nil, target)
}

func decodeBool(attrs hcl.Attributes, name string, target *bool) hcl.Diagnostics {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}
	return gohcl.DecodeExpression(attr.Expr, nil, target)
}

func decodeStrings(attrs hcl.Attributes, name string, target *[]string) hcl.Diagnostics {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}
	return gohcl.DecodeExpression(attr.Expr, nil, target)
}

func decodeFloatPtr(attrs hcl.Attributes, name string) (*float64, hcl.Diagnostics) {
	attr, ok := attrs[name]
	if !ok {
		return nil, nil
	}
	var f float64
	diags := gohcl.DecodeExpression(attr.Expr, nil, &f)
	if diags.HasErrors() {
		return nil, diags
	}
	return &f, nil
}

// literalValue evaluates an attribute with a nil eval context, because
// manifest values must be literals, and binds the result to Go.
func literalValue(attr *hcl.Attribute) (any, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	goVal, err := CtyToGo(val)
	if err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported literal value",
			Detail:   err.Error(),
			Subject:  attr.Expr.Range().Ptr(),
		})
		return nil, diags
	}
	return goVal, diags
}
