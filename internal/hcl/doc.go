// Package hcl provides the concrete HCL implementation for attribute schema
// manifests. It is responsible for parsing `attributes.hcl` files,
// translating their blocks into schema nodes, and binding CTY literal values
// (defaults, allowed values, implied edits) to plain Go values.
//
// A manifest is a sequence of blocks:
//
//	attribute "orientation" {
//	  val_type  = "enumerated"
//	  values    = ["v", "h"]
//	  default   = "v"
//	  edit_type = "legend"
//	}
//
//	container "font" {
//	  attribute "size" {
//	    val_type = "number"
//	    min      = 1
//	  }
//	}
//
//	array "buttons" {
//	  edit_type = "arraydraw"
//	  attribute "label" { val_type = "string" }
//	}
//
// Attribute blocks may contain `item` blocks describing the positions of an
// info_array.
package hcl
