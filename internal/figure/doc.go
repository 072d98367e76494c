// Package figure holds the in-memory figure model: the sparse user input
// (Figure), the fully resolved configuration (Resolved), per-leaf
// provenance, and the resolution Context threaded through every coercion
// and defaults-supply call.
//
// Trees are plain map[string]any / []any values so that arbitrary, loosely
// typed input from JSON or YAML can be carried without loss. Numbers are
// normalized to float64 on load.
package figure
