// Package layoututil holds the building blocks shared by component
// defaults routines: discovery of data-driven component ids, per-instance
// coercers with template lookup, orientation-dependent positioning, templated
// array containers and publishing to the layout registries.
package layoututil
