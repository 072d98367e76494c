// Package registry provides the central "glue" for the module system.
//
// Every visual component (legend, axes, menus, ...) and every trace type is
// a Module that registers itself here. The Registry stores the components in
// registration order, which is the order their defaults routines run in,
// and composes the merged layout schema and the per-type trace schemas from
// the base manifests and each module's own manifest.
//
// During application startup the registry is validated: every manifest must
// be internally consistent (defaults pass their own validation, edit types
// use the right vocabulary, no two modules define the same attribute), which
// prevents a wide class of runtime errors.
package registry
