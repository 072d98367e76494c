// Package schema defines the attribute schema: a static, recursively nested,
// declarative tree describing every configurable property of a figure.
//
// A node is one of three variants:
//
//   - *Leaf: a single value with a ValType, optional constraints (min, max,
//     allowed values, flags) and a static default.
//   - *Container: a mapping from child name to child node.
//   - *ArrayContainer: a growable ordered sequence of sibling sub-trees, each
//     validated against one shared item container (menu buttons, slider
//     steps).
//
// Every node may carry an EditType naming the recomputation phases a change
// to it requires. An EditType on a container overrides the union of its
// children's edit types.
//
// Schemas are immutable once built. They are normally produced from HCL
// manifests by the hcl package and composed by the registry.
package schema
