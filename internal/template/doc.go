// Package template extracts reusable style templates from figures and
// applies them back.
//
// A Template has the persisted shape {data: {type: [...]}, layout: {...}}.
// Only style-class attributes the author explicitly set are captured:
// attributes whose change needs data recalculation, axis retyping, range or
// camera updates, or a full replot are left out, as are data arrays and
// per-point arrays.
//
// During defaults-supply the active template is consulted by the coercion
// engine as a fallback beneath the user input. Apply performs the same merge
// eagerly and returns a self-contained figure.
package template
