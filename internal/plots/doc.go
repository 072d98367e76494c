// Package plots runs the defaults-supply pipeline that turns a sparse
// figure into a fully resolved configuration, and owns the Plot object whose
// restyle, relayout and update entry points patch the figure and report the
// recomputation phases each mutation requires.
package plots
