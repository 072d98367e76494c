// Package app wires the figcore modules into a registry and runs one
// resolution: load a figure, apply a template, apply edits, and write the
// resolved figure or the template extracted from it. It knows nothing
// about flags or exit codes.
package app
