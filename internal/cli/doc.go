// Package cli turns command-line arguments into an app.Config. Edits are
// given as repeatable path=value flags, and usage problems are reported as
// an ExitError carrying the process exit code.
package cli
