// Package app wires the netsimplex CLI's cobra command tree to the
// config and simplex packages. It exists so main.go stays a
// two-line entrypoint and the command logic itself is testable without
// a subprocess.
package app
