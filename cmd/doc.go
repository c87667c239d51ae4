// Package cmd wires the cobra-based CLI commands for cwsctl.
//
// Every action maps to one subcommand: upload, publish, testers, info and
// setup. Commands resolve credentials and the packaged artifact before any
// network call and exit non-zero on the first failure.
package cmd
