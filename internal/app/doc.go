// Package app wires application dependencies for the CLI.
//
// It builds the in-process reference oracle and, from Config, the oracle under
// test (an external program, a remote service or the reference itself),
// exposing them via the Wire struct for commands to use.
package app
