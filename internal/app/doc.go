// Package app wires application dependencies for the CLI.
//
// It loads Config from the YAML file in the phonectl home directory and
// builds the concrete stores, the adb driver and the high-level services,
// exposing them via SessionContext for commands to use.
package app
