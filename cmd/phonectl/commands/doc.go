// Package commands defines the phonectl CLI and wires dependencies for subcommands.
//
// Commands
//
//   - setup              Pair a USB-connected phone for wireless adb
//   - config             Store the phone unlock PIN or pattern (encrypted)
//   - unlock             Wake the phone and enter the stored credential
//   - wake               Turn the screen on and keep it on
//   - answer             Answer the incoming call
//   - end, reject        Hang up or reject the current call
//   - reconnect          Try every saved device until one connects
//   - status             Show the vault and the current device
//   - devices list       List saved devices
//   - devices rename     Relabel a saved device
//   - devices remove     Forget a saved device
//   - devices use        Make a saved device current
//
// # Implementation
//
// The root command loads config.yaml from the home directory, configures the
// global zerolog logger and builds an app.SessionContext before any
// subcommand runs, so handlers share one set of stores and services.
package commands
