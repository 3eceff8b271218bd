// Package session tracks which saved phone is current and keeps it reachable.
//
// Monitor answers whether the current device is connected, Reconnector walks
// the device registry until one address answers, and Service ties both to
// the pairing flow used by `phonectl setup`.
package session
