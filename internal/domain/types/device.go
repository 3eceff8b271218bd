package types

import "strings"

// DeviceState is the connection state reported by the device driver.
type DeviceState string

// DeviceReady is the state of a device that accepts commands.
const DeviceReady DeviceState = "device"

// LiveDevice is one entry of the driver's live device list.
type LiveDevice struct {
	Serial string
	State  DeviceState
	Model  string
}

// Ready reports whether the device accepts commands.
func (d LiveDevice) Ready() bool { return d.State == DeviceReady }

// MatchPolicy decides whether a live device identifier refers to an address.
type MatchPolicy string

const (
	// MatchSubstring accepts any identifier containing the address.
	// It tolerates port variations but can match unrelated devices whose
	// identifier happens to contain the same character sequence.
	MatchSubstring MatchPolicy = "substring"
	// MatchExact requires the identifier to equal the address.
	MatchExact MatchPolicy = "exact"
)

// Matches applies the policy. Unknown policies fall back to MatchSubstring.
func (p MatchPolicy) Matches(identifier string, addr Address) bool {
	if addr == "" {
		return false
	}
	if p == MatchExact {
		return identifier == addr.String()
	}
	return strings.Contains(identifier, addr.String())
}

// Valid reports whether p is a known policy.
func (p MatchPolicy) Valid() bool {
	return p == MatchSubstring || p == MatchExact
}
