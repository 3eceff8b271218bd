// Package vault seals the phone unlock credential under the local key and
// opens it again for the unlock flow.
//
// The plaintext is the tagged form "PIN:<secret>" or "PATTERN:<digits>";
// only the encrypted blob ever reaches disk.
package vault
