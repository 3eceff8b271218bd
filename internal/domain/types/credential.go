package types

import (
	"errors"
	"strings"
)

// CredentialKind tags the plaintext form of a stored credential.
type CredentialKind string

const (
	// CredentialPIN is a PIN or password typed on the lock screen.
	CredentialPIN CredentialKind = "PIN"
	// CredentialPattern is a sequence of 3x3 grid cells numbered 1-9.
	CredentialPattern CredentialKind = "PATTERN"
)

const tagSeparator = ":"

var (
	// ErrUnknownCredential is returned when decrypted plaintext carries no known tag.
	ErrUnknownCredential = errors.New("unknown credential type")
	// ErrEmptyCredential is returned for an empty PIN or pattern.
	ErrEmptyCredential = errors.New("credential cannot be empty")
	// ErrInvalidPattern is returned when a pattern holds no usable grid digit,
	// or, at configuration time, any character outside 1-9.
	ErrInvalidPattern = errors.New("invalid pattern: only grid digits 1-9 are allowed")
)

// Credential is the phone unlock secret.
type Credential struct {
	Kind   CredentialKind
	Secret string
}

// NewPIN validates and returns a PIN credential.
func NewPIN(pin string) (Credential, error) {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return Credential{}, ErrEmptyCredential
	}
	return Credential{Kind: CredentialPIN, Secret: pin}, nil
}

// NewPattern validates and returns a pattern credential.
func NewPattern(pattern string) (Credential, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return Credential{}, ErrEmptyCredential
	}
	for _, r := range pattern {
		if r < '1' || r > '9' {
			return Credential{}, ErrInvalidPattern
		}
	}
	return Credential{Kind: CredentialPattern, Secret: pattern}, nil
}

// Encode returns the tagged plaintext form, e.g. "PIN:1234".
func (c Credential) Encode() string {
	return string(c.Kind) + tagSeparator + c.Secret
}

// ParseCredential reverses Encode. The tag is the only discriminator.
func ParseCredential(s string) (Credential, error) {
	for _, kind := range []CredentialKind{CredentialPIN, CredentialPattern} {
		prefix := string(kind) + tagSeparator
		if strings.HasPrefix(s, prefix) {
			return Credential{Kind: kind, Secret: s[len(prefix):]}, nil
		}
	}
	return Credential{}, ErrUnknownCredential
}
