package types

// VaultStatus summarises the on-disk vault without revealing the secret.
type VaultStatus struct {
	KeyPresent        bool
	KeyFingerprint    Fingerprint
	CredentialPresent bool
	CredentialKind    CredentialKind
	// DecryptError is set when the credential exists but cannot be opened.
	DecryptError error
}

// SessionStatus describes the current device and whether it is reachable.
type SessionStatus struct {
	Current   Address
	HasDevice bool
	Label     Label
	Connected bool
}
