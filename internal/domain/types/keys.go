package types

// SymmetricKeySize is the length of the vault key in bytes (AES-256).
const SymmetricKeySize = 32

// SymmetricKey is the single vault key used to seal the unlock credential.
type SymmetricKey [SymmetricKeySize]byte

// Slice returns the key as a []byte.
func (k *SymmetricKey) Slice() []byte { return k[:] }

// KeyRegenerationReason explains why an existing key file was replaced.
type KeyRegenerationReason string

const (
	// KeyCorrupt means the key file did not hold valid base64.
	KeyCorrupt KeyRegenerationReason = "corrupt"
	// KeyWrongLength means the key file decoded to something other than 32 bytes.
	KeyWrongLength KeyRegenerationReason = "wrong_length"
)

// KeyRegenerated is raised when an unreadable key file was silently replaced
// by a fresh key. Every blob sealed under the old key is now undecryptable.
type KeyRegenerated struct {
	Path        string
	Reason      KeyRegenerationReason
	Fingerprint Fingerprint
}
