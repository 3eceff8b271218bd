package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"phonectl/internal/domain"
)

// Fingerprint returns a short hex fingerprint of the vault key.
//
// It hashes with BLAKE2b-256 and truncates to 8 bytes (16 hex chars), enough
// to tell two keys apart without exposing either.
func Fingerprint(key *domain.SymmetricKey) domain.Fingerprint {
	sum := blake2b.Sum256(key.Slice())
	return domain.Fingerprint(hex.EncodeToString(sum[:8]))
}
