package store

import (
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"phonectl/internal/crypto"
	"phonectl/internal/domain"
	"phonectl/internal/util/memzero"
)

// KeyFileStore persists the single vault key as base64 text.
type KeyFileStore struct {
	path string
	mu   sync.Mutex

	onRegenerate func(domain.KeyRegenerated)
}

// NewKeyFileStore returns a KeyFileStore backed by the file at path.
func NewKeyFileStore(path string) *KeyFileStore {
	return &KeyFileStore{path: path}
}

// OnRegenerate registers fn to be called whenever an unreadable key file is
// replaced by a fresh key.
func (s *KeyFileStore) OnRegenerate(fn func(domain.KeyRegenerated)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRegenerate = fn
}

// Path returns the key file location.
func (s *KeyFileStore) Path() string { return s.path }

// KeyExists reports whether a key file is present, without creating one.
func (s *KeyFileStore) KeyExists() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return exists(s.path)
}

// GetOrCreateKey returns the stored key, creating it on first use.
//
// A key file that is not valid base64 or does not decode to exactly 32 bytes
// is treated like a missing one: a new key is generated and written over it.
// Blobs sealed under the old key can no longer be opened. This is reported
// through OnRegenerate and a warning log, never refused.
func (s *KeyFileStore) GetOrCreateKey() (domain.SymmetricKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return domain.SymmetricKey{}, fmt.Errorf("read key file: %w", err)
	}

	var reason domain.KeyRegenerationReason
	if b != nil {
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(b)))
		switch {
		case err != nil:
			reason = domain.KeyCorrupt
		case len(raw) != domain.SymmetricKeySize:
			reason = domain.KeyWrongLength
			memzero.Zero(raw)
		default:
			var key domain.SymmetricKey
			copy(key[:], raw)
			memzero.Zero(raw)
			return key, nil
		}
	}

	key, err := crypto.GenerateKey()
	if err != nil {
		return domain.SymmetricKey{}, err
	}
	encoded := base64.StdEncoding.EncodeToString(key[:])
	if err := writeFile(s.path, []byte(encoded), fileMode); err != nil {
		return domain.SymmetricKey{}, fmt.Errorf("write key file: %w", err)
	}

	fp := crypto.Fingerprint(&key)
	if reason == "" {
		log.Debug().Str("path", s.path).Str("fingerprint", fp.String()).Msg("created vault key")
		return key, nil
	}

	ev := domain.KeyRegenerated{Path: s.path, Reason: reason, Fingerprint: fp}
	log.Warn().
		Str("path", ev.Path).
		Str("reason", string(ev.Reason)).
		Str("fingerprint", ev.Fingerprint.String()).
		Msg("vault key was unreadable and has been regenerated; previously saved credentials can no longer be decrypted")
	if s.onRegenerate != nil {
		s.onRegenerate(ev)
	}
	return key, nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
