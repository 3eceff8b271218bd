package vault

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"phonectl/internal/crypto"
	"phonectl/internal/domain"
	domaintypes "phonectl/internal/domain/types"
	"phonectl/internal/util/memzero"
)

// ErrNoCredential is returned when no credential has been configured yet.
var ErrNoCredential = errors.New("no credential configured; run `phonectl config` first")

// Service stores and retrieves the unlock credential.
type Service struct {
	keys  domain.KeyStore
	blobs domain.CredentialStore
}

// New constructs a vault Service over the key and blob stores.
func New(keys domain.KeyStore, blobs domain.CredentialStore) *Service {
	return &Service{keys: keys, blobs: blobs}
}

// SaveCredential encrypts cred under a fresh nonce and replaces any stored blob.
// The key is created on first use.
func (s *Service) SaveCredential(cred domain.Credential) error {
	key, err := s.keys.GetOrCreateKey()
	if err != nil {
		return err
	}
	defer memzero.Zero(key.Slice())

	blob, err := crypto.Encrypt(&key, cred.Encode())
	if err != nil {
		return fmt.Errorf("seal credential: %w", err)
	}
	if err := s.blobs.SaveBlob(blob); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	log.Debug().Str("kind", string(cred.Kind)).Msg("credential saved")
	return nil
}

// LoadCredential opens the stored blob.
//
// It returns ErrNoCredential when nothing is stored, crypto.ErrDecode or
// crypto.ErrAuth when the blob cannot be opened, and ErrUnknownCredential
// when the plaintext carries no known tag.
func (s *Service) LoadCredential() (domain.Credential, error) {
	blob, ok, err := s.blobs.LoadBlob()
	if err != nil {
		return domain.Credential{}, fmt.Errorf("load credential: %w", err)
	}
	if !ok {
		return domain.Credential{}, ErrNoCredential
	}

	key, err := s.keys.GetOrCreateKey()
	if err != nil {
		return domain.Credential{}, err
	}
	defer memzero.Zero(key.Slice())

	plaintext, err := crypto.Decrypt(&key, blob)
	if err != nil {
		return domain.Credential{}, err
	}
	return domaintypes.ParseCredential(plaintext)
}

// Status reports what is on disk. It never creates a missing key: without one the
// credential is reported present but not decryptable. An unreadable key file
// is regenerated as on any other access.
func (s *Service) Status() (domain.VaultStatus, error) {
	var st domain.VaultStatus

	present, err := s.keys.KeyExists()
	if err != nil {
		return st, err
	}
	st.KeyPresent = present

	_, st.CredentialPresent, err = s.blobs.LoadBlob()
	if err != nil {
		return st, fmt.Errorf("load credential: %w", err)
	}

	if !st.KeyPresent {
		if st.CredentialPresent {
			st.DecryptError = errors.New("vault key is missing")
		}
		return st, nil
	}

	key, err := s.keys.GetOrCreateKey()
	if err != nil {
		return st, err
	}
	st.KeyFingerprint = crypto.Fingerprint(&key)
	memzero.Zero(key.Slice())

	if st.CredentialPresent {
		cred, err := s.LoadCredential()
		if err != nil {
			st.DecryptError = err
		} else {
			st.CredentialKind = cred.Kind
		}
	}
	return st, nil
}

// Compile-time assertion that Service implements domain.VaultService.
var _ domain.VaultService = (*Service)(nil)
