package store

import (
	"strings"
	"sync"

	"phonectl/internal/domain"
)

// CredentialFileStore persists the sealed unlock credential.
// The blob is the entire file; there is no versioning and no append.
type CredentialFileStore struct {
	path string
	mu   sync.Mutex
}

// NewCredentialFileStore returns a CredentialFileStore backed by path.
func NewCredentialFileStore(path string) *CredentialFileStore {
	return &CredentialFileStore{path: path}
}

// SaveBlob overwrites the credential file with blob.
func (s *CredentialFileStore) SaveBlob(blob domain.EncryptedBlob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeFile(s.path, []byte(blob), fileMode)
}

// LoadBlob returns the stored blob and whether the file was present.
func (s *CredentialFileStore) LoadBlob() (domain.EncryptedBlob, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return "", false, err
	}
	if b == nil {
		return "", false, nil
	}
	return domain.EncryptedBlob(strings.TrimSpace(string(b))), true, nil
}

// Compile-time assertion that CredentialFileStore implements domain.CredentialStore.
var _ domain.CredentialStore = (*CredentialFileStore)(nil)
