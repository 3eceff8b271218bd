package store

import (
	"strings"
	"sync"

	"phonectl/internal/domain"
)

// CurrentDeviceFileStore persists the address of the active device.
//
// The address is not checked against the device registry.
type CurrentDeviceFileStore struct {
	path string
	mu   sync.Mutex
}

// NewCurrentDeviceFileStore returns a CurrentDeviceFileStore backed by path.
func NewCurrentDeviceFileStore(path string) *CurrentDeviceFileStore {
	return &CurrentDeviceFileStore{path: path}
}

// CurrentDevice returns the stored address. A missing or blank file reports false.
func (s *CurrentDeviceFileStore) CurrentDevice() (domain.Address, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return "", false, err
	}
	addr := strings.TrimSpace(string(b))
	if addr == "" {
		return "", false, nil
	}
	return domain.Address(addr), true, nil
}

// SetCurrentDevice records addr as the active device.
func (s *CurrentDeviceFileStore) SetCurrentDevice(addr domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeFile(s.path, []byte(addr), fileMode)
}

// Compile-time assertion that CurrentDeviceFileStore implements domain.CurrentDeviceStore.
var _ domain.CurrentDeviceStore = (*CurrentDeviceFileStore)(nil)
