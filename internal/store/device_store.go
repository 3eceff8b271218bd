package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"phonectl/internal/domain"
)

const defaultLabelPrefix = "Device_"

var (
	// ErrInvalidRecord is returned for an address or label that would break
	// the tab-separated file format.
	ErrInvalidRecord = errors.New("device address and label must not be empty or contain tabs or newlines")
)

// DeviceFileStore persists saved devices as address<TAB>label lines.
type DeviceFileStore struct {
	path string
	mu   sync.Mutex
}

// NewDeviceFileStore returns a DeviceFileStore backed by path.
func NewDeviceFileStore(path string) *DeviceFileStore {
	return &DeviceFileStore{path: path}
}

// LoadDevices parses the registry. Lines that do not hold exactly two
// tab-separated fields are skipped without error.
func (s *DeviceFileStore) LoadDevices() (map[domain.Address]domain.Label, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// SaveDevices rewrites the whole registry from devices.
func (s *DeviceFileStore) SaveDevices(devices map[domain.Address]domain.Label) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(devices)
}

// UpsertDevice saves addr under label, replacing any existing record for addr.
// An empty label becomes Device_N where N is the registry size plus one.
// It returns the label that was stored.
func (s *DeviceFileStore) UpsertDevice(addr domain.Address, label domain.Label) (domain.Label, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	label = domain.Label(strings.TrimSpace(label.String()))
	if !validField(addr.String()) || (label != "" && !validField(label.String())) {
		return "", ErrInvalidRecord
	}
	devices, err := s.load()
	if err != nil {
		return "", err
	}
	if label == "" {
		// Device_N can repeat an existing label once records have been removed.
		label = domain.Label(fmt.Sprintf("%s%d", defaultLabelPrefix, len(devices)+1))
	}
	devices[addr] = label
	if err := s.save(devices); err != nil {
		return "", err
	}
	return label, nil
}

// RenameDevice relabels an existing record. An unknown address is logged and
// reported as false without touching the file.
func (s *DeviceFileStore) RenameDevice(addr domain.Address, label domain.Label) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	label = domain.Label(strings.TrimSpace(label.String()))
	if !validField(label.String()) {
		return false, ErrInvalidRecord
	}
	devices, err := s.load()
	if err != nil {
		return false, err
	}
	if _, ok := devices[addr]; !ok {
		log.Warn().Str("address", addr.String()).Msg("rename: device not found")
		return false, nil
	}
	devices[addr] = label
	return true, s.save(devices)
}

// RemoveDevice deletes the record for addr and reports whether it existed.
func (s *DeviceFileStore) RemoveDevice(addr domain.Address) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	devices, err := s.load()
	if err != nil {
		return false, err
	}
	if _, ok := devices[addr]; !ok {
		return false, nil
	}
	delete(devices, addr)
	return true, s.save(devices)
}

func (s *DeviceFileStore) load() (map[domain.Address]domain.Label, error) {
	devices := make(map[domain.Address]domain.Label)
	b, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	for n, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 || fields[0] == "" {
			log.Debug().Str("path", s.path).Int("line", n+1).Msg("skipping malformed device record")
			continue
		}
		devices[domain.Address(fields[0])] = domain.Label(fields[1])
	}
	return devices, nil
}

func (s *DeviceFileStore) save(devices map[domain.Address]domain.Label) error {
	addrs := make([]string, 0, len(devices))
	for addr := range devices {
		addrs = append(addrs, addr.String())
	}
	sort.Strings(addrs)

	var sb strings.Builder
	for _, addr := range addrs {
		sb.WriteString(addr)
		sb.WriteByte('\t')
		sb.WriteString(devices[domain.Address(addr)].String())
		sb.WriteByte('\n')
	}
	return writeFile(s.path, []byte(sb.String()), fileMode)
}

func validField(s string) bool {
	return s != "" && !strings.ContainsAny(s, "\t\r\n")
}

// Compile-time assertion that DeviceFileStore implements domain.DeviceRegistry.
var _ domain.DeviceRegistry = (*DeviceFileStore)(nil)
