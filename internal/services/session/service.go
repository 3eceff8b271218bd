package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"phonectl/internal/domain"
	"phonectl/internal/util/clock"
)

// ErrNotConnected is returned by Pair when the device does not show up as
// ready after connecting.
var ErrNotConnected = errors.New("device did not come online")

// Service combines the monitor, the reconnector and pairing.
type Service struct {
	*Monitor
	reconnector *Reconnector

	driver  domain.DeviceDriver
	devices domain.DeviceRegistry
	current domain.CurrentDeviceStore
	delay   time.Duration
	clock   clock.Clock
}

// Config holds the tunables of a session Service.
type Config struct {
	Policy domain.MatchPolicy
	Delay  time.Duration
	Clock  clock.Clock
}

// New constructs a session Service.
func New(
	driver domain.DeviceDriver,
	devices domain.DeviceRegistry,
	current domain.CurrentDeviceStore,
	cfg Config,
) *Service {
	monitor := NewMonitor(driver, current, cfg.Policy)
	rc := NewReconnector(monitor, devices, current, cfg.Delay, cfg.Clock)
	return &Service{
		Monitor:     monitor,
		reconnector: rc,
		driver:      driver,
		devices:     devices,
		current:     current,
		delay:       rc.delay,
		clock:       rc.clock,
	}
}

// Reconnect delegates to the Reconnector.
func (s *Service) Reconnect(ctx context.Context) (bool, error) {
	return s.reconnector.Reconnect(ctx)
}

// Ensure returns true when the current device is connected, reconnecting
// first if it is not.
func (s *Service) Ensure(ctx context.Context) (bool, error) {
	if s.Connected(ctx) {
		return true, nil
	}
	ok, err := s.Reconnect(ctx)
	if err != nil || !ok {
		return false, err
	}
	return s.Connected(ctx), nil
}

// Pair connects to addr, saves it under label and makes it current.
// It returns the stored label, which is Device_N when label is empty.
// The record is saved only once the device is seen as ready.
func (s *Service) Pair(ctx context.Context, addr domain.Address, label domain.Label) (domain.Label, error) {
	if err := s.driver.Connect(ctx, addr); err != nil {
		return "", err
	}
	if err := s.clock.Sleep(ctx, s.delay); err != nil {
		return "", err
	}
	if !s.live(ctx, addr) {
		return "", fmt.Errorf("%w: %s", ErrNotConnected, addr)
	}

	stored, err := s.devices.UpsertDevice(addr, label)
	if err != nil {
		return "", fmt.Errorf("save device: %w", err)
	}
	if err := s.current.SetCurrentDevice(addr); err != nil {
		return "", fmt.Errorf("set current device: %w", err)
	}
	log.Info().Str("address", addr.String()).Str("label", stored.String()).Msg("paired")
	return stored, nil
}

// Status describes the current device, its saved label and reachability.
func (s *Service) Status(ctx context.Context) (domain.SessionStatus, error) {
	var st domain.SessionStatus
	addr, ok, err := s.current.CurrentDevice()
	if err != nil {
		return st, fmt.Errorf("read current device: %w", err)
	}
	if !ok {
		return st, nil
	}
	st.Current, st.HasDevice = addr, true

	devices, err := s.devices.LoadDevices()
	if err != nil {
		return st, fmt.Errorf("load devices: %w", err)
	}
	st.Label = devices[addr]
	st.Connected = s.live(ctx, addr)
	return st, nil
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
