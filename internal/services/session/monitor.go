package session

import (
	"context"

	"github.com/rs/zerolog/log"

	"phonectl/internal/domain"
)

// Monitor reports whether the current device is live and ready.
type Monitor struct {
	driver  domain.DeviceDriver
	current domain.CurrentDeviceStore
	policy  domain.MatchPolicy
}

// NewMonitor returns a Monitor matching live identifiers with policy.
func NewMonitor(driver domain.DeviceDriver, current domain.CurrentDeviceStore, policy domain.MatchPolicy) *Monitor {
	return &Monitor{driver: driver, current: current, policy: policy}
}

// Connected is true when a ready live device matches the current address.
// Without a current device the driver is not consulted.
func (m *Monitor) Connected(ctx context.Context) bool {
	addr, ok, err := m.current.CurrentDevice()
	if err != nil {
		log.Warn().Err(err).Msg("read current device")
		return false
	}
	if !ok {
		return false
	}
	return m.live(ctx, addr)
}

// live lists devices and looks for a ready entry matching addr.
func (m *Monitor) live(ctx context.Context, addr domain.Address) bool {
	devices, err := m.driver.ListDevices(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("list devices")
		return false
	}
	for _, d := range devices {
		if d.Ready() && m.policy.Matches(d.Serial, addr) {
			return true
		}
	}
	return false
}

// Compile-time assertion that Monitor implements domain.ConnectionMonitor.
var _ domain.ConnectionMonitor = (*Monitor)(nil)
