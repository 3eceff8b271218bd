package session

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"phonectl/internal/domain"
	"phonectl/internal/util/clock"
)

// DefaultReconnectDelay is the wait between a connect request and checking
// whether it took.
const DefaultReconnectDelay = 500 * time.Millisecond

// Reconnector tries each saved device once until one connects.
type Reconnector struct {
	monitor *Monitor
	devices domain.DeviceRegistry
	current domain.CurrentDeviceStore
	delay   time.Duration
	clock   clock.Clock
}

// NewReconnector returns a Reconnector that checks each attempt with monitor
// after delay (DefaultReconnectDelay when zero or negative).
func NewReconnector(
	monitor *Monitor,
	devices domain.DeviceRegistry,
	current domain.CurrentDeviceStore,
	delay time.Duration,
	clk clock.Clock,
) *Reconnector {
	if delay <= 0 {
		delay = DefaultReconnectDelay
	}
	if clk == nil {
		clk = clock.Real{}
	}
	return &Reconnector{monitor: monitor, devices: devices, current: current, delay: delay, clock: clk}
}

// Reconnect walks the registry in no particular order. The first address
// that shows up as a ready device after its wait becomes current. It returns
// false once every address has been tried, or straight away for an empty
// registry. Errors are reserved for registry and pointer I/O.
func (r *Reconnector) Reconnect(ctx context.Context) (bool, error) {
	devices, err := r.devices.LoadDevices()
	if err != nil {
		return false, fmt.Errorf("load devices: %w", err)
	}
	if len(devices) == 0 {
		log.Debug().Msg("reconnect: no saved devices")
		return false, nil
	}

	for addr, label := range devices {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		l := log.With().Str("address", addr.String()).Str("label", label.String()).Logger()
		if err := r.monitor.driver.Connect(ctx, addr); err != nil {
			l.Debug().Err(err).Msg("reconnect: connect")
		}
		if err := r.clock.Sleep(ctx, r.delay); err != nil {
			return false, err
		}
		if !r.monitor.live(ctx, addr) {
			l.Debug().Msg("reconnect: not live")
			continue
		}
		if err := r.current.SetCurrentDevice(addr); err != nil {
			return false, fmt.Errorf("set current device: %w", err)
		}
		l.Info().Msg("reconnected")
		return true, nil
	}
	return false, nil
}
