package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"phonectl/internal/adb"
	"phonectl/internal/domain"
)

// currentTarget sends screen commands to the live device matching the
// current pointer at the time of each call, so a reconnect earlier in the
// same invocation is honoured.
type currentTarget struct {
	*adb.Client
	current domain.CurrentDeviceStore
	policy  domain.MatchPolicy

	// last resolution, reused while the current address is unchanged
	addr   domain.Address
	target *adb.Client
}

func (t *currentTarget) ScreenGeometry(ctx context.Context) (domain.ScreenGeometry, error) {
	return t.resolve(ctx).ScreenGeometry(ctx)
}

func (t *currentTarget) Inject(ctx context.Context, ev domain.InputEvent) error {
	return t.resolve(ctx).Inject(ctx, ev)
}

// resolve picks the serial of the ready device matching the current address.
// Without a match adb falls back to its default device.
func (t *currentTarget) resolve(ctx context.Context) *adb.Client {
	addr, ok, err := t.current.CurrentDevice()
	if err != nil || !ok {
		return t.Client
	}
	if t.target != nil && t.addr == addr {
		return t.target
	}
	devices, err := t.Client.ListDevices(ctx)
	if err != nil {
		return t.Client
	}
	for _, d := range devices {
		if d.Ready() && t.policy.Matches(d.Serial, addr) {
			t.addr, t.target = addr, t.Client.WithSerial(d.Serial)
			return t.target
		}
	}
	log.Debug().Str("address", addr.String()).Msg("current device not listed; using adb default device")
	return t.Client
}

var _ domain.DeviceDriver = (*currentTarget)(nil)
