package interfaces

import (
	"context"

	domaintypes "phonectl/internal/domain/types"
)

// DeviceDriver is how we talk to the phone, all with context.
type DeviceDriver interface {
	ListDevices(ctx context.Context) ([]domaintypes.LiveDevice, error)
	Connect(ctx context.Context, addr domaintypes.Address) error
	ScreenGeometry(ctx context.Context) (domaintypes.ScreenGeometry, error)
	Inject(ctx context.Context, event domaintypes.InputEvent) error
}

// SetupDriver covers the one-off USB to Wi-Fi pairing steps.
type SetupDriver interface {
	Available(ctx context.Context) bool
	USBDevices(ctx context.Context) ([]domaintypes.LiveDevice, error)
	EnableTCPIP(ctx context.Context, serial string, port int) error
	DeviceIP(ctx context.Context, serial string) (string, error)
}
