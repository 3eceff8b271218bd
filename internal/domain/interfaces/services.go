package interfaces

import (
	"context"

	domaintypes "phonectl/internal/domain/types"
)

// VaultService seals, stores and opens the unlock credential.
type VaultService interface {
	SaveCredential(cred domaintypes.Credential) error
	LoadCredential() (domaintypes.Credential, error)
	Status() (domaintypes.VaultStatus, error)
}

// ConnectionMonitor decides whether the current device is reachable.
type ConnectionMonitor interface {
	Connected(ctx context.Context) bool
}

// SessionService tracks, restores and pairs the current device.
type SessionService interface {
	ConnectionMonitor
	Reconnect(ctx context.Context) (bool, error)
	Ensure(ctx context.Context) (bool, error)
	Pair(
		ctx context.Context,
		addr domaintypes.Address,
		label domaintypes.Label,
	) (domaintypes.Label, error)
	Status(ctx context.Context) (domaintypes.SessionStatus, error)
}

// UnlockService turns the stored credential into gestures on the device.
type UnlockService interface {
	Unlock(ctx context.Context) error
	Wake(ctx context.Context) error
}

// CallService answers and ends phone calls on the device.
type CallService interface {
	Answer(ctx context.Context) error
	End(ctx context.Context) error
}
