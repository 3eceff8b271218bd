package app

import (
	"time"

	"github.com/rs/zerolog/log"

	"phonectl/internal/adb"
	"phonectl/internal/domain"
	callsvc "phonectl/internal/services/call"
	sessionsvc "phonectl/internal/services/session"
	unlocksvc "phonectl/internal/services/unlock"
	vaultsvc "phonectl/internal/services/vault"
	"phonectl/internal/store"
)

// SessionContext bundles all stores, services and the driver for the CLI.
type SessionContext struct {
	Config Config

	Keys    *store.KeyFileStore
	Devices domain.DeviceRegistry
	Current domain.CurrentDeviceStore

	ADB     *adb.Client
	Vault   domain.VaultService
	Session domain.SessionService
	Unlock  domain.UnlockService
	Call    domain.CallService
}

// NewSessionContext constructs the dependency graph from cfg. Nothing is
// read from disk until a service is used.
func NewSessionContext(cfg Config) (*SessionContext, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// File-based stores
	keys := store.NewKeyFileStore(cfg.KeyFile)
	keys.OnRegenerate(func(ev domain.KeyRegenerated) {
		log.Error().
			Str("path", ev.Path).
			Str("fingerprint", ev.Fingerprint.String()).
			Msg("vault key replaced; run `phonectl config` to store your credential again")
	})
	blobs := store.NewCredentialFileStore(cfg.CredentialFile)
	devices := store.NewDeviceFileStore(cfg.DevicesFile)
	current := store.NewCurrentDeviceFileStore(cfg.CurrentFile)

	client := adb.New(cfg.ADBPath)

	// High-level services
	vault := vaultsvc.New(keys, blobs)
	sess := sessionsvc.New(client, devices, current, sessionsvc.Config{
		Policy: cfg.MatchPolicy,
		Delay:  time.Duration(cfg.ReconnectDelay),
	})
	target := &currentTarget{Client: client, current: current, policy: cfg.MatchPolicy}
	unlock := unlocksvc.New(vault, target, nil)
	calls := callsvc.New(target)

	return &SessionContext{
		Config:  cfg,
		Keys:    keys,
		Devices: devices,
		Current: current,
		ADB:     client,
		Vault:   vault,
		Session: sess,
		Unlock:  unlock,
		Call:    calls,
	}, nil
}
