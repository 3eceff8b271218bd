package domain

import (
	interfaces "phonectl/internal/domain/interfaces"
	types "phonectl/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Address               = types.Address
	Label                 = types.Label
	Fingerprint           = types.Fingerprint
	EncryptedBlob         = types.EncryptedBlob
	SymmetricKey          = types.SymmetricKey
	KeyRegenerated        = types.KeyRegenerated
	KeyRegenerationReason = types.KeyRegenerationReason
	Credential            = types.Credential
	CredentialKind        = types.CredentialKind
	DeviceState           = types.DeviceState
	LiveDevice            = types.LiveDevice
	MatchPolicy           = types.MatchPolicy
	ScreenGeometry        = types.ScreenGeometry
	Point                 = types.Point
	InputEvent            = types.InputEvent
	InputEventKind        = types.InputEventKind
	VaultStatus           = types.VaultStatus
	SessionStatus         = types.SessionStatus
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyStore           = interfaces.KeyStore
	CredentialStore    = interfaces.CredentialStore
	DeviceRegistry     = interfaces.DeviceRegistry
	CurrentDeviceStore = interfaces.CurrentDeviceStore
	DeviceDriver       = interfaces.DeviceDriver
	SetupDriver        = interfaces.SetupDriver
	VaultService       = interfaces.VaultService
	ConnectionMonitor  = interfaces.ConnectionMonitor
	SessionService     = interfaces.SessionService
	UnlockService      = interfaces.UnlockService
	CallService        = interfaces.CallService
)

// Constants re-exported from the types subpackage.
const (
	SymmetricKeySize = types.SymmetricKeySize

	KeyCorrupt     = types.KeyCorrupt
	KeyWrongLength = types.KeyWrongLength

	CredentialPIN     = types.CredentialPIN
	CredentialPattern = types.CredentialPattern

	DeviceReady = types.DeviceReady

	MatchSubstring = types.MatchSubstring
	MatchExact     = types.MatchExact
)
