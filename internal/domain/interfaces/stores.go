package interfaces

import domaintypes "phonectl/internal/domain/types"

// KeyStore owns the single vault key.
type KeyStore interface {
	GetOrCreateKey() (domaintypes.SymmetricKey, error)
	KeyExists() (bool, error)
}

// CredentialStore persists the sealed unlock credential.
type CredentialStore interface {
	SaveBlob(blob domaintypes.EncryptedBlob) error
	LoadBlob() (domaintypes.EncryptedBlob, bool, error)
}

// DeviceRegistry persists saved devices keyed by address.
type DeviceRegistry interface {
	LoadDevices() (map[domaintypes.Address]domaintypes.Label, error)
	SaveDevices(devices map[domaintypes.Address]domaintypes.Label) error
	UpsertDevice(addr domaintypes.Address, label domaintypes.Label) (domaintypes.Label, error)
	RenameDevice(addr domaintypes.Address, label domaintypes.Label) (bool, error)
	RemoveDevice(addr domaintypes.Address) (bool, error)
}

// CurrentDeviceStore persists the address of the active device.
type CurrentDeviceStore interface {
	CurrentDevice() (domaintypes.Address, bool, error)
	SetCurrentDevice(addr domaintypes.Address) error
}
