// Package store provides file-based persistence for phonectl's vault and
// device session state.
//
// It contains concrete implementations of the domain storage interfaces. Each
// store owns exactly one file whose path is injected by the caller, so the
// on-disk layout stays compatible with earlier releases:
//   - Vault key (KeyFileStore): one base64 line decoding to 32 bytes
//   - Unlock credential (CredentialFileStore): one base64 blob
//   - Saved devices (DeviceFileStore): address<TAB>label per line
//   - Current device (CurrentDeviceFileStore): one address line
//
// Methods are safe for concurrent use within a process via internal locking.
// Nothing guards against two processes writing the same file at once.
package store
