package types

// Address is a device network address in host:port form, e.g. 192.168.1.20:5555.
type Address string

// String returns the string form of the address.
func (a Address) String() string { return string(a) }

// Label is the human-readable display name of a saved device.
type Label string

// String returns the string form of the label.
func (l Label) String() string { return string(l) }

// Fingerprint is a short identifier for key material presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// EncryptedBlob is base64(nonce ‖ ciphertext ‖ tag) as stored on disk.
type EncryptedBlob string

// String returns the string form of the blob.
func (b EncryptedBlob) String() string { return string(b) }
