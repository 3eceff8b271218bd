// Package crypto exposes the minimal primitives used by phonectl.
//
// Contents
//
//   - AES-256-GCM sealing of the unlock credential into a base64 blob
//     (Encrypt, Decrypt)
//   - Fresh vault key generation (GenerateKey)
//   - Short key fingerprints for display/logging (Fingerprint)
//
// # Blob format
//
// A blob is base64(nonce ‖ ciphertext ‖ tag) with a 12-byte random nonce per
// call. Blobs carry no key identifier: a blob only opens under the key that
// sealed it.
package crypto
