package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"phonectl/internal/domain"
)

const (
	// NonceBytes is the GCM nonce length prefixed to every blob.
	NonceBytes = 12
)

var (
	// ErrDecode is returned when a blob is not valid base64, is too short to
	// hold a nonce, or opens to something other than UTF-8 text.
	ErrDecode = errors.New("malformed encrypted blob")
	// ErrAuth is returned when the GCM tag does not verify: the blob was
	// modified, is corrupted, or was sealed under a different key.
	ErrAuth = errors.New("credential authentication failed (tampered data or wrong key)")
)

// GenerateKey returns 32 bytes from the system CSPRNG.
func GenerateKey() (domain.SymmetricKey, error) {
	var key domain.SymmetricKey
	if _, err := rand.Read(key[:]); err != nil {
		return domain.SymmetricKey{}, err
	}
	return key, nil
}

// Encrypt seals plaintext under key with a fresh random nonce.
func Encrypt(key *domain.SymmetricKey, plaintext string) (domain.EncryptedBlob, error) {
	aead, err := newGCM(key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, NonceBytes, NonceBytes+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return domain.EncryptedBlob(base64.StdEncoding.EncodeToString(sealed)), nil
}

// Decrypt opens a blob produced by Encrypt.
func Decrypt(key *domain.SymmetricKey, blob domain.EncryptedBlob) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(blob.String()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(raw) < NonceBytes {
		return "", fmt.Errorf("%w: %d bytes is shorter than the nonce", ErrDecode, len(raw))
	}
	aead, err := newGCM(key)
	if err != nil {
		return "", err
	}
	nonce, ct := raw[:NonceBytes], raw[NonceBytes:]
	pt, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", ErrAuth
	}
	if !utf8.Valid(pt) {
		return "", fmt.Errorf("%w: plaintext is not UTF-8", ErrDecode)
	}
	return string(pt), nil
}

func newGCM(key *domain.SymmetricKey) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key.Slice())
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, NonceBytes)
}
