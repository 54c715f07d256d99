// Package secrets converts broker credentials and other sensitive strings
// to and from an opaque at-rest form using authenticated encryption
// (AES-256-GCM). The at-rest form is base64 text and is safe to store in a
// plain TEXT column; no other component interprets it.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// KeySize is the required key length in bytes (AES-256).
const KeySize = 32

var (
	// ErrSerialization is returned when a credential payload cannot be
	// JSON-encoded before encryption.
	ErrSerialization = errors.New("secrets: payload is not serializable")

	// ErrDecryption is returned when a blob is malformed, has been tampered
	// with, or was sealed under a different key. No partial plaintext is
	// ever returned alongside it.
	ErrDecryption = errors.New("secrets: cannot decrypt blob")
)

// Cipher seals and opens credential payloads. It is immutable after
// construction and safe for unlimited concurrent callers.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher builds a Cipher from a 32-byte key. The key comes from
// configuration; it is never generated implicitly (see GenerateKey).
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("secrets: key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cipher.NewGCM: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// EncryptCredentials seals a structured credential payload (e.g. API key and
// secret) into an opaque blob. The same payload encrypts to a different blob
// on every call because a fresh nonce is drawn each time.
func (c *Cipher) EncryptCredentials(data map[string]any) (string, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return c.seal(plaintext)
}

// DecryptCredentials opens a blob produced by EncryptCredentials and returns
// the original payload. Returns ErrDecryption for anything that does not
// verify and decode cleanly.
func (c *Cipher) DecryptCredentials(blob string) (map[string]any, error) {
	plaintext, err := c.open(blob)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return nil, fmt.Errorf("%w: invalid payload: %v", ErrDecryption, err)
	}
	return data, nil
}

// EncryptString seals a plain sensitive string, same contract as
// EncryptCredentials without the JSON framing.
func (c *Cipher) EncryptString(text string) (string, error) {
	return c.seal([]byte(text))
}

// DecryptString opens a blob produced by EncryptString.
func (c *Cipher) DecryptString(blob string) (string, error) {
	plaintext, err := c.open(blob)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

func (c *Cipher) seal(plaintext []byte) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("rand nonce: %w", err)
	}

	// Seal appends the ciphertext to nonce, producing: nonce || ciphertext || tag.
	sealed := c.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *Cipher) open(blob string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrDecryption, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(data) < nonceSize {
		return nil, fmt.Errorf("%w: blob too short", ErrDecryption)
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	return plaintext, nil
}

// GenerateKey returns a fresh random 32-byte key. Intended for provisioning
// (tradectl genkey); a deployment must configure the key explicitly before
// anything is encrypted, since a regenerated key cannot open earlier blobs.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}
