package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
)

// gcmProvider is the private AES-256-GCM implementation of [CipherProvider].
type gcmProvider struct{}

// NewGCMProvider constructs the AES-256-GCM [CipherProvider] backed by the
// OS CSPRNG. This is the single concrete backend; mobile shells select it
// at startup and hand it to the service layer.
func NewGCMProvider() CipherProvider {
	return &gcmProvider{}
}

// Encrypt implements [CipherProvider]. Keys must be 32 bytes (AES-256).
// Unlike a prefixed nonce‖ciphertext blob, the iv is returned separately
// because the wire format transmits ciphertext and iv as two fields.
func (p *gcmProvider) Encrypt(plaintext, key []byte) ([]byte, []byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, nil, fmt.Errorf("generate iv: %w", err)
	}

	ciphertext := gcm.Seal(nil, iv, plaintext, nil)
	return ciphertext, iv, nil
}

// Decrypt implements [CipherProvider]. The returned error wraps the GCM
// open failure; on a wrong key or tampered ciphertext the tag check fails
// and no plaintext is returned.
func (p *gcmProvider) Decrypt(ciphertext, iv, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(iv) != gcm.NonceSize() {
		return nil, fmt.Errorf("iv is %d bytes, want %d", len(iv), gcm.NonceSize())
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open ciphertext: %w", err)
	}
	return plaintext, nil
}

// RandomBytes implements [CipherProvider].
func (p *gcmProvider) RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Digest implements [CipherProvider].
func (p *gcmProvider) Digest(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != RoomKeySize {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
