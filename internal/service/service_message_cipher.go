package service

import (
	"encoding/base64"
	"fmt"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/crypto"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/models"
)

type messageCipherService struct {
	provider crypto.CipherProvider
}

// NewMessageCipherService constructs the [MessageCipherService] on top of
// the given cipher backend.
func NewMessageCipherService(provider crypto.CipherProvider) MessageCipherService {
	return &messageCipherService{provider: provider}
}

// Encrypt implements [MessageCipherService]. Ciphertext and iv are encoded
// with the one canonical base64 codec used everywhere in the core.
func (s *messageCipherService) Encrypt(plaintext string, key crypto.RoomKey) (models.EncryptedPayload, error) {
	ciphertext, iv, err := s.provider.Encrypt([]byte(plaintext), key)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("encrypt message: %w", err)
	}

	return models.EncryptedPayload{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		IV:         base64.StdEncoding.EncodeToString(iv),
	}, nil
}

// Decrypt implements [MessageCipherService].
func (s *messageCipherService) Decrypt(payload models.EncryptedPayload, key crypto.RoomKey) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(payload.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode ciphertext: %w", ErrDecryptionFailed, err)
	}
	iv, err := base64.StdEncoding.DecodeString(payload.IV)
	if err != nil {
		return "", fmt.Errorf("%w: decode iv: %w", ErrDecryptionFailed, err)
	}

	plaintext, err := s.provider.Decrypt(ciphertext, iv, key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}
