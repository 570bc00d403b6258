package models

import (
	"encoding/base64"
	"fmt"
)

// FamilySecretSize is the exact decoded length of a family secret in bytes.
const FamilySecretSize = 32

// FamilySecretEncodedLen is the length of a standard-base64 encoding of a
// 32-byte secret. Any persisted value with a different encoded or decoded
// length is treated as corrupt.
const FamilySecretEncodedLen = 44

// FamilySecret is the 256-bit shared secret all members of one family use
// as the root for room-key derivation. It is stored base64-encoded in the
// device's secure storage and never leaves it in any other form.
type FamilySecret struct {
	FamilyID int64
	Encoded  string
}

// Bytes decodes the secret into its raw 32-byte form. It returns an error
// if the stored value is not valid base64 or does not decode to exactly
// [FamilySecretSize] bytes.
func (s FamilySecret) Bytes() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s.Encoded)
	if err != nil {
		return nil, fmt.Errorf("decode family secret: %w", err)
	}
	if len(raw) != FamilySecretSize {
		return nil, fmt.Errorf("family secret is %d bytes, want %d", len(raw), FamilySecretSize)
	}
	return raw, nil
}

// Valid reports whether the encoded secret decodes to exactly 32 bytes.
func (s FamilySecret) Valid() bool {
	_, err := s.Bytes()
	return err == nil
}
