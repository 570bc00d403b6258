package store

import "errors"

// Sentinel errors returned by keystore implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when no value is stored under the
	// requested key.
	ErrKeyNotFound = errors.New("key not found in secure storage")

	// ErrSealFailed is returned when a value cannot be sealed or unsealed
	// with the device key. An unseal failure usually means the device key
	// changed underneath an existing keystore.
	ErrSealFailed = errors.New("sealing secure storage value failed")
)
