// Package store provides the device-local secure key-value storage the
// crypto core keeps family secrets in.
//
// The [SecureStorage] interface is the boundary the service layer consumes:
// string keys to string values with at-rest confidentiality. Three backends
// are shipped: an SQLite keystore whose values are sealed with a device key
// before hitting disk, a Badger keystore using Badger's built-in at-rest
// encryption, and a map-backed keystore for tests.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/secure_storage_mock.go -package=mock

// SecureStorage is the secure key-value store boundary. Implementations
// must guarantee at-rest confidentiality of stored values; the service
// layer trusts that a persisted family secret never reaches disk in
// plaintext.
type SecureStorage interface {
	// Get returns the value stored under key, or [ErrKeyNotFound] if the
	// key is absent. Any other error means the store is unavailable.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the value stored under key. Removing an absent key is
	// not an error.
	Remove(ctx context.Context, key string) error
}
