package config

import "errors"

var (
	// ErrNoBackendAddress is returned when validation finds no backend
	// endpoint for the transport adapter.
	ErrNoBackendAddress = errors.New("no backend address configured")

	// ErrUnknownKeystoreBackend is returned when the configured keystore
	// backend is not one of "sqlite", "badger" or "memory".
	ErrUnknownKeystoreBackend = errors.New("unknown keystore backend")

	// ErrNoKeystorePath is returned when a disk-backed keystore backend is
	// selected without a path.
	ErrNoKeystorePath = errors.New("no keystore path configured")

	// ErrBadDeviceKey is returned when the device key is missing or does
	// not decode to exactly 32 bytes.
	ErrBadDeviceKey = errors.New("device key must be base64 of 32 bytes")
)
