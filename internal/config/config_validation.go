package config

import (
	"encoding/base64"
	"fmt"
)

// keystore backend names accepted by the storage layer.
const (
	KeystoreSQLite = "sqlite"
	KeystoreBadger = "badger"
	KeystoreMemory = "memory"
)

// validate checks the merged configuration for values that can never work.
// Empty fields are allowed here; defaults and hard requirements are applied
// by [GetClientConfig] once all sources are merged.
func (c *StructuredConfig) validate() error {
	switch c.Storage.Keystore.Backend {
	case "", KeystoreSQLite, KeystoreBadger, KeystoreMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKeystoreBackend, c.Storage.Keystore.Backend)
	}

	if c.App.DeviceKey != "" {
		raw, err := base64.StdEncoding.DecodeString(c.App.DeviceKey)
		if err != nil || len(raw) != 32 {
			return ErrBadDeviceKey
		}
	}

	return nil
}
