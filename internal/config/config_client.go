package config

import (
	"encoding/base64"
	"fmt"
	"time"
)

// ClientApp holds application-level settings in their decoded runtime form.
type ClientApp struct {
	// Version is the client version string.
	Version string
	// DeviceKey is the decoded 32-byte key used to seal keystore values.
	DeviceKey []byte
}

// ClientAdapter holds network settings used by the transport adapter.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientKeystore holds decoded keystore settings.
type ClientKeystore struct {
	// Backend is one of [KeystoreSQLite], [KeystoreBadger], [KeystoreMemory].
	Backend string
	// Path is the keystore file (sqlite) or directory (badger).
	Path string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	Keystore ClientKeystore
}

// ClientWorkers holds background-job settings.
type ClientWorkers struct {
	// RefreshInterval is how often an open room is reloaded in the
	// background.
	RefreshInterval time.Duration
}

// ClientConfig is the runtime configuration view assembled from
// [StructuredConfig] with defaults applied and required values enforced.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds, defaults and validates the client configuration
// from environment variables, flags and the optional JSON file.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building structured config: %w", err)
	}

	return buildClientConfig(cfg)
}

// GetClientConfigFromEnv builds the client configuration from environment
// variables and the optional JSON file only. Used by commands that own their
// argument parsing and must not touch the process-global flag set.
func GetClientConfigFromEnv() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building structured config: %w", err)
	}

	return buildClientConfig(cfg)
}

// buildClientConfig maps a merged [StructuredConfig] onto the runtime view.
// Split out of [GetClientConfig] so tests can exercise defaulting without
// touching process-global flag state.
func buildClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout.Std(),
		},
		Storage: ClientStorage{
			Keystore: ClientKeystore{
				Backend: cfg.Storage.Keystore.Backend,
				Path:    cfg.Storage.Keystore.Path,
			},
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval.Std(),
		},
	}

	if clientCfg.Adapter.RequestTimeout <= 0 {
		clientCfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if clientCfg.Workers.RefreshInterval <= 0 {
		clientCfg.Workers.RefreshInterval = 30 * time.Second
	}
	if clientCfg.Storage.Keystore.Backend == "" {
		clientCfg.Storage.Keystore.Backend = KeystoreSQLite
	}

	if clientCfg.Adapter.HTTPAddress == "" {
		return nil, ErrNoBackendAddress
	}
	if clientCfg.Storage.Keystore.Backend != KeystoreMemory && clientCfg.Storage.Keystore.Path == "" {
		return nil, ErrNoKeystorePath
	}

	if cfg.App.DeviceKey != "" {
		raw, err := base64.StdEncoding.DecodeString(cfg.App.DeviceKey)
		if err != nil || len(raw) != 32 {
			return nil, ErrBadDeviceKey
		}
		clientCfg.App.DeviceKey = raw
	} else if clientCfg.Storage.Keystore.Backend != KeystoreMemory {
		// Disk-backed keystores must not persist secrets unsealed.
		return nil, ErrBadDeviceKey
	}

	return clientCfg, nil
}
