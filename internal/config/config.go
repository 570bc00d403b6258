package config

// StructuredConfig is the top-level configuration container for the chat
// crypto core. It aggregates all sub-configurations and is populated by
// merging environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - json: field name in the optional JSON config file.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_" json:"app,omitempty"`

	// Adapter holds the backend endpoint settings used by the transport
	// adapter.
	Adapter Adapter `envPrefix:"ADAPTER_" json:"adapter,omitempty"`

	// Storage holds configuration for the local secure keystore.
	Storage Storage `envPrefix:"STORAGE_" json:"storage,omitempty"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_" json:"workers,omitempty"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c/-config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version"`

	// DeviceKey is the base64-encoded 32-byte key the keystore uses to
	// seal values at rest. On a device it is provisioned by the mobile
	// shell from the platform keychain; it must never be checked in.
	// Env: APP_DEVICE_KEY
	DeviceKey string `env:"DEVICE_KEY" json:"device_key"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// HTTPAddress is the base URL of the family-organizer backend
	// (e.g. "https://api.kewlkids.example").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" json:"http_address"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// Storage groups the configuration for the local secure keystore.
type Storage struct {
	// Keystore selects and configures the secure-storage backend.
	Keystore Keystore `envPrefix:"KEYSTORE_" json:"keystore,omitempty"`
}

// Keystore configures the secure key-value store holding family secrets.
type Keystore struct {
	// Backend selects the keystore implementation: "sqlite", "badger" or
	// "memory" (tests only).
	// Env: STORAGE_KEYSTORE_BACKEND
	Backend string `env:"BACKEND" json:"backend"`

	// Path is the on-disk location of the keystore: a database file for
	// sqlite, a directory for badger. Ignored by the memory backend.
	// Env: STORAGE_KEYSTORE_PATH
	Path string `env:"PATH" json:"path"`
}

// Workers holds background-job settings.
type Workers struct {
	// RefreshInterval defines how often the chat refresh job reloads an
	// open room in the background (e.g. "30s").
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval Duration `env:"REFRESH_INTERVAL" json:"refresh_interval"`
}
