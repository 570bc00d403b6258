package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("APP_VERSION", "1.4.0")
	t.Setenv("ADAPTER_ADDRESS", "https://api.kewlkids.example")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "20s")
	t.Setenv("STORAGE_KEYSTORE_BACKEND", "badger")
	t.Setenv("STORAGE_KEYSTORE_PATH", "/tmp/keystore")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "45s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, "https://api.kewlkids.example", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout.Std())
	assert.Equal(t, "badger", cfg.Storage.Keystore.Backend)
	assert.Equal(t, "/tmp/keystore", cfg.Storage.Keystore.Path)
	assert.Equal(t, 45*time.Second, cfg.Workers.RefreshInterval.Std())
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}

func TestValidate_RejectsUnknownBackend(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Storage.Keystore.Backend = "etcd"

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKeystoreBackend)
}

func TestValidate_RejectsShortDeviceKey(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.App.DeviceKey = "dG9vIHNob3J0" // "too short"

	assert.ErrorIs(t, cfg.validate(), ErrBadDeviceKey)
}
