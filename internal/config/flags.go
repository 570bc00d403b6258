package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend base URL
//	-request-timeout outbound request timeout (e.g. "15s")
//	-keystore-backend keystore backend ("sqlite", "badger", "memory")
//	-keystore-path keystore file or directory path
//	-refresh-interval background room refresh interval (e.g. "30s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var backendAddress string
	var requestTimeout time.Duration
	var keystoreBackend string
	var keystorePath string
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&backendAddress, "a", "", "Backend base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.StringVar(&keystoreBackend, "keystore-backend", "", "Keystore backend: sqlite, badger or memory")
	flag.StringVar(&keystorePath, "keystore-path", "", "Keystore file or directory path")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Room refresh interval (e.g., 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			RequestTimeout: Duration(requestTimeout),
		},
		Storage: Storage{
			Keystore: Keystore{
				Backend: keystoreBackend,
				Path:    keystorePath,
			},
		},
		Workers: Workers{
			RefreshInterval: Duration(refreshInterval),
		},
		JSONFilePath: jsonConfigPath,
	}
}
