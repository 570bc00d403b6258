package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/config"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/crypto"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/logger"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/migrations"
)

// Storages groups the client-side storage backends into a single value that
// can be passed around the service layer. Currently it holds only the
// secure keystore; additional stores can be added here as the feature set
// grows.
type Storages struct {
	// Keystore is the secure key-value store holding family secrets.
	Keystore SecureStorage

	closers []func() error
}

// NewStorages initialises the storage layer from configuration:
//  1. Selects the keystore backend (sqlite, badger or memory).
//  2. For sqlite: opens the database file, runs pending goose migrations,
//     and wraps the connection in a device-key-sealing keystore.
//  3. For badger: opens the directory with at-rest encryption enabled.
//
// Returns an error if the backend cannot be opened or migration fails.
func NewStorages(cfg config.ClientStorage, deviceKey []byte, provider crypto.CipherProvider, log *logger.Logger) (*Storages, error) {
	log.Info().Str("backend", cfg.Keystore.Backend).Msg("creating storages...")

	switch cfg.Keystore.Backend {
	case config.KeystoreSQLite:
		db, err := openSQLite(context.Background(), cfg.Keystore.Path)
		if err != nil {
			return nil, err
		}
		return &Storages{
			Keystore: NewSQLiteKeystore(db, provider, deviceKey, log),
			closers:  []func() error{db.Close},
		}, nil

	case config.KeystoreBadger:
		ks, err := NewBadgerKeystore(cfg.Keystore.Path, deviceKey, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			Keystore: ks,
			closers:  []func() error{ks.Close},
		}, nil

	case config.KeystoreMemory:
		return &Storages{Keystore: NewMemoryKeystore()}, nil

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownKeystoreBackend, cfg.Keystore.Backend)
	}
}

// Close releases all underlying storage handles.
func (s *Storages) Close() error {
	var closeErr error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil && closeErr == nil {
			closeErr = err
		}
	}
	return closeErr
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite keystore: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping sqlite keystore: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}
