package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/logger"
)

// badgerKeystore is the Badger-backed [SecureStorage]. At-rest
// confidentiality comes from Badger's own encryption layer, keyed with the
// device key, so values are stored as-is inside the encrypted value log.
type badgerKeystore struct {
	db  *badger.DB
	log *logger.Logger
}

// NewBadgerKeystore opens (or creates) a Badger keystore in dir, encrypted
// at rest with the 32-byte deviceKey. The caller owns the returned store
// and must Close it on shutdown.
func NewBadgerKeystore(dir string, deviceKey []byte, log *logger.Logger) (*badgerKeystore, error) {
	opts := badger.DefaultOptions(dir).
		WithEncryptionKey(deviceKey).
		// Badger requires an index cache when encryption is on.
		WithIndexCacheSize(16 << 20).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger keystore: %w", err)
	}

	return &badgerKeystore{db: db, log: log}, nil
}

func (s *badgerKeystore) Get(_ context.Context, key string) (string, error) {
	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("read badger keystore: %w", err)
	}

	return value, nil
}

func (s *badgerKeystore) Set(_ context.Context, key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("write badger keystore: %w", err)
	}
	return nil
}

func (s *badgerKeystore) Remove(_ context.Context, key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete from badger keystore: %w", err)
	}
	return nil
}

// Close releases the underlying Badger database.
func (s *badgerKeystore) Close() error {
	return s.db.Close()
}
