package store

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/crypto"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/logger"
)

// sqliteKeystore is the SQLite-backed [SecureStorage]. Values are sealed
// with AES-256-GCM under the device key before they are written, so the
// database file itself never contains a secret in plaintext. The sealed
// blob is base64(iv ‖ ciphertext).
type sqliteKeystore struct {
	db        *sql.DB
	provider  crypto.CipherProvider
	deviceKey []byte
	log       *logger.Logger
}

// NewSQLiteKeystore wraps an open SQLite connection as a [SecureStorage].
// The schema must already be migrated (see migrations.Migrate). deviceKey
// must be a 32-byte key provisioned from the platform keychain.
func NewSQLiteKeystore(db *sql.DB, provider crypto.CipherProvider, deviceKey []byte, log *logger.Logger) SecureStorage {
	return &sqliteKeystore{
		db:        db,
		provider:  provider,
		deviceKey: deviceKey,
		log:       log,
	}
}

func (s *sqliteKeystore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := sq.Select("value").
		From("secure_items").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build select query: %w", err)
	}

	var sealed string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&sealed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("query secure item: %w", err)
	}

	value, err := s.unseal(sealed)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("stored value cannot be unsealed")
		return "", err
	}

	return value, nil
}

func (s *sqliteKeystore) Set(ctx context.Context, key, value string) error {
	sealed, err := s.seal(value)
	if err != nil {
		return err
	}

	query, args, err := sq.Insert("secure_items").
		Columns("key", "value", "updated_at").
		Values(key, sealed, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert secure item: %w", err)
	}

	return nil
}

func (s *sqliteKeystore) Remove(ctx context.Context, key string) error {
	query, args, err := sq.Delete("secure_items").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete secure item: %w", err)
	}

	return nil
}

// seal encrypts value with the device key and packs it as
// base64(iv ‖ ciphertext).
func (s *sqliteKeystore) seal(value string) (string, error) {
	ciphertext, iv, err := s.provider.Encrypt([]byte(value), s.deviceKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSealFailed, err)
	}

	blob := make([]byte, 0, len(iv)+len(ciphertext))
	blob = append(blob, iv...)
	blob = append(blob, ciphertext...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// unseal reverses seal.
func (s *sqliteKeystore) unseal(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: decode blob: %w", ErrSealFailed, err)
	}
	if len(blob) < crypto.IVSize {
		return "", fmt.Errorf("%w: blob too short", ErrSealFailed)
	}

	iv, ciphertext := blob[:crypto.IVSize], blob[crypto.IVSize:]
	plaintext, err := s.provider.Decrypt(ciphertext, iv, s.deviceKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSealFailed, err)
	}

	return string(plaintext), nil
}
