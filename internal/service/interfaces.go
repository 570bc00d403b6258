package service

import (
	"context"
	"time"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/crypto"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// FamilySecretService owns the lifecycle of the per-family shared secret:
// lazy creation, validation, persistence and forced regeneration.
//
// Generation is deterministic, so every device of the same family converges
// on the same secret without a key-exchange round trip. The flip side is
// that anyone who knows the family id and the master constant can derive
// the secret; that trade-off is acceptable only in the closed,
// trusted-backend threat model this client operates in.
type FamilySecretService interface {
	// GetOrCreateSecret returns the family's secret, generating and
	// persisting it if absent or corrupt. With forceRegenerate the
	// persisted value is discarded and regenerated unconditionally; this
	// is a recovery action, not a routine operation.
	//
	// Concurrent calls for the same family are collapsed into one
	// in-flight generation; all callers receive the same result. If the
	// secure storage is unavailable the call fails with
	// [ErrSecretStorage] and no unpersisted secret is ever returned.
	GetOrCreateSecret(ctx context.Context, familyID int64, forceRegenerate bool) (models.FamilySecret, error)
}

// RoomKeyService memoizes derived room keys so repeated sends and receives
// in the same room avoid re-running the PBKDF2 derivation. It is a cache,
// never a source of truth: entries are recomputed from the family secret
// whenever absent and must be evicted when the secret is regenerated.
type RoomKeyService interface {
	// GetOrDerive returns the cached room key for (roomID, familyID) or
	// derives, caches and returns it. Identical inputs always yield
	// byte-identical key material.
	GetOrDerive(ctx context.Context, roomID, familyID int64, secret models.FamilySecret) (crypto.RoomKey, error)

	// EvictFamily drops every cached key belonging to familyID. Must be
	// called after the family secret is regenerated, because the cached
	// keys no longer correspond to the persisted secret.
	EvictFamily(familyID int64)
}

// MessageCipherService encrypts and decrypts individual message bodies
// with a room key.
type MessageCipherService interface {
	// Encrypt seals plaintext under key with a fresh iv and returns the
	// base64-encoded wire payload.
	Encrypt(plaintext string, key crypto.RoomKey) (models.EncryptedPayload, error)

	// Decrypt is all-or-nothing: on authentication failure or malformed
	// input it returns [ErrDecryptionFailed] and never corrupted bytes.
	Decrypt(payload models.EncryptedPayload, key crypto.RoomKey) (string, error)
}

// ChatCryptoService orchestrates room-level encryption: key warm-up,
// outgoing sends, live incoming messages and bulk history loads, including
// the one-shot secret-regeneration recovery when an entire batch fails to
// decrypt.
type ChatCryptoService interface {
	// PrepareRoom derives (or warms) the room key so the first send in a
	// freshly opened conversation does not pay the derivation cost.
	PrepareRoom(ctx context.Context, roomID, familyID int64) error

	// EncryptMessage encrypts outgoing text for a room.
	EncryptMessage(ctx context.Context, roomID, familyID int64, plaintext string) (models.EncryptedPayload, error)

	// SendMessage encrypts plaintext, posts it to the backend and records
	// the local plaintext as the message's outcome so the sender's own
	// view never shows a placeholder for it.
	SendMessage(ctx context.Context, roomID, familyID int64, plaintext string) (models.Message, error)

	// HandleIncoming decrypts one live message and records its outcome.
	// Decryption failure degrades to a placeholder outcome, never an
	// error: a single bad message must not take down the stream.
	HandleIncoming(ctx context.Context, familyID int64, msg models.Message) models.DecryptionOutcome

	// LoadRoom fetches the room history, bulk-decrypts it preserving
	// message order, runs the recovery cycle if every message failed, and
	// merges the result with previously recorded outcomes so a transient
	// reload never regresses an already-readable message.
	LoadRoom(ctx context.Context, roomID, familyID int64) ([]models.DecryptionOutcome, error)
}

// ChatRefreshJob periodically reloads an open room in the background.
type ChatRefreshJob interface {
	// Start launches the background reload loop for one room. A running
	// job is stopped first. The loop exits when ctx is cancelled or Stop
	// is called.
	Start(ctx context.Context, roomID, familyID int64, interval time.Duration)

	// Stop cancels the loop and blocks until it has exited. Safe to call
	// when the job is not running.
	Stop()
}
