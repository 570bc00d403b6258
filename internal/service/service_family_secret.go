package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/crypto"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/logger"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/store"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/models"
)

// masterConstant seeds the deterministic per-family secret:
// sha256(masterConstant + "_family_" + familyID).
//
// KNOWN LIMITATION: anyone who knows this constant and a family id can
// derive that family's secret without access to any stored material. The
// scheme is kept because every deployed device derives its secret this
// way and changing it would make all existing ciphertext unreadable; it is
// defensible only while the backend is trusted and the constant ships
// inside the app binary.
const masterConstant = "kewlkids_e2e_master_v1"

// secretStorageKey returns the secure-storage key for a family's secret.
func secretStorageKey(familyID int64) string {
	return "family_secret_" + strconv.FormatInt(familyID, 10)
}

type familySecretService struct {
	storage  store.SecureStorage
	provider crypto.CipherProvider
	log      *logger.Logger

	// flights collapses concurrent generations for the same family into a
	// single storage write. Keyed by familyID plus the force flag, so a
	// forced regeneration is never satisfied by an in-flight plain read.
	flights singleflight.Group
}

// NewFamilySecretService constructs the [FamilySecretService] backed by the
// given secure storage.
func NewFamilySecretService(storage store.SecureStorage, provider crypto.CipherProvider, log *logger.Logger) FamilySecretService {
	return &familySecretService{
		storage:  storage,
		provider: provider,
		log:      log,
	}
}

// GetOrCreateSecret implements [FamilySecretService].
func (s *familySecretService) GetOrCreateSecret(ctx context.Context, familyID int64, forceRegenerate bool) (models.FamilySecret, error) {
	flightKey := strconv.FormatInt(familyID, 10) + ":" + strconv.FormatBool(forceRegenerate)

	result, err, _ := s.flights.Do(flightKey, func() (any, error) {
		return s.getOrCreate(ctx, familyID, forceRegenerate)
	})
	if err != nil {
		return models.FamilySecret{}, err
	}

	return result.(models.FamilySecret), nil
}

func (s *familySecretService) getOrCreate(ctx context.Context, familyID int64, forceRegenerate bool) (models.FamilySecret, error) {
	if !forceRegenerate {
		secret, found, err := s.readValid(ctx, familyID)
		if err != nil {
			return models.FamilySecret{}, err
		}
		if found {
			return secret, nil
		}
	}

	return s.generate(ctx, familyID)
}

// readValid loads the persisted secret and validates its decoded length.
// A corrupt value is deleted so the caller falls through to generation.
func (s *familySecretService) readValid(ctx context.Context, familyID int64) (models.FamilySecret, bool, error) {
	stored, err := s.storage.Get(ctx, secretStorageKey(familyID))
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return models.FamilySecret{}, false, nil
		}
		return models.FamilySecret{}, false, fmt.Errorf("%w: read secret: %w", ErrSecretStorage, err)
	}

	secret := models.FamilySecret{FamilyID: familyID, Encoded: stored}
	if !secret.Valid() {
		s.log.Warn().
			Int64("family_id", familyID).
			Int("encoded_len", len(stored)).
			Msg("persisted family secret is corrupt, discarding")

		if err := s.storage.Remove(ctx, secretStorageKey(familyID)); err != nil {
			return models.FamilySecret{}, false, fmt.Errorf("%w: remove corrupt secret: %w", ErrSecretStorage, err)
		}
		return models.FamilySecret{}, false, nil
	}

	return secret, true, nil
}

// generate deterministically derives, persists and returns the family
// secret. The secret must be persisted before it is returned: handing out
// an unpersisted secret would desynchronize this device from the family.
func (s *familySecretService) generate(ctx context.Context, familyID int64) (models.FamilySecret, error) {
	key := secretStorageKey(familyID)

	if err := s.storage.Remove(ctx, key); err != nil {
		return models.FamilySecret{}, fmt.Errorf("%w: remove old secret: %w", ErrSecretStorage, err)
	}

	seed := masterConstant + "_family_" + strconv.FormatInt(familyID, 10)
	digest := s.provider.Digest([]byte(seed))
	if len(digest) != models.FamilySecretSize {
		return models.FamilySecret{}, fmt.Errorf("%w: digest is %d bytes", ErrSecretValidation, len(digest))
	}

	encoded := base64.StdEncoding.EncodeToString(digest)
	if len(encoded) != models.FamilySecretEncodedLen {
		return models.FamilySecret{}, fmt.Errorf("%w: encoded secret is %d chars", ErrSecretValidation, len(encoded))
	}

	if err := s.storage.Set(ctx, key, encoded); err != nil {
		return models.FamilySecret{}, fmt.Errorf("%w: persist secret: %w", ErrSecretStorage, err)
	}

	s.log.Info().Int64("family_id", familyID).Msg("family secret generated")
	return models.FamilySecret{FamilyID: familyID, Encoded: encoded}, nil
}
