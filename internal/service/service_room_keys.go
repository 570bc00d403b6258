package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/crypto"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/logger"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/models"
)

type roomKeyService struct {
	deriver crypto.KeyDeriver
	log     *logger.Logger

	mu   sync.RWMutex
	keys map[string]crypto.RoomKey
}

// NewRoomKeyService constructs the [RoomKeyService] cache. The cache is an
// explicit object owned by the composition root, not a process global; its
// lifetime is the application's.
func NewRoomKeyService(deriver crypto.KeyDeriver, log *logger.Logger) RoomKeyService {
	return &roomKeyService{
		deriver: deriver,
		log:     log,
		keys:    make(map[string]crypto.RoomKey),
	}
}

// GetOrDerive implements [RoomKeyService].
func (s *roomKeyService) GetOrDerive(_ context.Context, roomID, familyID int64, secret models.FamilySecret) (crypto.RoomKey, error) {
	cacheKey := crypto.RoomKeyCacheKey(roomID, familyID)

	s.mu.RLock()
	key, ok := s.keys[cacheKey]
	s.mu.RUnlock()
	if ok {
		return key, nil
	}

	raw, err := secret.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivation, err)
	}

	derived, err := s.deriver.DeriveRoomKey(raw, roomID, familyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivation, err)
	}

	// A lost race just recomputed the same value (derivation is
	// deterministic), so last-write-wins is safe.
	s.mu.Lock()
	s.keys[cacheKey] = derived
	s.mu.Unlock()

	s.log.Debug().Str("cache_key", cacheKey).Msg("room key derived")
	return derived, nil
}

// EvictFamily implements [RoomKeyService].
func (s *roomKeyService) EvictFamily(familyID int64) {
	suffix := "_family_" + strconv.FormatInt(familyID, 10)

	s.mu.Lock()
	defer s.mu.Unlock()
	for cacheKey := range s.keys {
		if strings.HasSuffix(cacheKey, suffix) {
			delete(s.keys, cacheKey)
		}
	}
}
