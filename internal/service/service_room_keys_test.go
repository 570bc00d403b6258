package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/crypto"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/logger"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/mock"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/models"
)

func testSecret(familyID int64) models.FamilySecret {
	raw := make([]byte, models.FamilySecretSize)
	raw[0] = byte(familyID)
	return models.FamilySecret{
		FamilyID: familyID,
		Encoded:  base64.StdEncoding.EncodeToString(raw),
	}
}

func TestRoomKeyService_GetOrDerive_CachesKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	deriver := mock.NewMockKeyDeriver(ctrl)
	svc := NewRoomKeyService(deriver, logger.Nop())
	ctx := context.Background()

	secret := testSecret(1)
	raw, err := secret.Bytes()
	require.NoError(t, err)

	want := crypto.RoomKey(make([]byte, crypto.RoomKeySize))

	// Exactly one derivation for repeated lookups of the same pair.
	deriver.EXPECT().DeriveRoomKey(raw, int64(10), int64(1)).Return(want, nil).Times(1)

	first, err := svc.GetOrDerive(ctx, 10, 1, secret)
	require.NoError(t, err)
	second, err := svc.GetOrDerive(ctx, 10, 1, secret)
	require.NoError(t, err)

	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
}

func TestRoomKeyService_GetOrDerive_RealDeriverDeterministic(t *testing.T) {
	svc := NewRoomKeyService(crypto.NewPBKDF2Deriver(), logger.Nop())
	other := NewRoomKeyService(crypto.NewPBKDF2Deriver(), logger.Nop())
	ctx := context.Background()

	secret := testSecret(2)

	keyA, err := svc.GetOrDerive(ctx, 5, 2, secret)
	require.NoError(t, err)
	keyB, err := other.GetOrDerive(ctx, 5, 2, secret)
	require.NoError(t, err)

	assert.Equal(t, keyA, keyB)
	assert.Len(t, []byte(keyA), crypto.RoomKeySize)
}

func TestRoomKeyService_GetOrDerive_InvalidSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	deriver := mock.NewMockKeyDeriver(ctrl)
	svc := NewRoomKeyService(deriver, logger.Nop())
	ctx := context.Background()

	bad := models.FamilySecret{FamilyID: 1, Encoded: "not base64!!!"}

	_, err := svc.GetOrDerive(ctx, 1, 1, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDerivation)
}

func TestRoomKeyService_EvictFamily_DropsOnlyThatFamily(t *testing.T) {
	ctrl := gomock.NewController(t)
	deriver := mock.NewMockKeyDeriver(ctrl)
	svc := NewRoomKeyService(deriver, logger.Nop())
	ctx := context.Background()

	secret1 := testSecret(1)
	secret2 := testSecret(2)
	raw1, _ := secret1.Bytes()
	raw2, _ := secret2.Bytes()

	key1 := crypto.RoomKey([]byte("00000000000000000000000000000001"))
	key2 := crypto.RoomKey([]byte("00000000000000000000000000000002"))

	// Family 1's key is derived twice: once before eviction, once after.
	deriver.EXPECT().DeriveRoomKey(raw1, int64(10), int64(1)).Return(key1, nil).Times(2)
	deriver.EXPECT().DeriveRoomKey(raw2, int64(10), int64(2)).Return(key2, nil).Times(1)

	_, err := svc.GetOrDerive(ctx, 10, 1, secret1)
	require.NoError(t, err)
	_, err = svc.GetOrDerive(ctx, 10, 2, secret2)
	require.NoError(t, err)

	svc.EvictFamily(1)

	// Family 1 re-derives, family 2 still hits the cache.
	_, err = svc.GetOrDerive(ctx, 10, 1, secret1)
	require.NoError(t, err)
	_, err = svc.GetOrDerive(ctx, 10, 2, secret2)
	require.NoError(t, err)
}
