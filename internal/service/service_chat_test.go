package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/crypto"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/logger"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/mock"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/models"
)

// chatTestRig wires a coordinator from real crypto components and mocked
// secret storage and transport, which is where the interesting failure modes
// live.
type chatTestRig struct {
	svc     ChatCryptoService
	secrets *mock.MockFamilySecretService
	server  *mock.MockChatServerAdapter
	keys    RoomKeyService
	cipher  MessageCipherService
}

func newChatTestRig(t *testing.T) *chatTestRig {
	t.Helper()
	ctrl := gomock.NewController(t)

	secrets := mock.NewMockFamilySecretService(ctrl)
	server := mock.NewMockChatServerAdapter(ctrl)
	keys := NewRoomKeyService(crypto.NewPBKDF2Deriver(), logger.Nop())
	cipher := NewMessageCipherService(crypto.NewGCMProvider())

	return &chatTestRig{
		svc:     NewChatCryptoService(secrets, keys, cipher, server, logger.Nop()),
		secrets: secrets,
		server:  server,
		keys:    keys,
		cipher:  cipher,
	}
}

func randomSecret(t *testing.T, familyID int64) models.FamilySecret {
	t.Helper()
	raw := make([]byte, models.FamilySecretSize)
	_, err := rand.Read(raw)
	require.NoError(t, err)
	return models.FamilySecret{
		FamilyID: familyID,
		Encoded:  base64.StdEncoding.EncodeToString(raw),
	}
}

// encryptAs produces a wire message sealed under the room key derived from
// secret, the way another family device would have sent it.
func encryptAs(t *testing.T, secret models.FamilySecret, roomID int64, id int64, sender, text string) models.Message {
	t.Helper()

	raw, err := secret.Bytes()
	require.NoError(t, err)
	key, err := crypto.NewPBKDF2Deriver().DeriveRoomKey(raw, roomID, secret.FamilyID)
	require.NoError(t, err)

	payload, err := NewMessageCipherService(crypto.NewGCMProvider()).Encrypt(text, key)
	require.NoError(t, err)

	return models.Message{
		ID:             id,
		Room:           roomID,
		SenderUsername: sender,
		Ciphertext:     payload.Ciphertext,
		IV:             payload.IV,
		CreatedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Minute),
	}
}

func garbageMessage(roomID, id int64, sender string) models.Message {
	return models.Message{
		ID:             id,
		Room:           roomID,
		SenderUsername: sender,
		Ciphertext:     base64.StdEncoding.EncodeToString([]byte("definitely not a valid gcm blob")),
		IV:             base64.StdEncoding.EncodeToString(make([]byte, crypto.IVSize)),
		CreatedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestChatCryptoService_LoadRoom_DecryptsHistoryInOrder(t *testing.T) {
	rig := newChatTestRig(t)
	ctx := context.Background()
	secret := randomSecret(t, 1)

	history := []models.Message{
		encryptAs(t, secret, 10, 3, "mom", "pick up milk"),
		encryptAs(t, secret, 10, 1, "dad", "who has the car today"),
		encryptAs(t, secret, 10, 2, "kid", "me, after practice"),
	}

	rig.secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), false).Return(secret, nil).AnyTimes()
	rig.server.EXPECT().FetchRoomMessages(ctx, int64(10)).Return(history, nil)

	outcomes, err := rig.svc.LoadRoom(ctx, 10, 1)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	// Output order follows the fetched history, not message ids.
	assert.Equal(t, int64(3), outcomes[0].MessageID)
	assert.Equal(t, int64(1), outcomes[1].MessageID)
	assert.Equal(t, int64(2), outcomes[2].MessageID)

	assert.Equal(t, "pick up milk", outcomes[0].Text)
	assert.Equal(t, "who has the car today", outcomes[1].Text)
	assert.Equal(t, "me, after practice", outcomes[2].Text)
	for _, o := range outcomes {
		assert.True(t, o.Decrypted)
	}
}

func TestChatCryptoService_LoadRoom_EmptyRoom(t *testing.T) {
	rig := newChatTestRig(t)
	ctx := context.Background()
	secret := randomSecret(t, 1)

	// An empty room must not look like universal failure; no forced
	// regeneration may happen.
	rig.secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), false).Return(secret, nil)
	rig.server.EXPECT().FetchRoomMessages(ctx, int64(10)).Return([]models.Message{}, nil)

	outcomes, err := rig.svc.LoadRoom(ctx, 10, 1)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestChatCryptoService_LoadRoom_PartialFailure_NoRecovery(t *testing.T) {
	rig := newChatTestRig(t)
	ctx := context.Background()
	secret := randomSecret(t, 1)

	history := []models.Message{
		encryptAs(t, secret, 10, 1, "mom", "readable"),
		garbageMessage(10, 2, "dad"),
	}

	// Only plain reads: a single bad message is not a secret problem.
	rig.secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), false).Return(secret, nil).AnyTimes()
	rig.server.EXPECT().FetchRoomMessages(ctx, int64(10)).Return(history, nil)

	outcomes, err := rig.svc.LoadRoom(ctx, 10, 1)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.True(t, outcomes[0].Decrypted)
	assert.Equal(t, "readable", outcomes[0].Text)

	assert.False(t, outcomes[1].Decrypted)
	assert.Empty(t, outcomes[1].Text)
	assert.Equal(t, "dad", outcomes[1].Sender)
}

func TestChatCryptoService_LoadRoom_AllFailed_RecoveryConverges(t *testing.T) {
	rig := newChatTestRig(t)
	ctx := context.Background()

	// The history was written under the canonical secret; this device holds
	// a stale one and can read nothing until it regenerates.
	canonical := randomSecret(t, 1)
	stale := randomSecret(t, 1)

	history := []models.Message{
		encryptAs(t, canonical, 10, 1, "mom", "first"),
		encryptAs(t, canonical, 10, 2, "dad", "second"),
		encryptAs(t, canonical, 10, 3, "kid", "third"),
		encryptAs(t, canonical, 10, 4, "mom", "fourth"),
		encryptAs(t, canonical, 10, 5, "dad", "fifth"),
	}

	rig.secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), false).Return(stale, nil)
	rig.secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), true).Return(canonical, nil).Times(1)
	rig.server.EXPECT().FetchRoomMessages(ctx, int64(10)).Return(history, nil)

	outcomes, err := rig.svc.LoadRoom(ctx, 10, 1)
	require.NoError(t, err)
	require.Len(t, outcomes, 5)

	want := []string{"first", "second", "third", "fourth", "fifth"}
	for i, o := range outcomes {
		assert.True(t, o.Decrypted, "message %d must decrypt after recovery", o.MessageID)
		assert.Equal(t, want[i], o.Text)
	}
}

func TestChatCryptoService_LoadRoom_RecoveryRetryIsTerminal(t *testing.T) {
	rig := newChatTestRig(t)
	ctx := context.Background()
	secret := randomSecret(t, 1)

	history := []models.Message{
		garbageMessage(10, 1, "mom"),
		garbageMessage(10, 2, "dad"),
	}

	// Genuinely corrupt data: regeneration runs exactly once, the retry
	// fails, and the load still completes with placeholders.
	rig.secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), false).Return(secret, nil)
	rig.secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), true).Return(secret, nil).Times(1)
	rig.server.EXPECT().FetchRoomMessages(ctx, int64(10)).Return(history, nil)

	outcomes, err := rig.svc.LoadRoom(ctx, 10, 1)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	for _, o := range outcomes {
		assert.False(t, o.Decrypted)
		assert.Empty(t, o.Text)
	}
}

func TestChatCryptoService_LoadRoom_RecoveryStorageError_Fatal(t *testing.T) {
	rig := newChatTestRig(t)
	ctx := context.Background()
	secret := randomSecret(t, 1)

	history := []models.Message{garbageMessage(10, 1, "mom")}

	rig.secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), false).Return(secret, nil)
	rig.secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), true).
		Return(models.FamilySecret{}, ErrSecretStorage)
	rig.server.EXPECT().FetchRoomMessages(ctx, int64(10)).Return(history, nil)

	_, err := rig.svc.LoadRoom(ctx, 10, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSecretStorage)
}

func TestChatCryptoService_LoadRoom_FetchError_Surfaces(t *testing.T) {
	rig := newChatTestRig(t)
	ctx := context.Background()

	rig.server.EXPECT().FetchRoomMessages(ctx, int64(10)).
		Return(nil, errors.New("connection refused"))

	_, err := rig.svc.LoadRoom(ctx, 10, 1)
	require.Error(t, err)
}

func TestChatCryptoService_LoadRoom_MergeKeepsPriorSuccess(t *testing.T) {
	rig := newChatTestRig(t)
	ctx := context.Background()
	secret := randomSecret(t, 1)

	good := encryptAs(t, secret, 10, 1, "mom", "remember the dentist")
	other := encryptAs(t, secret, 10, 2, "dad", "on it")

	rig.secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), false).Return(secret, nil).AnyTimes()

	// First load: both messages readable.
	rig.server.EXPECT().FetchRoomMessages(ctx, int64(10)).
		Return([]models.Message{good, other}, nil)
	first, err := rig.svc.LoadRoom(ctx, 10, 1)
	require.NoError(t, err)
	require.True(t, first[0].Decrypted)

	// Second load: the backend hands back a corrupted copy of message 1.
	// The prior successful outcome wins over the fresh failure.
	corrupted := good
	corrupted.Ciphertext = base64.StdEncoding.EncodeToString([]byte("bit rot"))

	rig.server.EXPECT().FetchRoomMessages(ctx, int64(10)).
		Return([]models.Message{corrupted, other}, nil)
	second, err := rig.svc.LoadRoom(ctx, 10, 1)
	require.NoError(t, err)
	require.Len(t, second, 2)

	assert.True(t, second[0].Decrypted, "a transient failure must not regress a readable message")
	assert.Equal(t, "remember the dentist", second[0].Text)
	assert.True(t, second[1].Decrypted)
}

func TestChatCryptoService_SendMessage_RecordsOwnPlaintext(t *testing.T) {
	rig := newChatTestRig(t)
	ctx := context.Background()
	secret := randomSecret(t, 1)

	rig.secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), false).Return(secret, nil).AnyTimes()

	echo := models.Message{ID: 9, Room: 10, SenderUsername: "me", CreatedAt: time.Now()}
	rig.server.EXPECT().SendMessage(ctx, int64(10), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, payload models.EncryptedPayload) (models.Message, error) {
			echo.Ciphertext = payload.Ciphertext
			echo.IV = payload.IV
			return echo, nil
		})

	sent, err := rig.svc.SendMessage(ctx, 10, 1, "dinner at 7")
	require.NoError(t, err)
	assert.Equal(t, int64(9), sent.ID)

	// Even if the backend later hands back an unreadable copy of the sent
	// message, the sender's recorded plaintext survives the merge.
	corrupted := garbageMessage(10, 9, "me")
	filler := encryptAs(t, secret, 10, 11, "dad", "sounds good")
	rig.server.EXPECT().FetchRoomMessages(ctx, int64(10)).
		Return([]models.Message{corrupted, filler}, nil)

	outcomes, err := rig.svc.LoadRoom(ctx, 10, 1)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.True(t, outcomes[0].Decrypted)
	assert.Equal(t, "dinner at 7", outcomes[0].Text)
}

func TestChatCryptoService_SendMessage_TransportError(t *testing.T) {
	rig := newChatTestRig(t)
	ctx := context.Background()
	secret := randomSecret(t, 1)

	rig.secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), false).Return(secret, nil)
	rig.server.EXPECT().SendMessage(ctx, int64(10), gomock.Any()).
		Return(models.Message{}, errors.New("503"))

	_, err := rig.svc.SendMessage(ctx, 10, 1, "hello")
	require.Error(t, err)
}

func TestChatCryptoService_HandleIncoming_Decrypts(t *testing.T) {
	rig := newChatTestRig(t)
	ctx := context.Background()
	secret := randomSecret(t, 1)

	rig.secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), false).Return(secret, nil)

	msg := encryptAs(t, secret, 10, 4, "kid", "can we get pizza")
	outcome := rig.svc.HandleIncoming(ctx, 1, msg)

	assert.True(t, outcome.Decrypted)
	assert.Equal(t, "can we get pizza", outcome.Text)
	assert.Equal(t, int64(4), outcome.MessageID)
	assert.Equal(t, "kid", outcome.Sender)
}

func TestChatCryptoService_HandleIncoming_BadMessage_Placeholder(t *testing.T) {
	rig := newChatTestRig(t)
	ctx := context.Background()
	secret := randomSecret(t, 1)

	rig.secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), false).Return(secret, nil)

	outcome := rig.svc.HandleIncoming(ctx, 1, garbageMessage(10, 5, "dad"))

	assert.False(t, outcome.Decrypted)
	assert.Empty(t, outcome.Text)
	assert.Equal(t, "Unable to decrypt message from dad", outcome.DisplayText())
}

func TestChatCryptoService_PrepareRoom_WarmsKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	secrets := mock.NewMockFamilySecretService(ctrl)
	server := mock.NewMockChatServerAdapter(ctrl)
	deriver := mock.NewMockKeyDeriver(ctrl)
	keys := NewRoomKeyService(deriver, logger.Nop())
	cipher := NewMessageCipherService(crypto.NewGCMProvider())
	svc := NewChatCryptoService(secrets, keys, cipher, server, logger.Nop())

	ctx := context.Background()
	secret := randomSecret(t, 1)
	raw, err := secret.Bytes()
	require.NoError(t, err)

	secrets.EXPECT().GetOrCreateSecret(ctx, int64(1), false).Return(secret, nil).Times(2)
	// The warm-up pays the derivation cost; the send that follows does not.
	deriver.EXPECT().DeriveRoomKey(raw, int64(10), int64(1)).
		Return(testRoomKey(0x33), nil).Times(1)

	require.NoError(t, svc.PrepareRoom(ctx, 10, 1))

	_, err = svc.EncryptMessage(ctx, 10, 1, "hi")
	require.NoError(t, err)
}
