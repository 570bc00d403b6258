package store

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/logger"
)

func newBadgerKeystoreForTest(t *testing.T) *badgerKeystore {
	t.Helper()

	ks, err := NewBadgerKeystore(t.TempDir(), bytes.Repeat([]byte{0x33}, 32), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = ks.Close() })
	return ks
}

func TestBadgerKeystore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	ks := newBadgerKeystoreForTest(t)

	_, err := ks.Get(ctx, "family_secret_9")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, ks.Set(ctx, "family_secret_9", "c2VjcmV0"))

	got, err := ks.Get(ctx, "family_secret_9")
	require.NoError(t, err)
	assert.Equal(t, "c2VjcmV0", got)

	require.NoError(t, ks.Remove(ctx, "family_secret_9"))

	_, err = ks.Get(ctx, "family_secret_9")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestBadgerKeystore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	deviceKey := bytes.Repeat([]byte{0x44}, 32)

	ks, err := NewBadgerKeystore(dir, deviceKey, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, ks.Set(ctx, "k", "v"))
	require.NoError(t, ks.Close())

	reopened, err := NewBadgerKeystore(dir, deviceKey, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
