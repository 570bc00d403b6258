package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKeystore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	ks := NewMemoryKeystore()

	_, err := ks.Get(ctx, "family_secret_1")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, ks.Set(ctx, "family_secret_1", "dmFsdWU="))

	got, err := ks.Get(ctx, "family_secret_1")
	require.NoError(t, err)
	assert.Equal(t, "dmFsdWU=", got)

	require.NoError(t, ks.Remove(ctx, "family_secret_1"))

	_, err = ks.Get(ctx, "family_secret_1")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryKeystore_RemoveAbsentKeyIsNoError(t *testing.T) {
	ks := NewMemoryKeystore()
	assert.NoError(t, ks.Remove(context.Background(), "never_set"))
}

func TestMemoryKeystore_OverwriteReplacesValue(t *testing.T) {
	ctx := context.Background()
	ks := NewMemoryKeystore()

	require.NoError(t, ks.Set(ctx, "k", "first"))
	require.NoError(t, ks.Set(ctx, "k", "second"))

	got, err := ks.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}
