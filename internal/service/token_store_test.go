package service

import (
	"context"
	"testing"
	"time"

	"dermatriagem-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStoreSession(t *testing.T) {
	client, srv := testutil.NewRedis(t)
	store := NewTokenStore(client)
	ctx := context.Background()

	require.NoError(t, store.StoreSession(ctx, 1, "acc", time.Minute, "ref", time.Hour))

	active, err := store.AccessTokenActive(ctx, 1, "acc")
	require.NoError(t, err)
	assert.True(t, active)

	srv.FastForward(2 * time.Minute)

	active, err = store.AccessTokenActive(ctx, 1, "acc")
	require.NoError(t, err)
	assert.False(t, active)

	active, err = store.RefreshTokenActive(ctx, 1, "ref")
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, store.RevokeSession(ctx, 1, "", "ref"))
	active, err = store.RefreshTokenActive(ctx, 1, "ref")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestTokenStoreInviteIsSingleUse(t *testing.T) {
	client, _ := testutil.NewRedis(t)
	store := NewTokenStore(client)
	ctx := context.Background()

	require.NoError(t, store.StoreInvite(ctx, "novo@exemplo.com", "jti", time.Hour))

	ok, err := store.ConsumeInvite(ctx, "novo@exemplo.com", "jti")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.ConsumeInvite(ctx, "novo@exemplo.com", "jti")
	require.NoError(t, err)
	assert.False(t, ok)
}
