package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-site-api/internal/auth"
)

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Save And Verify", func(t *testing.T) {
		store := auth.NewMemoryTokenStore()
		userID := uuid.New()

		require.NoError(t, store.Save(ctx, userID, "token-a", time.Minute))

		ok, err := store.Verify(ctx, userID, "token-a")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Verify(ctx, userID, "token-b")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Save Replaces Previous Token", func(t *testing.T) {
		store := auth.NewMemoryTokenStore()
		userID := uuid.New()

		require.NoError(t, store.Save(ctx, userID, "old", time.Minute))
		require.NoError(t, store.Save(ctx, userID, "new", time.Minute))

		ok, err := store.Verify(ctx, userID, "old")
		require.NoError(t, err)
		assert.False(t, ok, "only one refresh token per user")

		ok, err = store.Verify(ctx, userID, "new")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Expired Token", func(t *testing.T) {
		store := auth.NewMemoryTokenStore()
		userID := uuid.New()

		require.NoError(t, store.Save(ctx, userID, "short-lived", -time.Second))

		ok, err := store.Verify(ctx, userID, "short-lived")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Revoke", func(t *testing.T) {
		store := auth.NewMemoryTokenStore()
		userID := uuid.New()

		require.NoError(t, store.Save(ctx, userID, "token", time.Minute))
		require.NoError(t, store.Revoke(ctx, userID))

		ok, err := store.Verify(ctx, userID, "token")
		require.NoError(t, err)
		assert.False(t, ok)

		// Revoking again is a no-op.
		assert.NoError(t, store.Revoke(ctx, userID))
	})

	t.Run("Unknown User", func(t *testing.T) {
		store := auth.NewMemoryTokenStore()

		ok, err := store.Verify(ctx, uuid.New(), "anything")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
