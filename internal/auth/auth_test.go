package auth

import (
	"context"
	"testing"
	"time"

	"foodgram/internal/models"
	"foodgram/internal/repository"
	"foodgram/internal/testutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	user := &models.User{ID: 7, Email: "cook@example.com", IsAdmin: true}

	token, issued, err := m.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "cook@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestTokenParseFailures(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, _, err := m.Issue(&models.User{ID: 1})
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Parse("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestRevocationList(t *testing.T) {
	ctx := context.Background()
	store := repository.NewRevokedTokenRepository(testutil.NewTestDB(t))
	list := NewRevocationList(store)
	m := NewTokenManager("secret", time.Hour)
	_, claims, err := m.Issue(&models.User{ID: 1})
	require.NoError(t, err)

	revoked, err := list.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, list.Revoke(ctx, claims))
	require.NoError(t, list.Revoke(ctx, claims))
	revoked, err = list.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	t.Run("expired entries are ignored and purged", func(t *testing.T) {
		later := time.Now().Add(2 * time.Hour)
		list.now = func() time.Time { return later }

		revoked, err := list.IsRevoked(ctx, claims.ID)
		require.NoError(t, err)
		assert.False(t, revoked)

		n, err := store.PurgeExpired(ctx, later)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("already expired token is not stored", func(t *testing.T) {
		list.now = time.Now
		expired := &Claims{UserID: 1}
		expired.ID = "old"
		expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		require.NoError(t, list.Revoke(ctx, expired))

		revoked, err := store.IsRevoked(ctx, "old", time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, CheckPassword(hash, "s3cret-pass"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), ErrPasswordMismatch)
}
