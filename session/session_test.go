package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Token(t *testing.T) {
	token := (&Session{AccessToken: "a", RefreshToken: "r", UserID: "u"}).Token()
	assert.Equal(t, "a", token.AccessToken)
	assert.Equal(t, "r", token.RefreshToken)
	assert.Equal(t, "Bearer", token.Type())
	assert.True(t, token.Expiry.IsZero())
}

func TestSession_Claims(t *testing.T) {
	expiry := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(expiry),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := (&Session{AccessToken: signed}).Claims()
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.True(t, expiry.Equal(claims.ExpiresAt))

	_, err = (&Session{AccessToken: "opaque"}).Claims()
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	actual, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, actual)

	require.NoError(t, store.Store(ctx, "a1", "r1", "u1"))
	require.NoError(t, store.Store(ctx, "a2", "r2", "u2"))
	actual, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Session{AccessToken: "a2", RefreshToken: "r2", UserID: "u2"}, actual)

	actual.UserID = "changed"
	again, _ := store.Get(ctx)
	assert.Equal(t, "u2", again.UserID)
}

var _ Store = (*FileStore)(nil)
var _ Store = (*MemoryStore)(nil)
