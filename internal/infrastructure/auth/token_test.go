package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *TokenService {
	cfg := DefaultTokenConfig()
	cfg.Secret = "test-secret"
	return NewTokenService(cfg, NewMemorySessionStore())
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := testService()

	pair, err := svc.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	userID, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenService_VerifyRejectsGarbage(t *testing.T) {
	svc := testService()

	_, err := svc.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_VerifyRejectsForeignSignature(t *testing.T) {
	theirs := testService()
	pair, err := theirs.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	cfg := DefaultTokenConfig()
	cfg.Secret = "different-secret"
	ours := NewTokenService(cfg, NewMemorySessionStore())

	_, err = ours.Verify(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RefreshRotates(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	pair, err := svc.Issue(ctx, "user-1")
	require.NoError(t, err)

	next, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	userID, err := svc.Verify(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	// The old refresh token is spent.
	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrUnknownRefresh)
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.SaveRefreshToken(ctx, "tok", "user-1", -time.Second))

	userID, err := store.ResolveRefreshToken(ctx, "tok")
	require.NoError(t, err)
	assert.Empty(t, userID)
}
