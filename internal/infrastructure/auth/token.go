package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/application/command"
)

// Token errors.
var (
	ErrInvalidToken   = errors.New("auth: invalid token")
	ErrUnknownRefresh = errors.New("auth: unknown refresh token")
)

// SessionStore persists refresh tokens. The Redis implementation lives in
// infrastructure/persistence/redis; MemorySessionStore backs development and
// tests.
type SessionStore interface {
	// SaveRefreshToken stores a refresh token for a user with a TTL.
	SaveRefreshToken(ctx context.Context, token, userID string, ttl time.Duration) error

	// ResolveRefreshToken returns the user id a refresh token belongs to,
	// or "" when the token is unknown or expired.
	ResolveRefreshToken(ctx context.Context, token string) (string, error)

	// DeleteRefreshToken invalidates a refresh token.
	DeleteRefreshToken(ctx context.Context, token string) error
}

// TokenConfig holds token issuance settings.
type TokenConfig struct {
	// Secret signs access tokens (HS256).
	Secret string

	// Issuer is stamped into the iss claim.
	Issuer string

	// AccessTTL is the access token lifetime.
	AccessTTL time.Duration

	// RefreshTTL is the refresh token lifetime.
	RefreshTTL time.Duration
}

// DefaultTokenConfig returns sensible defaults.
func DefaultTokenConfig() TokenConfig {
	return TokenConfig{
		Issuer:     "pulseboard",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 30 * 24 * time.Hour,
	}
}

// TokenService issues and verifies JWT access tokens and manages refresh
// sessions. Implements command.TokenIssuer.
type TokenService struct {
	cfg      TokenConfig
	sessions SessionStore
}

// NewTokenService creates a token service.
func NewTokenService(cfg TokenConfig, sessions SessionStore) *TokenService {
	return &TokenService{cfg: cfg, sessions: sessions}
}

// Issue creates an access/refresh pair for a user id.
func (s *TokenService) Issue(ctx context.Context, userID string) (*command.TokenPair, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": userID,
		"iss": s.cfg.Issuer,
		"iat": now.Unix(),
		"exp": now.Add(s.cfg.AccessTTL).Unix(),
		"jti": uuid.NewString(),
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("auth: sign access token: %w", err)
	}

	refresh := uuid.NewString()
	if err := s.sessions.SaveRefreshToken(ctx, refresh, userID, s.cfg.RefreshTTL); err != nil {
		return nil, fmt.Errorf("auth: save refresh token: %w", err)
	}

	return &command.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Verify parses an access token and returns the user id it was issued for.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithIssuer(s.cfg.Issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// Refresh rotates a refresh token into a fresh pair.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (*command.TokenPair, error) {
	userID, err := s.sessions.ResolveRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("auth: resolve refresh token: %w", err)
	}
	if userID == "" {
		return nil, ErrUnknownRefresh
	}

	if err := s.sessions.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("auth: rotate refresh token: %w", err)
	}
	return s.Issue(ctx, userID)
}

// MemorySessionStore keeps refresh sessions in memory. Development and test
// fallback when Redis is not configured.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
}

type memorySession struct {
	userID    string
	expiresAt time.Time
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]memorySession)}
}

// SaveRefreshToken implements SessionStore.
func (m *MemorySessionStore) SaveRefreshToken(_ context.Context, token, userID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = memorySession{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

// ResolveRefreshToken implements SessionStore.
func (m *MemorySessionStore) ResolveRefreshToken(_ context.Context, token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[token]
	if !ok || time.Now().After(sess.expiresAt) {
		delete(m.sessions, token)
		return "", nil
	}
	return sess.userID, nil
}

// DeleteRefreshToken implements SessionStore.
func (m *MemorySessionStore) DeleteRefreshToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}
