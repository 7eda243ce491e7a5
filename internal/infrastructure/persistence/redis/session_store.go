// Package redis implements the Redis-backed session store for refresh
// tokens. Aggregated views are never cached here: every read use case
// recomputes its joins.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pulseboard/pulseboard-backend/pkg/retry"
)

// keyPrefix namespaces all session keys.
const keyPrefix = "pulseboard:session:refresh:"

// Config holds Redis connection configuration.
type Config struct {
	// Addr is the Redis address in "host:port" format.
	Addr string

	// Password is the Redis authentication password (empty if no auth).
	Password string

	// DB is the Redis database number.
	DB int

	// PoolSize is the maximum number of socket connections.
	PoolSize int

	// DialTimeout is the timeout for establishing new connections.
	DialTimeout time.Duration
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Addr:        "localhost:6379",
		DB:          0,
		PoolSize:    10,
		DialTimeout: 5 * time.Second,
	}
}

// SessionStore implements auth.SessionStore on Redis.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore connects to Redis, retrying transient dial failures, and
// returns the store.
func NewSessionStore(ctx context.Context, cfg Config) (*SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: cfg.DialTimeout,
	})

	err := retry.Do(ctx, retry.DefaultConfig(), func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		return nil, fmt.Errorf("redis: connect: %w", err)
	}

	return &SessionStore{client: client}, nil
}

// Close releases the underlying client.
func (s *SessionStore) Close() error {
	return s.client.Close()
}

// SaveRefreshToken stores a refresh token for a user with a TTL.
func (s *SessionStore) SaveRefreshToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+token, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis: save refresh token: %w", err)
	}
	return nil
}

// ResolveRefreshToken returns the user id a refresh token belongs to, or ""
// when the token is unknown or expired.
func (s *SessionStore) ResolveRefreshToken(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis: resolve refresh token: %w", err)
	}
	return userID, nil
}

// DeleteRefreshToken invalidates a refresh token.
func (s *SessionStore) DeleteRefreshToken(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("redis: delete refresh token: %w", err)
	}
	return nil
}
