// Package retry provides retry functionality with exponential backoff and
// jitter. Used for connection bootstrap against Postgres and Redis.
// No external dependencies - uses only standard library.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// PermanentError indicates that an error should not be retried.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// Permanent wraps an error to indicate it should not be retried.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// Config controls the retry behavior.
type Config struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// InitialDelay is the delay before the second attempt.
	InitialDelay time.Duration

	// MaxDelay caps the backoff.
	MaxDelay time.Duration

	// Multiplier grows the delay between attempts.
	Multiplier float64

	// Jitter adds up to this fraction of the delay as random noise.
	Jitter float64
}

// DefaultConfig returns a configuration suitable for connection bootstrap.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  5,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.2,
	}
}

// Do runs fn until it succeeds, returns a permanent error, the attempts are
// exhausted, or the context is cancelled.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	delay := cfg.InitialDelay
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		var perm *PermanentError
		if errors.As(lastErr, &perm) {
			return perm.Err
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		sleep := delay
		if cfg.Jitter > 0 {
			sleep += time.Duration(rand.Float64() * cfg.Jitter * float64(delay))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return lastErr
}
