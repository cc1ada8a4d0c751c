package ratelimiter

import (
	"context"
	"fmt"
	"time"
)

// Config defines the token bucket shape.
type Config struct {
	Capacity       int           // Maximum tokens the bucket can hold (burst limit)
	RefillRate     int           // Tokens added per refill interval
	RefillInterval time.Duration // How often tokens are added
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result describes the outcome of a rate limit check.
type Result struct {
	Limit     int       // Bucket capacity
	Remaining int       // Tokens left after the check
	ResetAt   time.Time // When tokens are next refilled
}

// Allowed reports whether the request may proceed.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before retrying, or 0 when allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Store persists bucket state keyed by caller identity.
type Store interface {
	// ConsumeTokens refills the bucket per config, consumes n tokens and
	// returns the remaining count (negative when over limit) and the next
	// refill time.
	ConsumeTokens(ctx context.Context, key string, n int, cfg Config) (remaining int, resetAt time.Time, err error)

	// Reset discards the bucket for the given key.
	Reset(ctx context.Context, key string) error
}

// Bucket is a token bucket rate limiter.
type Bucket struct {
	store Store
	cfg   Config
}

// NewBucket creates a rate limiter over the given store.
func NewBucket(store Store, cfg Config) (*Bucket, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, cfg: cfg}, nil
}

// Allow consumes one token for the key.
func (b *Bucket) Allow(ctx context.Context, key string) (*Result, error) {
	remaining, resetAt, err := b.store.ConsumeTokens(ctx, key, 1, b.cfg)
	if err != nil {
		return nil, err
	}
	return &Result{Limit: b.cfg.Capacity, Remaining: remaining, ResetAt: resetAt}, nil
}

// Reset clears the bucket for the key.
func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}
