package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type bucketState struct {
	tokens     int
	lastRefill time.Time
}

// MemoryStore implements Store with an in-process map. It is safe for
// concurrent use and suitable for single-instance deployments.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucketState
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]*bucketState)}
}

// ConsumeTokens refills the bucket from elapsed time, then consumes n tokens.
func (ms *MemoryStore) ConsumeTokens(ctx context.Context, key string, n int, cfg Config) (int, time.Time, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	b, ok := ms.buckets[key]
	if !ok {
		b = &bucketState{tokens: cfg.Capacity, lastRefill: now}
		ms.buckets[key] = b
	}

	// Cap the interval count so long-idle buckets cannot overflow the math.
	elapsed := now.Sub(b.lastRefill)
	maxIntervals := int64(cfg.Capacity/cfg.RefillRate + 1)
	intervals := int(min(int64(elapsed/cfg.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*cfg.RefillRate, cfg.Capacity)
		b.lastRefill = now
	}

	b.tokens -= n
	return b.tokens, b.lastRefill.Add(cfg.RefillInterval), nil
}

// Reset discards the bucket for the given key.
func (ms *MemoryStore) Reset(ctx context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.buckets, key)
	return nil
}
