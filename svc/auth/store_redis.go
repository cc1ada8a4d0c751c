package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore implements SessionStore over Redis. Expiry is delegated
// to the key TTL, so expired sessions disappear without a sweeper.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a store over the given client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Create(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+token, userID.String(), ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrSessionNotFound
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		// An unparseable value means the key was corrupted; treat the
		// session as gone and clean up.
		_ = s.client.Del(ctx, sessionKeyPrefix+token).Err()
		return uuid.Nil, ErrSessionNotFound
	}
	return userID, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}
