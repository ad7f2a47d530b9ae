package authguard

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSessionStore checks sessions against the same "session:<sid>" keys the
// auth service writes.
type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) Active(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	err := s.rdb.Get(ctx, "session:"+sessionID.String()).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
