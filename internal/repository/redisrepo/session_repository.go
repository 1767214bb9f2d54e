package redisrepo

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skillforge24/skillforge-backend/internal/repository"
)

type sessionRepository struct {
	client    *redis.Client
	namespace string
}

// NewSessionRepository stores sessions under "<namespace>:session:<tokenID>"
// with the token's remaining lifetime as TTL.
func NewSessionRepository(client *redis.Client, namespace string) repository.SessionRepository {
	return &sessionRepository{client: client, namespace: namespace}
}

func (r *sessionRepository) key(tokenID string) string {
	return r.namespace + ":session:" + tokenID
}

func (r *sessionRepository) Create(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, r.key(tokenID), userID, ttl).Err()
}

func (r *sessionRepository) Exists(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, r.key(tokenID)).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *sessionRepository) Delete(ctx context.Context, tokenID string) error {
	return r.client.Del(ctx, r.key(tokenID)).Err()
}
