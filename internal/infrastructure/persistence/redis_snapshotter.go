package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skillforge24/skillforge-backend/internal/store"
)

const opTimeout = 3 * time.Second

// RedisSnapshotter persists the serialized game state as a single JSON value
// under "<namespace>:game-state". The record is rewritten wholesale on every
// mutating store call and read once at startup.
type RedisSnapshotter struct {
	client *redis.Client
	key    string
}

func NewRedisSnapshotter(client *redis.Client, namespace string) *RedisSnapshotter {
	return &RedisSnapshotter{
		client: client,
		key:    namespace + ":game-state",
	}
}

func (r *RedisSnapshotter) Save(ctx context.Context, state *store.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write game state: %w", err)
	}
	return nil
}

func (r *RedisSnapshotter) Load(ctx context.Context) (*store.State, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read game state: %w", err)
	}

	var state store.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}
	return &state, nil
}
