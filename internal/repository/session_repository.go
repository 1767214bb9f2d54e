package repository

import (
	"context"
	"time"
)

// SessionRepository tracks live login sessions by token id so logout can
// revoke a JWT before it expires.
type SessionRepository interface {
	Create(ctx context.Context, tokenID, userID string, ttl time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Delete(ctx context.Context, tokenID string) error
}
