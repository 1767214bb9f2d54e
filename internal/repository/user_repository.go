package repository

import (
	"context"

	"github.com/skillforge24/skillforge-backend/internal/domain"
)

// UserRepository persists durable account records. Create fails with
// domain.ErrUserAlreadyExists when the email is taken; lookups fail with
// domain.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
