package repository

import (
	"context"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByToken returns the user with the given id only if tok is still in its token list.
	GetByToken(ctx context.Context, id string, tok entity.Token) (*entity.User, error)
	AddToken(ctx context.Context, id string, tok entity.Token) error
	RemoveToken(ctx context.Context, id string, tok entity.Token) error
}
