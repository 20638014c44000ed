package repository

import (
	"context"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
)

// TodoChanges is the full set of fields a caller may replace on a todo.
// CompletedAt is computed by the service, never taken from request input.
type TodoChanges struct {
	Text        *string
	Completed   bool
	CompletedAt *int64
}

// TodoRepository defines the interface for todo document operations.
// Implementations return ErrInvalidID for malformed ids without touching the store.
type TodoRepository interface {
	Create(ctx context.Context, t *entity.Todo) error
	List(ctx context.Context) ([]entity.Todo, error)
	GetByID(ctx context.Context, id string) (*entity.Todo, error)
	Update(ctx context.Context, id string, changes TodoChanges) (*entity.Todo, error)
	DeleteByID(ctx context.Context, id string) (*entity.Todo, error)
}
