// Package memory holds in-process repositories for tests. They follow the
// MongoDB implementations: 24-char hex ids, insertion-ordered listing and the
// same repository errors.
package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

var _ repository.TodoRepository = (*TodoRepository)(nil)

type TodoRepository struct {
	mu    sync.Mutex
	order []string
	todos map[string]entity.Todo

	// Err, when set, is returned by every call.
	Err error
}

func NewTodoRepository() *TodoRepository {
	return &TodoRepository{todos: make(map[string]entity.Todo)}
}

func checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	return nil
}

func (r *TodoRepository) Create(_ context.Context, t *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	t.ID = primitive.NewObjectID().Hex()
	r.todos[t.ID] = *t
	r.order = append(r.order, t.ID)
	return nil
}

func (r *TodoRepository) List(_ context.Context) ([]entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]entity.Todo, 0, len(r.order))
	for _, id := range r.order {
		if t, ok := r.todos[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TodoRepository) GetByID(_ context.Context, id string) (*entity.Todo, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	t, ok := r.todos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r *TodoRepository) Update(_ context.Context, id string, changes repository.TodoChanges) (*entity.Todo, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	t, ok := r.todos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if changes.Text != nil {
		t.Text = *changes.Text
	}
	t.Completed = changes.Completed
	t.CompletedAt = changes.CompletedAt
	r.todos[id] = t
	return &t, nil
}

func (r *TodoRepository) DeleteByID(_ context.Context, id string) (*entity.Todo, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	t, ok := r.todos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.todos, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return &t, nil
}
