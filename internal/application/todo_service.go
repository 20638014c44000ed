package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	repo "github.com/oksasatya/go-todo-api/internal/domain/repository"
)

type TodoService struct {
	Repo   repo.TodoRepository
	Logger *logrus.Logger
	Now    func() time.Time
}

func NewTodoService(repo repo.TodoRepository, logger *logrus.Logger) *TodoService {
	return &TodoService{Repo: repo, Logger: logger, Now: time.Now}
}

// UpdateTodoInput lists the only fields a client may change.
type UpdateTodoInput struct {
	Text      *string
	Completed *bool
}

func (s *TodoService) Create(ctx context.Context, text string) (*entity.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrValidation)
	}
	t := &entity.Todo{Text: text}
	if err := s.Repo.Create(ctx, t); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("create todo failed")
		}
		return nil, err
	}
	todosCreated.Add(1)
	return t, nil
}

func (s *TodoService) List(ctx context.Context) ([]entity.Todo, error) {
	return s.Repo.List(ctx)
}

func (s *TodoService) Get(ctx context.Context, id string) (*entity.Todo, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update replaces text (when given) and completed. completedAt is derived:
// now in milliseconds when completed is true, otherwise completed is forced
// to false and completedAt to null.
func (s *TodoService) Update(ctx context.Context, id string, in UpdateTodoInput) (*entity.Todo, error) {
	changes := repo.TodoChanges{}
	if in.Text != nil {
		text := strings.TrimSpace(*in.Text)
		if text == "" {
			return nil, fmt.Errorf("%w: text cannot be empty", ErrValidation)
		}
		changes.Text = &text
	}
	if in.Completed != nil && *in.Completed {
		at := s.Now().UnixMilli()
		changes.Completed = true
		changes.CompletedAt = &at
	}

	t, err := s.Repo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id string) (*entity.Todo, error) {
	t, err := s.Repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("todo_id", t.ID).Debug("todo deleted")
	}
	return t, nil
}
