package application

import (
	"errors"

	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Store-level errors, re-exported so callers only depend on this package.
var (
	ErrNotFound       = repository.ErrNotFound
	ErrInvalidID      = repository.ErrInvalidID
	ErrDuplicateEmail = repository.ErrDuplicateEmail
)
