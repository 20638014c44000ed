package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	repo "github.com/oksasatya/go-todo-api/internal/domain/repository"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
)

const MinPasswordLength = 6

var validate = validator.New()

const sessionKeyPrefix = "auth:token:"

type UserService struct {
	Repo       repo.UserRepository
	JWT        *helpers.JWTManager
	Sessions   *helpers.JSONStore[cachedSession] // nil disables the session cache
	Logger     *logrus.Logger
	BcryptCost int
}

// NewUserService builds the user service. The session cache is enabled only
// when rdb is non-nil and sessionTTL is positive.
func NewUserService(repo repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger, bcryptCost int, sessionTTL time.Duration) *UserService {
	s := &UserService{
		Repo:       repo,
		JWT:        jwt,
		Logger:     logger,
		BcryptCost: bcryptCost,
	}
	if rdb != nil && sessionTTL > 0 {
		s.Sessions = helpers.NewJSONStore[cachedSession](rdb, sessionKeyPrefix, sessionTTL)
	}
	return s
}

type cachedSession struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func normalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Signup stores a new user with a hashed password and issues its first auth token.
func (s *UserService) Signup(ctx context.Context, email, password string) (*entity.User, string, error) {
	email = normalizeEmail(email)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, "", fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}

	hash, err := helpers.HashPassword(password, s.BcryptCost)
	if err != nil {
		return nil, "", err
	}
	u := &entity.User{Email: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, "", err
	}
	usersSignedUp.Add(1)
	return u, token, nil
}

// Login checks credentials and appends a fresh token to the user's list.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, "", err
	}
	logins.Add(1)
	return u, token, nil
}

// FindByToken resolves an auth token to its owner. The signature is verified
// before the embedded id is trusted, and the token must still be present in
// the owner's token list.
func (s *UserService) FindByToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	claims, err := s.JWT.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if claims.Access != entity.AccessAuth {
		return nil, ErrUnauthenticated
	}

	if u, ok := s.cachedUser(ctx, token); ok && u.ID == claims.UserID {
		return u, nil
	}

	u, err := s.Repo.GetByToken(ctx, claims.UserID, entity.Token{Access: claims.Access, Token: token})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) || errors.Is(err, repo.ErrInvalidID) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	s.cacheUser(ctx, token, u)
	return u, nil
}

// Logout revokes token by removing it from the user's list.
func (s *UserService) Logout(ctx context.Context, u *entity.User, token string) error {
	if err := s.Repo.RemoveToken(ctx, u.ID, entity.Token{Access: entity.AccessAuth, Token: token}); err != nil {
		return err
	}
	if s.Sessions != nil {
		if err := s.Sessions.Del(ctx, token); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("redis session evict failed")
		}
	}
	return nil
}

func (s *UserService) issueToken(ctx context.Context, u *entity.User) (string, error) {
	token, err := s.JWT.GenerateToken(u.ID, entity.AccessAuth)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate auth token failed")
		}
		return "", err
	}
	tok := entity.Token{Access: entity.AccessAuth, Token: token}
	if err := s.Repo.AddToken(ctx, u.ID, tok); err != nil {
		return "", err
	}
	u.Tokens = append(u.Tokens, tok)
	return token, nil
}

func (s *UserService) cachedUser(ctx context.Context, token string) (*entity.User, bool) {
	if s.Sessions == nil {
		return nil, false
	}
	sess, ok, err := s.Sessions.Get(ctx, token)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("redis session lookup failed")
		}
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return &entity.User{ID: sess.UserID, Email: sess.Email}, true
}

func (s *UserService) cacheUser(ctx context.Context, token string, u *entity.User) {
	if s.Sessions == nil {
		return
	}
	sess := cachedSession{UserID: u.ID, Email: u.Email}
	if err := s.Sessions.Set(ctx, token, sess); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("redis session store failed")
	}
}
