package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
)

const (
	// AuthHeader carries the bearer token on requests and on signup/login responses.
	AuthHeader = "x-auth"

	CtxUserKey  = "user"
	CtxTokenKey = "token"
)

// TokenResolver resolves a raw auth token to its owner.
type TokenResolver interface {
	FindByToken(ctx context.Context, token string) (*entity.User, error)
}

// Auth resolves the x-auth header to a user and stores it (and the raw token)
// in the Gin context. Any failure aborts with an empty 401.
func Auth(users TokenResolver, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AuthHeader)
		u, err := users.FindByToken(c.Request.Context(), token)
		if err != nil {
			if logger != nil {
				logger.WithError(err).WithField("request_id", c.GetString(RequestIDKey)).Debug("auth rejected")
			}
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(CtxUserKey, u)
		c.Set(CtxTokenKey, token)
		c.Next()
	}
}

// CurrentUser returns the user stored by Auth.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok && u != nil
}
