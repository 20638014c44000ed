package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
	"github.com/oksasatya/go-todo-api/pkg/response"
)

// statusFor maps service errors to HTTP status codes. Anything unclassified,
// store failures included, is reported as a client error: these handlers
// never answer 5xx.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

func isClassified(err error) bool {
	for _, target := range []error{
		application.ErrValidation,
		application.ErrInvalidID,
		application.ErrNotFound,
		application.ErrDuplicateEmail,
		application.ErrInvalidCredentials,
		application.ErrUnauthenticated,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// fail writes the error response for err. Unclassified errors are logged and
// their text is kept out of the response body.
func fail(c *gin.Context, logger *logrus.Logger, err error, message string) {
	status := statusFor(err)
	if !isClassified(err) {
		if logger != nil {
			logger.WithError(err).WithField("request_id", c.GetString(middleware.RequestIDKey)).Warn(message)
		}
		response.Error(c, status, message, nil)
		return
	}
	response.Error(c, status, message, err.Error())
}
