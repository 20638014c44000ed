package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-todo-api/internal/interface/http"
)

// UserModule wires signup, login and the token-protected /users/me routes.
// Public: POST /users, POST /users/login
// Protected (x-auth): GET /users/me, DELETE /users/me/token
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, auth gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, Auth: auth}
}

func (m *UserModule) Name() string { return "users" }

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.Signup)
	rg.POST("/users/login", m.Handler.Login)

	me := rg.Group("/users/me")
	me.Use(m.Auth)
	{
		me.GET("", m.Handler.Me)
		me.DELETE("/token", m.Handler.Logout)
	}
}
