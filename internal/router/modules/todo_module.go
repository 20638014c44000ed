package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-todo-api/internal/interface/http"
)

// TodoModule serves the todo collection. All routes are public.
type TodoModule struct {
	Handler *handlers.TodoHandler
}

func NewTodoModule(h *handlers.TodoHandler) *TodoModule {
	return &TodoModule{Handler: h}
}

func (m *TodoModule) Name() string { return "todos" }

func (m *TodoModule) Register(rg *gin.RouterGroup) {
	rg.POST("/todos", m.Handler.Create)
	rg.GET("/todos", m.Handler.List)
	rg.GET("/todos/:id", m.Handler.Get)
	rg.PATCH("/todos/:id", m.Handler.Update)
	rg.DELETE("/todos/:id", m.Handler.Delete)
}
