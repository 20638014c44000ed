package router

import (
	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/container"
	handlers "github.com/oksasatya/go-todo-api/internal/interface/http"
	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
	"github.com/oksasatya/go-todo-api/internal/router/modules"
)

type TodoModuleDeps struct {
	Service *application.TodoService
	Handler *handlers.TodoHandler
}

type UserModuleDeps struct {
	Service *application.UserService
	Handler *handlers.UserHandler
}

func buildTodoDeps(c *container.Container) TodoModuleDeps {
	service := application.NewTodoService(c.Todos, c.Logger)
	return TodoModuleDeps{
		Service: service,
		Handler: handlers.NewTodoHandler(service, c.Logger),
	}
}

func buildUserDeps(c *container.Container) UserModuleDeps {
	service := application.NewUserService(
		c.Users,
		c.JWT,
		c.Redis,
		c.Logger,
		c.Config.BcryptCost,
		c.Config.SessionCacheTTL,
	)
	return UserModuleDeps{
		Service: service,
		Handler: handlers.NewUserHandler(service, c.Logger),
	}
}

// InitModules builds every feature module from c and registers it with r.
// Call once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	todoDeps := buildTodoDeps(c)
	userDeps := buildUserDeps(c)

	r.Add(modules.NewTodoModule(todoDeps.Handler))
	r.Add(modules.NewUserModule(userDeps.Handler, middleware.Auth(userDeps.Service, c.Logger)))
	r.Add(modules.NewDebugModule(c.Ping, c.Config.DebugMetricsEnabled))
}
