package router

import "github.com/gin-gonic/gin"

// Module is one feature area (todos, users, debug). Register mounts its
// routes on the registry's group; Name labels it in startup logs.
type Module interface {
	Name() string
	Register(rg *gin.RouterGroup)
}
