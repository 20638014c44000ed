package modules

import (
	"context"
	"expvar"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DebugModule struct {
	Ping    func(ctx context.Context) error
	Metrics bool
}

func NewDebugModule(ping func(ctx context.Context) error, metrics bool) *DebugModule {
	return &DebugModule{Ping: ping, Metrics: metrics}
}

func (m *DebugModule) Name() string { return "debug" }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.health)
	if m.Metrics {
		rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
	}
}

func (m *DebugModule) health(c *gin.Context) {
	if m.Ping != nil {
		if err := m.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "mongo": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
