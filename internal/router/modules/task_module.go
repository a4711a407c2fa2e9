package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/dcnearshore/taskboard/internal/interface/http"
	"github.com/dcnearshore/taskboard/internal/interface/middleware"
)

// TaskModule wires the task CRUD routes under /api/tasks. The routes are
// public; a soft per-IP limit keeps a misbehaving client from hammering
// the board.
type TaskModule struct {
	Handler *handlers.TaskHandler
	Redis   *redis.Client
}

func NewTaskModule(h *handlers.TaskHandler, rdb *redis.Client) *TaskModule {
	return &TaskModule{Handler: h, Redis: rdb}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	tasks := rg.Group("/tasks", rl)
	{
		tasks.GET("", m.Handler.List)
		tasks.POST("", m.Handler.Create)
		tasks.GET("/:id", m.Handler.Show)
		tasks.PUT("/:id", m.Handler.Update)
		tasks.DELETE("/:id", m.Handler.Destroy)
	}
}
