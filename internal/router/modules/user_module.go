package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/dcnearshore/taskboard/internal/interface/http"
	"github.com/dcnearshore/taskboard/internal/interface/middleware"
)

// UserModule wires registration, login and logout.
// Public: POST /api/register, POST /api/login (tight per-IP limits).
// Gated: POST /api/logout behind the bearer-presence check; the Identity
// middleware resolves the actual user when the token is a real one.
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    middleware.Authenticator
	Redis   *redis.Client
}

func NewUserModule(h *handlers.UserHandler, auth middleware.Authenticator, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Auth: auth, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), nil) // 10 req/min per IP
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), nil)    // 10 req/min per IP

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	gated := rg.Group("/")
	gated.Use(middleware.RequireBearer(), middleware.Identity(m.Auth))
	{
		gated.POST("/logout", m.Handler.Logout)
	}
}
