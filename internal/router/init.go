package router

import (
	"github.com/dcnearshore/taskboard/internal/application"
	"github.com/dcnearshore/taskboard/internal/container"
	pginfra "github.com/dcnearshore/taskboard/internal/infrastructure/postgres"
	handlers "github.com/dcnearshore/taskboard/internal/interface/http"
	"github.com/dcnearshore/taskboard/internal/router/modules"
)

// InitModules builds repositories, services and handlers from the
// container singletons and registers every feature module. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	rdb := container.GetRedis()

	taskSvc := application.NewTaskService(pginfra.NewTaskRepository(pool), logger)
	userSvc := application.NewUserService(
		pginfra.NewUserRepository(pool),
		pginfra.NewTokenRepository(pool),
		cfg.TokenTTL,
		logger,
	)

	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), rdb))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), userSvc, rdb))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(rdb))
	}
}
