package bootstrap

import (
	"bbp-finder-be/internal/config"
	"bbp-finder-be/internal/controller"
	"bbp-finder-be/internal/pkg/logger"
	"bbp-finder-be/internal/pkg/serverutils"
	"bbp-finder-be/internal/repository/memory"
	"bbp-finder-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	StoreController   controller.IStoreController
	QueryController   controller.IQueryController

	// SessionGuard resolves bearer tokens to live sessions.
	SessionGuard fiber.Handler

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository(cfg.App.SessionTTL)

	// 3. Services
	sessionService := service.NewSessionService(sessionRepo, cfg.App.SessionTTL)
	storeService := service.NewStoreService(cfg.Remote, sessionRepo, sysLogger)
	queryService := service.NewQueryService(cfg.Remote, sysLogger)

	// 4. Controllers
	return &Container{
		SessionController: controller.NewSessionController(sessionService),
		StoreController:   controller.NewStoreController(storeService),
		QueryController:   controller.NewQueryController(queryService),
		SessionGuard:      serverutils.NewSessionMiddleware(sessionRepo),
		Logger:            sysLogger,
	}
}
