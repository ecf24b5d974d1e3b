package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type AppConfig struct {
	Logger *zap.Logger
	// Registerer receives the HTTP metrics; nil disables them.
	Registerer prometheus.Registerer
	// Gatherer backs /metrics; nil leaves the route unregistered.
	Gatherer prometheus.Gatherer
}

func NewApp(handler *Handler, cfg AppConfig) *fiber.App {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               "CycleZen",
		DisableStartupMessage: true,
		ErrorHandler:          jsonErrorHandler,
	})

	app.Use(recover.New())
	app.Use(RequestLogger(logger.Named("http")))
	if cfg.Registerer != nil {
		app.Use(NewHTTPMetrics(cfg.Registerer).Middleware())
	}
	app.Use(compress.New())

	RegisterRoutes(app, handler)
	if cfg.Gatherer != nil {
		RegisterMetricsRoute(app, cfg.Gatherer)
	}
	app.Use(handler.NotFound)
	return app
}

func jsonErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return apiError(c, fiberErr.Code, strings.ToLower(fiberErr.Message))
	}
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}
