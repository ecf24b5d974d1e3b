package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	user := api.Group("/user")
	user.Get("", handler.GetUser)
	user.Post("", handler.CreateUser)
	user.Put("/settings", handler.UpdateSettings)

	cycles := api.Group("/cycles")
	cycles.Get("", handler.GetCycles)
	cycles.Post("", handler.SaveCycle)
	cycles.Delete("/:id", handler.DeleteCycle)

	symptoms := api.Group("/symptoms")
	symptoms.Get("", handler.GetSymptoms)
	symptoms.Post("", handler.SaveSymptom)
	symptoms.Delete("/:id", handler.DeleteSymptom)

	api.Get("/overview", handler.GetOverview)
	api.Get("/insights", handler.GetInsights)
	api.Get("/calendar", handler.GetCalendar)
	api.Get("/export/csv", handler.ExportCSV)
	api.Post("/data/clear", handler.ClearAllData)
}

// RegisterMetricsRoute exposes gatherer in the Prometheus text format.
func RegisterMetricsRoute(app *fiber.App, gatherer prometheus.Gatherer) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
