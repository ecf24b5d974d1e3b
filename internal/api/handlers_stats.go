package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclezen/internal/services"
)

func (handler *Handler) GetOverview(c *fiber.Ctx) error {
	handler.mu.Lock()
	cycles := handler.store.GetCycleLogs()
	symptoms := handler.store.GetSymptomLogs()
	handler.mu.Unlock()

	return c.JSON(services.BuildCycleOverview(cycles, symptoms, handler.currentTime()))
}

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	handler.mu.Lock()
	symptoms := handler.store.GetSymptomLogs()
	handler.mu.Unlock()

	return c.JSON(fiber.Map{
		"insights": services.AnalyzeSymptomPatterns(symptoms),
		"premium":  services.PremiumInsights(),
		"trend":    services.BuildSymptomTrend(symptoms),
	})
}

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	now := handler.currentTime()
	monthStart, err := parseMonthQuery(c.Query("month"), now, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	handler.mu.Lock()
	cycles := handler.store.GetCycleLogs()
	symptoms := handler.store.GetSymptomLogs()
	handler.mu.Unlock()

	return c.JSON(fiber.Map{
		"month": monthStart.Format("2006-01"),
		"days":  services.BuildCalendarMonth(monthStart, cycles, symptoms, now, handler.location),
	})
}
