package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclezen/internal/models"
	"github.com/terraincognita07/cyclezen/internal/services"
	"go.uber.org/zap"
)

func (handler *Handler) GetCycles(c *fiber.Ctx) error {
	handler.mu.Lock()
	defer handler.mu.Unlock()

	return c.JSON(handler.store.GetCycleLogs())
}

// SaveCycle upserts a cycle log. An empty logId creates a new entry; an
// existing one is replaced and moves to the end of the history.
func (handler *Handler) SaveCycle(c *fiber.Ctx) error {
	input := cyclePayload{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, message := handler.cycleLogFromPayload(input)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	if err := services.ValidateCycleLog(entry); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()

	user, err := handler.settings.LoadOrCreateUser()
	if err != nil {
		handler.logger.Error("load profile failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	entry.UserID = user.UserID
	if entry.LogID == "" {
		entry.LogID = handler.newID()
	}

	if err := handler.store.SaveCycleLog(entry); err != nil {
		handler.logger.Error("save cycle log failed", zap.String("log_id", entry.LogID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to save cycle log")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) DeleteCycle(c *fiber.Ctx) error {
	logID := strings.TrimSpace(c.Params("id"))
	if logID == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()

	if err := handler.store.DeleteCycleLog(logID); err != nil {
		handler.logger.Error("delete cycle log failed", zap.String("log_id", logID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to delete cycle log")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) cycleLogFromPayload(input cyclePayload) (models.CycleLog, string) {
	startDate, err := parseDateInput(strings.TrimSpace(input.StartDate), handler.location)
	if err != nil {
		return models.CycleLog{}, "invalid start date"
	}

	entry := models.CycleLog{
		LogID:         strings.TrimSpace(input.LogID),
		StartDate:     startDate,
		FlowIntensity: strings.ToLower(strings.TrimSpace(input.FlowIntensity)),
		Notes:         strings.TrimSpace(input.Notes),
	}
	if raw := strings.TrimSpace(input.EndDate); raw != "" {
		endDate, err := parseDateInput(raw, handler.location)
		if err != nil {
			return models.CycleLog{}, "invalid end date"
		}
		entry.EndDate = &endDate
	}
	return entry, ""
}
