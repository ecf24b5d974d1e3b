package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclezen/internal/models"
	"github.com/terraincognita07/cyclezen/internal/services"
	"go.uber.org/zap"
)

func (handler *Handler) GetSymptoms(c *fiber.Ctx) error {
	handler.mu.Lock()
	defer handler.mu.Unlock()

	return c.JSON(handler.store.GetSymptomLogs())
}

func (handler *Handler) SaveSymptom(c *fiber.Ctx) error {
	input := symptomPayload{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	date, err := parseDateInput(strings.TrimSpace(input.Date), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	entry := models.SymptomLog{
		SymptomLogID:  strings.TrimSpace(input.SymptomLogID),
		Date:          date,
		PainLevel:     input.PainLevel,
		EnergyLevel:   input.EnergyLevel,
		Mood:          strings.ToLower(strings.TrimSpace(input.Mood)),
		OtherSymptoms: services.NormalizeSymptomTags(input.OtherSymptoms),
		Notes:         strings.TrimSpace(input.Notes),
	}
	if err := services.ValidateSymptomLog(entry); err != nil {
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
	if entry.SymptomLogID == "" {
		entry.SymptomLogID = handler.newID()
	}

	if err := handler.store.SaveSymptomLog(entry); err != nil {
		handler.logger.Error("save symptom log failed", zap.String("symptom_log_id", entry.SymptomLogID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to save symptom log")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) DeleteSymptom(c *fiber.Ctx) error {
	symptomLogID := strings.TrimSpace(c.Params("id"))
	if symptomLogID == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()

	if err := handler.store.DeleteSymptomLog(symptomLogID); err != nil {
		handler.logger.Error("delete symptom log failed", zap.String("symptom_log_id", symptomLogID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to delete symptom log")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
