package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclezen/internal/services"
	"go.uber.org/zap"
)

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	handler.mu.Lock()
	defer handler.mu.Unlock()

	user, err := handler.settings.LoadOrCreateUser()
	if err != nil {
		handler.logger.Error("load profile failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(user)
}

// CreateUser replaces the profile. Logged cycles and symptoms are kept.
func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	input := createUserPayload{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()

	user, err := handler.store.CreateUser(input.ExternalID)
	if err != nil {
		handler.logger.Error("create profile failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to create profile")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	input := services.SettingsUpdate{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()

	user, err := handler.settings.UpdateSettings(input)
	if err != nil {
		if isValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		handler.logger.Error("update settings failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to update settings")
	}
	return c.JSON(user)
}

// ClearAllData wipes every record and starts over with a fresh default profile.
func (handler *Handler) ClearAllData(c *fiber.Ctx) error {
	handler.mu.Lock()
	defer handler.mu.Unlock()

	user, err := handler.settings.ResetAllData()
	if err != nil {
		handler.logger.Error("clear data failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to clear data")
	}
	return c.JSON(fiber.Map{"ok": true, "user": user})
}
