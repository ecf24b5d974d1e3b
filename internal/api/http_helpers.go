package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclezen/internal/services"
)

var validationErrors = []error{
	services.ErrCycleLengthOutOfRange,
	services.ErrPeriodLengthOutOfRange,
	services.ErrThemeInvalid,
	services.ErrCycleLogStartDateMissing,
	services.ErrCycleLogEndBeforeStart,
	services.ErrCycleLogFlowInvalid,
	services.ErrSymptomLogDateMissing,
	services.ErrSymptomLevelOutOfRange,
	services.ErrSymptomMoodInvalid,
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func isValidationError(err error) bool {
	for _, candidate := range validationErrors {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}

// parseDateInput accepts a calendar day (2006-01-02), taken as local midnight,
// or a full RFC 3339 timestamp.
func parseDateInput(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	if parsed, err := time.ParseInLocation("2006-01-02", raw, location); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.New("invalid date")
	}
	return parsed, nil
}

func parseMonthQuery(raw string, now time.Time, location *time.Location) (time.Time, error) {
	if raw == "" {
		current := services.DateAtLocation(now, location)
		return time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, location), nil
	}
	parsed, err := time.ParseInLocation("2006-01", raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, location), nil
}
