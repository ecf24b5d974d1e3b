package services

import (
	"errors"

	"github.com/terraincognita07/cyclezen/internal/models"
)

var (
	ErrCycleLengthOutOfRange  = errors.New("cycle length out of range")
	ErrPeriodLengthOutOfRange = errors.New("period length out of range")
	ErrThemeInvalid           = errors.New("theme invalid")
)

func IsValidCycleLength(value int) bool {
	return value >= models.MinCycleLength && value <= models.MaxCycleLength
}

func IsValidPeriodLength(value int) bool {
	return value >= models.MinPeriodLength && value <= models.MaxPeriodLength
}

func ValidateUserSettings(settings models.UserSettings) error {
	if !IsValidCycleLength(settings.CycleLength) {
		return ErrCycleLengthOutOfRange
	}
	if !IsValidPeriodLength(settings.PeriodLength) {
		return ErrPeriodLengthOutOfRange
	}
	if settings.Theme != models.ThemeLight && settings.Theme != models.ThemeDark {
		return ErrThemeInvalid
	}
	return nil
}
