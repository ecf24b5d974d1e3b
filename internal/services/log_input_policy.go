package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/cyclezen/internal/models"
)

var (
	ErrCycleLogStartDateMissing = errors.New("cycle log start date missing")
	ErrCycleLogEndBeforeStart   = errors.New("cycle log end date before start date")
	ErrCycleLogFlowInvalid      = errors.New("cycle log flow intensity invalid")
	ErrSymptomLogDateMissing    = errors.New("symptom log date missing")
	ErrSymptomLevelOutOfRange   = errors.New("symptom level out of range")
	ErrSymptomMoodInvalid       = errors.New("symptom mood invalid")
)

// ValidateCycleLog checks what the record store deliberately does not.
func ValidateCycleLog(log models.CycleLog) error {
	if log.StartDate.IsZero() {
		return ErrCycleLogStartDateMissing
	}
	if log.EndDate != nil && calendarDaysBetween(log.StartDate, *log.EndDate) < 0 {
		return ErrCycleLogEndBeforeStart
	}
	if !models.IsValidFlowIntensity(log.FlowIntensity) {
		return ErrCycleLogFlowInvalid
	}
	return nil
}

func ValidateSymptomLog(log models.SymptomLog) error {
	if log.Date.IsZero() {
		return ErrSymptomLogDateMissing
	}
	if !validSymptomLevel(log.PainLevel) || !validSymptomLevel(log.EnergyLevel) {
		return ErrSymptomLevelOutOfRange
	}
	if !models.IsValidMood(log.Mood) {
		return ErrSymptomMoodInvalid
	}
	return nil
}

// NormalizeSymptomTags trims tags and drops blanks and repeats. The tag set is
// unordered, so first occurrence wins.
func NormalizeSymptomTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

func validSymptomLevel(value int) bool {
	return value >= models.MinSymptomLevel && value <= models.MaxSymptomLevel
}
