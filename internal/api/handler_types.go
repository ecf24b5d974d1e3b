package api

import (
	"sync"
	"time"

	"github.com/terraincognita07/cyclezen/internal/db"
	"github.com/terraincognita07/cyclezen/internal/services"
	"go.uber.org/zap"
)

// Handler serves the local JSON API over a single record store. The store does
// no locking of its own, so every handler that touches it holds mu.
type Handler struct {
	mu       sync.Mutex
	store    *db.Store
	settings *services.SettingsService
	logger   *zap.Logger
	location *time.Location
	now      func() time.Time
	newID    func() string
}

type cyclePayload struct {
	LogID         string `json:"logId"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	FlowIntensity string `json:"flowIntensity"`
	Notes         string `json:"notes"`
}

type symptomPayload struct {
	SymptomLogID  string   `json:"symptomLogId"`
	Date          string   `json:"date"`
	PainLevel     int      `json:"painLevel"`
	EnergyLevel   int      `json:"energyLevel"`
	Mood          string   `json:"mood"`
	OtherSymptoms []string `json:"otherSymptoms"`
	Notes         string   `json:"notes"`
}

type createUserPayload struct {
	ExternalID string `json:"externalId"`
}
