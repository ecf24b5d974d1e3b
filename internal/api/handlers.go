package api

import (
	"time"

	"github.com/terraincognita07/cyclezen/internal/db"
	"github.com/terraincognita07/cyclezen/internal/services"
	"go.uber.org/zap"
)

func NewHandler(store *db.Store, logger *zap.Logger, location *time.Location) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		store:    store,
		settings: services.NewSettingsService(store),
		logger:   logger,
		location: location,
		now:      time.Now,
		newID:    db.NewRecordID,
	}
}

func (handler *Handler) currentTime() time.Time {
	return handler.now().In(handler.location)
}
