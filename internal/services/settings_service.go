package services

import (
	"fmt"

	"github.com/terraincognita07/cyclezen/internal/models"
)

type ProfileStore interface {
	GetUser() (models.User, bool)
	CreateUser(externalID string) (models.User, error)
	SaveUser(user models.User) error
	ClearAllData() error
}

// SettingsUpdate carries only the settings the caller wants to change.
type SettingsUpdate struct {
	CycleLength   *int    `json:"cycleLength"`
	PeriodLength  *int    `json:"periodLength"`
	Notifications *bool   `json:"notifications"`
	Theme         *string `json:"theme"`
}

type SettingsService struct {
	store ProfileStore
}

func NewSettingsService(store ProfileStore) *SettingsService {
	return &SettingsService{store: store}
}

// LoadOrCreateUser returns the stored profile, creating a default one on first
// access.
func (service *SettingsService) LoadOrCreateUser() (models.User, error) {
	if user, ok := service.store.GetUser(); ok {
		return user, nil
	}
	user, err := service.store.CreateUser("")
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *SettingsService) UpdateSettings(update SettingsUpdate) (models.User, error) {
	user, err := service.LoadOrCreateUser()
	if err != nil {
		return models.User{}, err
	}

	settings := ApplySettingsUpdate(user.Settings, update)
	if err := ValidateUserSettings(settings); err != nil {
		return models.User{}, err
	}

	user.Settings = settings
	if err := service.store.SaveUser(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ResetAllData wipes every collection and starts over with a fresh profile.
func (service *SettingsService) ResetAllData() (models.User, error) {
	if err := service.store.ClearAllData(); err != nil {
		return models.User{}, err
	}
	user, err := service.store.CreateUser("")
	if err != nil {
		return models.User{}, fmt.Errorf("recreate profile after reset: %w", err)
	}
	return user, nil
}

func ApplySettingsUpdate(settings models.UserSettings, update SettingsUpdate) models.UserSettings {
	if update.CycleLength != nil {
		settings.CycleLength = *update.CycleLength
	}
	if update.PeriodLength != nil {
		settings.PeriodLength = *update.PeriodLength
	}
	if update.Notifications != nil {
		settings.Notifications = *update.Notifications
	}
	if update.Theme != nil {
		settings.Theme = *update.Theme
	}
	return settings
}
