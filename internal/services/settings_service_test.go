package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/cyclezen/internal/models"
)

type stubProfileStore struct {
	user       *models.User
	creates    int
	clears     int
	saveErr    error
	clearErr   error
	createErr  error
	lastExtern string
}

func (stub *stubProfileStore) GetUser() (models.User, bool) {
	if stub.user == nil {
		return models.User{}, false
	}
	return *stub.user, true
}

func (stub *stubProfileStore) CreateUser(externalID string) (models.User, error) {
	if stub.createErr != nil {
		return models.User{}, stub.createErr
	}
	stub.creates++
	stub.lastExtern = externalID
	user := models.User{
		UserID:     "user-" + string(rune('0'+stub.creates)),
		ExternalID: externalID,
		CreatedAt:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Settings:   models.DefaultUserSettings(),
	}
	stub.user = &user
	return user, nil
}

func (stub *stubProfileStore) SaveUser(user models.User) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.user = &user
	return nil
}

func (stub *stubProfileStore) ClearAllData() error {
	if stub.clearErr != nil {
		return stub.clearErr
	}
	stub.clears++
	stub.user = nil
	return nil
}

func intPtr(value int) *int          { return &value }
func stringPtr(value string) *string { return &value }
func boolPtr(value bool) *bool       { return &value }

func TestLoadOrCreateUserCreatesOnce(t *testing.T) {
	store := &stubProfileStore{}
	service := NewSettingsService(store)

	first, err := service.LoadOrCreateUser()
	if err != nil {
		t.Fatalf("LoadOrCreateUser() unexpected error: %v", err)
	}
	second, err := service.LoadOrCreateUser()
	if err != nil {
		t.Fatalf("LoadOrCreateUser() unexpected error: %v", err)
	}
	if store.creates != 1 {
		t.Fatalf("expected one profile creation, got %d", store.creates)
	}
	if first.UserID != second.UserID {
		t.Fatalf("expected stable profile, got %q and %q", first.UserID, second.UserID)
	}
	if first.Settings != models.DefaultUserSettings() {
		t.Fatalf("expected default settings, got %+v", first.Settings)
	}
}

func TestUpdateSettingsAppliesPartialUpdate(t *testing.T) {
	store := &stubProfileStore{}
	service := NewSettingsService(store)

	user, err := service.UpdateSettings(SettingsUpdate{CycleLength: intPtr(32), Theme: stringPtr(models.ThemeDark)})
	if err != nil {
		t.Fatalf("UpdateSettings() unexpected error: %v", err)
	}
	if user.Settings.CycleLength != 32 || user.Settings.Theme != models.ThemeDark {
		t.Fatalf("expected update to apply, got %+v", user.Settings)
	}
	if user.Settings.PeriodLength != models.DefaultPeriodLength || !user.Settings.Notifications {
		t.Fatalf("expected untouched settings to keep defaults, got %+v", user.Settings)
	}
	if store.user.Settings != user.Settings {
		t.Fatalf("expected settings to be persisted, got %+v", store.user.Settings)
	}

	user, err = service.UpdateSettings(SettingsUpdate{Notifications: boolPtr(false)})
	if err != nil {
		t.Fatalf("UpdateSettings() unexpected error: %v", err)
	}
	if user.Settings.Notifications || user.Settings.CycleLength != 32 {
		t.Fatalf("expected second update to build on the first, got %+v", user.Settings)
	}
}

func TestUpdateSettingsRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		update SettingsUpdate
		want   error
	}{
		{name: "cycle too short", update: SettingsUpdate{CycleLength: intPtr(20)}, want: ErrCycleLengthOutOfRange},
		{name: "cycle too long", update: SettingsUpdate{CycleLength: intPtr(36)}, want: ErrCycleLengthOutOfRange},
		{name: "period too short", update: SettingsUpdate{PeriodLength: intPtr(2)}, want: ErrPeriodLengthOutOfRange},
		{name: "period too long", update: SettingsUpdate{PeriodLength: intPtr(9)}, want: ErrPeriodLengthOutOfRange},
		{name: "unknown theme", update: SettingsUpdate{Theme: stringPtr("sepia")}, want: ErrThemeInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubProfileStore{}
			service := NewSettingsService(store)
			original, err := service.LoadOrCreateUser()
			if err != nil {
				t.Fatalf("LoadOrCreateUser() unexpected error: %v", err)
			}

			_, err = service.UpdateSettings(tc.update)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if store.user.Settings != original.Settings {
				t.Fatalf("expected rejected update to leave settings untouched, got %+v", store.user.Settings)
			}
		})
	}
}

func TestUpdateSettingsAcceptsRangeBounds(t *testing.T) {
	service := NewSettingsService(&stubProfileStore{})
	for _, update := range []SettingsUpdate{
		{CycleLength: intPtr(21), PeriodLength: intPtr(3)},
		{CycleLength: intPtr(35), PeriodLength: intPtr(8)},
	} {
		if _, err := service.UpdateSettings(update); err != nil {
			t.Fatalf("expected bounds to be accepted, got %v", err)
		}
	}
}

func TestUpdateSettingsPropagatesSaveError(t *testing.T) {
	saveErr := errors.New("disk full")
	service := NewSettingsService(&stubProfileStore{saveErr: saveErr})
	if _, err := service.UpdateSettings(SettingsUpdate{CycleLength: intPtr(30)}); !errors.Is(err, saveErr) {
		t.Fatalf("expected save error, got %v", err)
	}
}

func TestResetAllDataRecreatesProfile(t *testing.T) {
	store := &stubProfileStore{}
	service := NewSettingsService(store)
	original, err := service.LoadOrCreateUser()
	if err != nil {
		t.Fatalf("LoadOrCreateUser() unexpected error: %v", err)
	}

	fresh, err := service.ResetAllData()
	if err != nil {
		t.Fatalf("ResetAllData() unexpected error: %v", err)
	}
	if store.clears != 1 {
		t.Fatalf("expected one clear, got %d", store.clears)
	}
	if fresh.UserID == original.UserID {
		t.Fatal("expected a new profile id after reset")
	}
}

func TestResetAllDataStopsOnClearError(t *testing.T) {
	clearErr := errors.New("locked")
	store := &stubProfileStore{clearErr: clearErr}
	if _, err := NewSettingsService(store).ResetAllData(); !errors.Is(err, clearErr) {
		t.Fatalf("expected clear error, got %v", err)
	}
	if store.creates != 0 {
		t.Fatal("expected no profile creation after failed clear")
	}
}
