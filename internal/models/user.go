package models

import "time"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	MinCycleLength  = 21
	MaxCycleLength  = 35
	MinPeriodLength = 3
	MaxPeriodLength = 8
)

type UserSettings struct {
	CycleLength   int    `json:"cycleLength"`
	PeriodLength  int    `json:"periodLength"`
	Notifications bool   `json:"notifications"`
	Theme         string `json:"theme"`
}

type User struct {
	UserID     string       `json:"userId"`
	ExternalID string       `json:"externalId,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	Settings   UserSettings `json:"settings"`
}

func DefaultUserSettings() UserSettings {
	return UserSettings{
		CycleLength:   DefaultCycleLength,
		PeriodLength:  DefaultPeriodLength,
		Notifications: true,
		Theme:         ThemeLight,
	}
}
