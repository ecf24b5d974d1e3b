package models

import "time"

const (
	MoodHappy     = "happy"
	MoodSad       = "sad"
	MoodAnxious   = "anxious"
	MoodIrritable = "irritable"
	MoodCalm      = "calm"
	MoodEnergetic = "energetic"
	MoodTired     = "tired"
)

const (
	MinSymptomLevel = 1
	MaxSymptomLevel = 10
)

// SymptomLog is a single self-report. Several entries may share a calendar day.
type SymptomLog struct {
	SymptomLogID  string    `json:"symptomLogId"`
	UserID        string    `json:"userId"`
	Date          time.Time `json:"date"`
	PainLevel     int       `json:"painLevel"`
	EnergyLevel   int       `json:"energyLevel"`
	Mood          string    `json:"mood"`
	OtherSymptoms []string  `json:"otherSymptoms"`
	Notes         string    `json:"notes,omitempty"`
}

func (log SymptomLog) Clone() SymptomLog {
	cloned := log
	if log.OtherSymptoms != nil {
		cloned.OtherSymptoms = append([]string(nil), log.OtherSymptoms...)
	}
	return cloned
}

func Moods() []string {
	return []string{MoodHappy, MoodSad, MoodAnxious, MoodIrritable, MoodCalm, MoodEnergetic, MoodTired}
}

func IsValidMood(mood string) bool {
	for _, candidate := range Moods() {
		if candidate == mood {
			return true
		}
	}
	return false
}
