package models

import "time"

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

// CycleLog is one recorded period. EndDate stays nil until the period ends.
type CycleLog struct {
	LogID         string     `json:"logId"`
	UserID        string     `json:"userId"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	FlowIntensity string     `json:"flowIntensity"`
	Notes         string     `json:"notes,omitempty"`
}

func (log CycleLog) Clone() CycleLog {
	cloned := log
	if log.EndDate != nil {
		end := *log.EndDate
		cloned.EndDate = &end
	}
	return cloned
}

func IsValidFlowIntensity(flow string) bool {
	switch flow {
	case FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}
