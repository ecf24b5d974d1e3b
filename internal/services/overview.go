package services

import (
	"math"
	"time"

	"github.com/terraincognita07/cyclezen/internal/models"
)

const recentActivityLimit = 2

type CycleOverview struct {
	CurrentCycleDay     int                 `json:"currentCycleDay"`
	Phase               models.CyclePhase   `json:"phase"`
	NextPeriod          time.Time           `json:"nextPeriod"`
	DaysUntilNextPeriod int                 `json:"daysUntilNextPeriod"`
	AverageCycleLength  int                 `json:"averageCycleLength"`
	CycleLooksLong      bool                `json:"cycleLooksLong"`
	CycleCount          int                 `json:"cycleCount"`
	RecentCycles        []models.CycleLog   `json:"recentCycles"`
	RecentSymptoms      []models.SymptomLog `json:"recentSymptoms"`
	HasData             bool                `json:"hasData"`
}

// BuildCycleOverview composes the dashboard summary. The current cycle is the
// last cycle log by position; with no logs the cycle day is 1.
func BuildCycleOverview(cycleLogs []models.CycleLog, symptomLogs []models.SymptomLog, now time.Time) CycleOverview {
	cycleDay := 1
	if len(cycleLogs) > 0 {
		cycleDay = CalculateCycleDay(cycleLogs[len(cycleLogs)-1].StartDate, now)
	}

	averageLength := AverageCycleLength(cycleLogs)
	nextPeriod := PredictNextPeriod(cycleLogs, averageLength, now)

	return CycleOverview{
		CurrentCycleDay:     cycleDay,
		Phase:               CurrentCyclePhase(cycleDay),
		NextPeriod:          nextPeriod,
		DaysUntilNextPeriod: int(math.Ceil(nextPeriod.Sub(now).Hours() / 24)),
		AverageCycleLength:  averageLength,
		CycleLooksLong:      len(cycleLogs) > 0 && CycleDayLooksLong(cycleDay, averageLength),
		CycleCount:          len(cycleLogs),
		RecentCycles:        recentCycleLogs(cycleLogs, recentActivityLimit),
		RecentSymptoms:      recentSymptomLogs(symptomLogs, recentActivityLimit),
		HasData:             len(cycleLogs) > 0 || len(symptomLogs) > 0,
	}
}

// recentCycleLogs returns up to n trailing logs, newest position first.
func recentCycleLogs(logs []models.CycleLog, n int) []models.CycleLog {
	recent := make([]models.CycleLog, 0, n)
	for i := len(logs) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, logs[i].Clone())
	}
	return recent
}

func recentSymptomLogs(logs []models.SymptomLog, n int) []models.SymptomLog {
	recent := make([]models.SymptomLog, 0, n)
	for i := len(logs) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, logs[i].Clone())
	}
	return recent
}
