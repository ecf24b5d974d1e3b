package services

import (
	"math"
	"time"

	"github.com/terraincognita07/cyclezen/internal/models"
)

type phaseBand struct {
	lastDay     int
	phase       string
	description string
}

// Bands are checked in order; anything past the last bounded band is luteal.
var phaseBands = []phaseBand{
	{lastDay: 5, phase: models.PhaseMenstrual, description: "Menstrual phase - Your period is here"},
	{lastDay: 13, phase: models.PhaseFollicular, description: "Follicular phase - Energy is building"},
	{lastDay: 16, phase: models.PhaseOvulation, description: "Ovulation phase - Peak fertility window"},
}

var lutealBand = phaseBand{phase: models.PhaseLuteal, description: "Luteal phase - Preparing for next cycle"}

// CalculateCycleDay returns the 1-based day of the cycle that started on
// lastPeriodStart. It is not clamped: a currentDate before the start yields 0
// or a negative day.
func CalculateCycleDay(lastPeriodStart time.Time, currentDate time.Time) int {
	return calendarDaysBetween(lastPeriodStart, currentDate) + 1
}

// CurrentCyclePhase maps a cycle day to a fixed phase band. It ignores the
// user's own cycle and period lengths. Days below 1 land in the menstrual band.
func CurrentCyclePhase(cycleDay int) models.CyclePhase {
	band := lutealBand
	for _, candidate := range phaseBands {
		if cycleDay <= candidate.lastDay {
			band = candidate
			break
		}
	}
	return models.CyclePhase{
		Phase:       band.phase,
		Day:         cycleDay,
		Description: band.description,
	}
}

// PredictNextPeriod adds averageCycleLength days to the start of the last
// log by position, or to now when there are no logs. A non-positive
// averageCycleLength means the default cycle length.
func PredictNextPeriod(cycleLogs []models.CycleLog, averageCycleLength int, now time.Time) time.Time {
	if averageCycleLength <= 0 {
		averageCycleLength = models.DefaultCycleLength
	}
	if len(cycleLogs) == 0 {
		return now.AddDate(0, 0, averageCycleLength)
	}
	last := cycleLogs[len(cycleLogs)-1]
	return last.StartDate.AddDate(0, 0, averageCycleLength)
}

// PredictNextPeriodByStartDate is PredictNextPeriod anchored on the latest
// StartDate instead of the last inserted log.
func PredictNextPeriodByStartDate(cycleLogs []models.CycleLog, averageCycleLength int, now time.Time) time.Time {
	latest, ok := LatestCycleLog(cycleLogs)
	if !ok {
		return PredictNextPeriod(nil, averageCycleLength, now)
	}
	return PredictNextPeriod([]models.CycleLog{latest}, averageCycleLength, now)
}

// LatestCycleLog returns the log with the latest StartDate. Ties keep the
// later position.
func LatestCycleLog(cycleLogs []models.CycleLog) (models.CycleLog, bool) {
	if len(cycleLogs) == 0 {
		return models.CycleLog{}, false
	}
	latest := cycleLogs[0]
	for _, log := range cycleLogs[1:] {
		if !log.StartDate.Before(latest.StartDate) {
			latest = log
		}
	}
	return latest, true
}

// AverageCycleLength is the rounded mean gap in days between consecutive
// StartDates in the given order. Gaps are absolute, so unsorted input still
// produces positive lengths.
func AverageCycleLength(cycleLogs []models.CycleLog) int {
	if len(cycleLogs) < 2 {
		return models.DefaultCycleLength
	}

	total := 0
	for i := 1; i < len(cycleLogs); i++ {
		gap := calendarDaysBetween(cycleLogs[i-1].StartDate, cycleLogs[i].StartDate)
		if gap < 0 {
			gap = -gap
		}
		total += gap
	}
	return int(math.Floor(float64(total)/float64(len(cycleLogs)-1) + 0.5))
}
