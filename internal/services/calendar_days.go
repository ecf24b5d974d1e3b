package services

import (
	"time"

	"github.com/terraincognita07/cyclezen/internal/models"
)

type CalendarDayState struct {
	Date          time.Time `json:"date"`
	DateString    string    `json:"dateString"`
	Day           int       `json:"day"`
	IsToday       bool      `json:"isToday"`
	IsPeriodStart bool      `json:"isPeriodStart"`
	IsPeriod      bool      `json:"isPeriod"`
	HasSymptoms   bool      `json:"hasSymptoms"`
}

// BuildCalendarMonth marks every day of the month containing monthStart. A day
// is a period day when it is a log's start date or lies within a log's
// start..end range.
func BuildCalendarMonth(monthStart time.Time, cycleLogs []models.CycleLog, symptomLogs []models.SymptomLog, now time.Time, location *time.Location) []CalendarDayState {
	first := DateAtLocation(monthStart, location)
	first = first.AddDate(0, 0, 1-first.Day())
	last := first.AddDate(0, 1, -1)

	symptomDays := make(map[string]bool, len(symptomLogs))
	for _, log := range symptomLogs {
		symptomDays[DateAtLocation(log.Date, location).Format(exportDateLayout)] = true
	}

	today := DateAtLocation(now, location)
	days := make([]CalendarDayState, 0, last.Day())
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format(exportDateLayout)
		isStart, isPeriod := periodMarks(day, cycleLogs, location)

		days = append(days, CalendarDayState{
			Date:          day,
			DateString:    key,
			Day:           day.Day(),
			IsToday:       day.Equal(today),
			IsPeriodStart: isStart,
			IsPeriod:      isPeriod,
			HasSymptoms:   symptomDays[key],
		})
	}
	return days
}

func periodMarks(day time.Time, cycleLogs []models.CycleLog, location *time.Location) (bool, bool) {
	isStart := false
	isPeriod := false
	for _, log := range cycleLogs {
		start := DateAtLocation(log.StartDate, location)
		if sameDay(start, day) {
			isStart = true
			isPeriod = true
			continue
		}
		if log.EndDate != nil && betweenInclusive(day, start, DateAtLocation(*log.EndDate, location)) {
			isPeriod = true
		}
	}
	return isStart, isPeriod
}
