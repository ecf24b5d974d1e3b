package services

import "time"

const secondsPerDay = 24 * 60 * 60

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// calendarDaysBetween counts calendar days from a to b, each taken in its own
// location. DST shifts do not change the result.
func calendarDaysBetween(a time.Time, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}

func sameDay(a, b time.Time) bool {
	return calendarDaysBetween(a, b) == 0
}

func betweenInclusive(day, start, end time.Time) bool {
	return calendarDaysBetween(start, day) >= 0 && calendarDaysBetween(day, end) >= 0
}
