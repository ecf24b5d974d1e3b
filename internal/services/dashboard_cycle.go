package services

// cycleLongGraceDays is how far past the reference length a cycle may run
// before it is flagged.
const cycleLongGraceDays = 7

// CycleDayLooksLong reports a cycle running well past its usual length, which
// usually means a period start was not logged.
func CycleDayLooksLong(currentDay int, referenceLength int) bool {
	if currentDay <= 0 || referenceLength <= 0 {
		return false
	}
	return currentDay > referenceLength+cycleLongGraceDays
}
