package service

import (
	"strconv"
	"strings"

	"service-attendance/internal/domain"
)

// End-of-day thresholds in fractional hours, per tier and weekday.
const (
	endEleven20   = 11 + 20.0/60
	endTwelve20   = 12 + 20.0/60
	endThirteen20 = 13 + 20.0/60

	// Tolerance when comparing a slot start against a threshold, so 11:20
	// is not missed by float representation.
	timeEpsilon = 0.001
)

// IsSlotBlackedOut reports whether a slot starting at startTime falls at or
// after the class tier's end of instructional day on the given weekday
// label. Weekends have no instructional day for either tier. An unclassified
// class never blacks out.
func IsSlotBlackedOut(className, day, startTime string) bool {
	timeNum, ok := fractionalHour(startTime)
	if !ok {
		return false
	}

	switch domain.ClassTier(className) {
	case domain.TierLowerPrimary:
		switch day {
		case "ISNIN", "SELASA", "RABU":
			return timeNum >= endThirteen20-timeEpsilon
		case "KHAMIS":
			return timeNum >= endTwelve20-timeEpsilon
		case "JUMAAT":
			return timeNum >= endEleven20-timeEpsilon
		case "SABTU", "AHAD":
			return true
		}
	case domain.TierUpperPrimary:
		switch day {
		case "ISNIN":
			return false
		case "SELASA", "RABU", "KHAMIS":
			return timeNum >= endThirteen20-timeEpsilon
		case "JUMAAT":
			return timeNum >= endEleven20-timeEpsilon
		case "SABTU", "AHAD":
			return true
		}
	}

	return false
}

func fractionalHour(value string) (float64, bool) {
	hourPart, minutePart, found := strings.Cut(value, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return 0, false
	}
	return float64(hour) + float64(minute)/60, true
}
