package timeutil

import (
	"errors"
	"time"
)

// ErrInvalidUnit is returned when the rounding unit is outside [1, 60].
var ErrInvalidUnit = errors.New("rounding unit must be between 1 and 60 minutes")

// CeilToUnit rounds t up to the next multiple of unitMinutes within the hour,
// discarding seconds and sub-seconds. A timestamp already on a boundary (with
// zero seconds) is returned unchanged. When the ceiling reaches 60 the hour
// carries over through normal calendar arithmetic.
func CeilToUnit(t time.Time, unitMinutes int) (time.Time, error) {
	if unitMinutes < 1 || unitMinutes > 60 {
		return time.Time{}, ErrInvalidUnit
	}

	truncated := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())

	hasRemainder := t.Second() > 0 || t.Nanosecond() > 0
	minute := truncated.Minute()
	rounded := (minute / unitMinutes) * unitMinutes
	if rounded < minute || (hasRemainder && rounded == minute) {
		rounded += unitMinutes
	}

	// time.Date normalizes minute 60 and beyond into the next hour.
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), rounded, 0, 0, t.Location()), nil
}
