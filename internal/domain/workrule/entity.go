package workrule

import "time"

// At builds a time-of-day value. The date part is a fixed anchor and carries
// no meaning; only Hour and Minute are read.
func At(hour, minute int) time.Time {
	return time.Date(2000, time.January, 1, hour, minute, 0, 0, time.UTC)
}

// Template is a work-time template: standard start/end of the working day
// plus an optional break. Start/end values are times of day; an end that is
// not after its start is treated as belonging to the next day (overnight
// shifts and breaks that cross midnight).
type Template struct {
	StandardStart time.Time
	StandardEnd   time.Time
	BreakStart    *time.Time
	BreakEnd      *time.Time
}

// minutesOfDay collapses a time-of-day to minutes since midnight.
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// spanMinutes returns the length of [from, to) in minutes, adding a day when
// to is not after from.
func spanMinutes(from, to time.Time) int {
	span := minutesOfDay(to) - minutesOfDay(from)
	if span <= 0 {
		span += 24 * 60
	}
	return span
}

// SpansMidnight reports whether the standard working interval crosses midnight.
func (t Template) SpansMidnight() bool {
	return minutesOfDay(t.StandardEnd) <= minutesOfDay(t.StandardStart)
}

// BreakDuration returns the length of the break, or zero when none is set.
func (t Template) BreakDuration() time.Duration {
	if t.BreakStart == nil || t.BreakEnd == nil {
		return 0
	}
	return time.Duration(spanMinutes(*t.BreakStart, *t.BreakEnd)) * time.Minute
}

// StandardWorkDuration returns the scheduled working time net of break.
func (t Template) StandardWorkDuration() time.Duration {
	standard := time.Duration(spanMinutes(t.StandardStart, t.StandardEnd)) * time.Minute
	return standard - t.BreakDuration()
}

// Workplace is a geofenced work location. RadiusMeters may be zero when the
// rule carries coordinates without an explicit tolerance.
type Workplace struct {
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters int
}

// Rule binds a template, and optionally a workplace, to a user. A Rule with
// no membership interval acts as the user's default fallback.
type Rule struct {
	ID        string
	UserID    string
	Name      string
	Template  Template
	Workplace *Workplace
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Assignment scopes a rule to a membership interval. Both ends are inclusive.
type Assignment struct {
	Rule
	StartDate time.Time
	EndDate   time.Time
}

// Covers reports whether the work date falls inside the membership interval.
func (a Assignment) Covers(d time.Time) bool {
	return !d.Before(a.StartDate) && !d.After(a.EndDate)
}

// UserSetting holds the per-user report configuration.
type UserSetting struct {
	UserID              string
	ClosingDay          int
	RoundingUnitMinutes int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
