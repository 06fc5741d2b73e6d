package workrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTemplate_DayShift(t *testing.T) {
	breakStart := At(12, 0)
	breakEnd := At(13, 0)
	tmpl := Template{
		StandardStart: At(9, 0),
		StandardEnd:   At(18, 0),
		BreakStart:    &breakStart,
		BreakEnd:      &breakEnd,
	}

	assert.False(t, tmpl.SpansMidnight())
	assert.Equal(t, time.Hour, tmpl.BreakDuration())
	assert.Equal(t, 8*time.Hour, tmpl.StandardWorkDuration())
}

func TestTemplate_NightShiftCrossesMidnight(t *testing.T) {
	// 22:00-06:00: the end is before the start, so the working interval
	// continues into the next day.
	tmpl := Template{
		StandardStart: At(22, 0),
		StandardEnd:   At(6, 0),
	}

	assert.True(t, tmpl.SpansMidnight())
	assert.Equal(t, 8*time.Hour, tmpl.StandardWorkDuration())
}

func TestTemplate_EndEqualToStartMeansFullDay(t *testing.T) {
	tmpl := Template{
		StandardStart: At(8, 0),
		StandardEnd:   At(8, 0),
	}

	assert.True(t, tmpl.SpansMidnight())
	assert.Equal(t, 24*time.Hour, tmpl.StandardWorkDuration())
}

func TestTemplate_BreakCrossingMidnight(t *testing.T) {
	breakStart := At(23, 30)
	breakEnd := At(0, 30)
	tmpl := Template{
		StandardStart: At(20, 0),
		StandardEnd:   At(5, 0),
		BreakStart:    &breakStart,
		BreakEnd:      &breakEnd,
	}

	assert.Equal(t, time.Hour, tmpl.BreakDuration())
	// 9h span minus the 1h over-midnight break.
	assert.Equal(t, 8*time.Hour, tmpl.StandardWorkDuration())
}

func TestTemplate_NoBreakConfigured(t *testing.T) {
	tmpl := Template{
		StandardStart: At(9, 0),
		StandardEnd:   At(17, 0),
	}

	assert.Equal(t, time.Duration(0), tmpl.BreakDuration())
	assert.Equal(t, 8*time.Hour, tmpl.StandardWorkDuration())
}
