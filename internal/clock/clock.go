package clock

import (
	"fmt"
	"time"

	"chequemate/internal/daterange"
)

// Clock resolves "what civil date is today" in a named IANA timezone. The
// forecast engines never read the system clock themselves; settlement
// decisions depend on which side of a local midnight we are on, so the date
// must always be resolved through one of these.
type Clock interface {
	Now() time.Time
	TodayIn(tz string) (time.Time, error)
}

// SystemClock resolves dates from the wall clock.
type SystemClock struct{}

// NewSystemClock creates a Clock backed by the wall clock.
func NewSystemClock() Clock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (c SystemClock) TodayIn(tz string) (time.Time, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return daterange.Normalize(c.Now().In(loc)), nil
}

// FixedClock always reports the same instant. Test helper.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}

func (c FixedClock) TodayIn(tz string) (time.Time, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return daterange.Normalize(c.Instant.In(loc)), nil
}
