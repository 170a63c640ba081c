package daterange

import (
	"errors"
	"time"
)

// Quick range kinds accepted by Quick.
const (
	QuickLastWeek  = "lastWeek"
	QuickLastMonth = "lastMonth"
	QuickNextWeek  = "nextWeek"
	QuickNextMonth = "nextMonth"
	QuickThisMonth = "thisMonth"
)

// KeyLayout is the format used for date-keyed lookups.
const KeyLayout = "2006-01-02"

var (
	ErrInvalidRange      = errors.New("start date must not be after end date")
	ErrNegativeBuffer    = errors.New("buffer days must not be negative")
	ErrUnknownQuickRange = errors.New("unknown quick range kind")
)

// Range is an inclusive window of calendar dates.
type Range struct {
	Start time.Time
	End   time.Time
}

// Normalize strips the time-of-day and timezone from t, leaving a pure
// calendar date at UTC midnight. All range arithmetic operates on
// normalized dates.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Key returns the lookup key for a calendar date.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseKey parses a date key back into a normalized calendar date.
func ParseKey(key string) (time.Time, error) {
	return time.Parse(KeyLayout, key)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return Normalize(a).Equal(Normalize(b))
}

// New builds a validated range from two calendar dates.
func New(start, end time.Time) (Range, error) {
	r := Range{Start: Normalize(start), End: Normalize(end)}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Validate checks the range ordering invariant.
func (r Range) Validate() error {
	if r.Start.After(r.End) {
		return ErrInvalidRange
	}
	return nil
}

// Days returns the number of calendar dates the range spans, inclusive.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Contains reports whether the date falls inside the range, inclusive.
func (r Range) Contains(date time.Time) bool {
	d := Normalize(date)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Buffered expands [start, end] outward by the given day counts.
func Buffered(start, end time.Time, leadingDays, trailingDays int) (Range, error) {
	if leadingDays < 0 || trailingDays < 0 {
		return Range{}, ErrNegativeBuffer
	}

	r, err := New(start, end)
	if err != nil {
		return Range{}, err
	}

	r.Start = r.Start.AddDate(0, 0, -leadingDays)
	r.End = r.End.AddDate(0, 0, trailingDays)
	return r, nil
}

// Month returns the calendar month containing ref, expanded by the given
// buffers. Month lengths and year rollover follow civil-calendar rules.
func Month(ref time.Time, leadingDays, trailingDays int) (Range, error) {
	d := Normalize(ref)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return Buffered(first, last, leadingDays, trailingDays)
}

// Quick returns a named relative window computed against a caller-supplied
// "today". The engine never consults its own clock, so results are
// deterministic for a given input.
func Quick(kind string, today time.Time) (Range, error) {
	d := Normalize(today)

	switch kind {
	case QuickLastWeek:
		return New(d.AddDate(0, 0, -7), d)
	case QuickLastMonth:
		return New(d.AddDate(0, 0, -30), d)
	case QuickNextWeek:
		return New(d, d.AddDate(0, 0, 7))
	case QuickNextMonth:
		return New(d, d.AddDate(0, 0, 30))
	case QuickThisMonth:
		return Month(d, 0, 0)
	default:
		return Range{}, ErrUnknownQuickRange
	}
}

// IsValidQuickKind checks if the quick range kind is recognized.
func IsValidQuickKind(kind string) bool {
	switch kind {
	case QuickLastWeek, QuickLastMonth, QuickNextWeek, QuickNextMonth, QuickThisMonth:
		return true
	default:
		return false
	}
}
