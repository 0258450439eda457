package stamp

import (
	"fmt"
	"time"
)

// Fixed string layouts for the textual shapes. Deterministic and parseable;
// ParseDate, ParseTimeOfDay, and ParseDateTime invert them exactly.
const (
	layoutDate     = "2006-01-02"
	layoutTime     = "15:04:05"
	layoutDateTime = "2006-01-02T15:04:05Z"
)

// Date is a calendar date without a time-of-day component. Generated code
// uses composite literals of this type for the structured date shape.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// String renders the date in yyyy-MM-dd form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// TimeOfDay is a wall-clock time without a date component. Generated code
// uses composite literals of this type for the structured time shape.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// String renders the time in hh:mm:ss form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// ParseDate parses a yyyy-MM-dd string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

// ParseTimeOfDay parses an hh:mm:ss string into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(layoutTime, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	h, m, sec := t.Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: sec}, nil
}

// ParseDateTime parses a yyyy-MM-ddThh:mm:ssZ string into an Instant.
func ParseDateTime(s string) (Instant, error) {
	t, err := time.Parse(layoutDateTime, s)
	if err != nil {
		return Instant{}, fmt.Errorf("parse datetime %q: %w", s, err)
	}
	return Instant{t: t.UTC()}, nil
}

// FromTime wraps an existing moment as an Instant, normalized to UTC at
// whole-second granularity.
func FromTime(t time.Time) Instant {
	return Instant{t: t.UTC().Truncate(time.Second)}
}

// FromUnix converts an epoch offset in seconds back into an Instant.
func FromUnix(sec int64) Instant {
	return Instant{t: time.Unix(sec, 0).UTC()}
}
