package model

import (
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date layout used for input and output
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day or time zone
type Date struct {
	t time.Time
}

// NewDate returns the date for the given year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date '%s', expected YYYY-MM-DD: %w", s, err)
	}
	return Date{t: t}, nil
}

// String returns the date as YYYY-MM-DD
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// IsZero reports whether d is the zero date
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Weekday returns the day of the week of d
func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// IsWeekend reports whether d is a Saturday or a Sunday
func (d Date) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddDays returns d shifted by n calendar days
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Before reports whether d is strictly before other
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// MarshalText implements encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
