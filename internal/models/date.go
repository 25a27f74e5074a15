// ABOUTME: Calendar date type for health records.
// ABOUTME: ISO YYYY-MM-DD strings so chronological order equals string order.
package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. The underlying
// representation is an ISO YYYY-MM-DD string, which makes lexicographic
// comparison equivalent to chronological comparison.
type Date string

// Today returns the current local calendar date.
func Today() Date {
	return NewDate(time.Now())
}

// NewDate truncates a timestamp to its calendar date.
func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// ParseDate validates and returns a Date from an ISO string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return NewDate(t), nil
}

// Time returns the date at midnight UTC. Invalid dates yield the zero time.
func (d Date) Time() time.Time {
	t, _ := time.Parse(DateLayout, string(d))
	return t
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == ""
}

// Valid reports whether the date parses as YYYY-MM-DD.
func (d Date) Valid() bool {
	_, err := time.Parse(DateLayout, string(d))
	return err == nil
}

// AddDays returns the date shifted by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is chronologically before other.
func (d Date) Before(other Date) bool {
	return d < other
}

// After reports whether d is chronologically after other.
func (d Date) After(other Date) bool {
	return d > other
}

// DaysBetween returns the number of calendar days from a to b.
// The result is negative when b is before a.
func DaysBetween(a, b Date) int {
	return int(b.Time().Sub(a.Time()).Hours() / 24)
}

// String implements fmt.Stringer.
func (d Date) String() string {
	return string(d)
}
