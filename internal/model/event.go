package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Date is a naive calendar date. Timestamps built from it carry no timezone
// semantics; UTC is only used as a fixed reference.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, &InvalidInputError{Field: "date", Reason: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s)}
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

func (d Date) Time() time.Time { return d.t }
func (d Date) IsZero() bool    { return d.t.IsZero() }

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// Clock is a time of day in minutes since midnight, 00:00..23:59.
type Clock int

const minutesPerDay = 24 * 60

// NewClock panics on an out-of-range time; use ParseClock for user input.
func NewClock(hour, minute int) Clock {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		panic(fmt.Sprintf("model: invalid clock %02d:%02d", hour, minute))
	}
	return Clock(hour*60 + minute)
}

// ParseClock parses "HH:MM" on a 24h clock. Anything around the time other
// than surrounding whitespace is rejected.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, &InvalidInputError{Field: "time", Reason: fmt.Sprintf("invalid time %q, expected HH:MM", s)}
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) Duration() time.Duration { return time.Duration(c) * time.Minute }

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute()) }

func (c Clock) valid() bool { return c >= 0 && c < minutesPerDay }

// VoyageEvent is one timestamped entry of a port log (span-style logs).
type VoyageEvent struct {
	Location Location
	Date     Date
	Time     Clock
	Note     string
}

// Timestamp combines Date and Time into a single naive instant.
func (e VoyageEvent) Timestamp() time.Time {
	return e.Date.Time().Add(e.Time.Duration())
}

// IntervalRow is one from/to entry of a port log (interval-style logs).
// From and To share the row's date; To earlier than From means the interval
// crossed midnight.
type IntervalRow struct {
	Date Date
	From Clock
	To   Clock
	Note string
}

// PortLog holds the entries recorded for one location. A log carries either
// Events or Rows, depending on how the report variant captured it.
type PortLog struct {
	Location Location
	Events   []VoyageEvent
	Rows     []IntervalRow
}

func (l PortLog) IsEmpty() bool { return len(l.Events) == 0 && len(l.Rows) == 0 }

// Validate checks clock ranges; ordering is not checked.
func (l PortLog) Validate() error {
	for i, e := range l.Events {
		if !e.Time.valid() {
			return invalid(fmt.Sprintf("%s.events[%d].time", l.Location, i), "out of range (%d minutes)", int(e.Time))
		}
		if e.Date.IsZero() {
			return invalid(fmt.Sprintf("%s.events[%d].date", l.Location, i), "is required")
		}
	}
	for i, r := range l.Rows {
		if !r.From.valid() || !r.To.valid() {
			return invalid(fmt.Sprintf("%s.rows[%d]", l.Location, i), "from/to out of range")
		}
	}
	return nil
}
