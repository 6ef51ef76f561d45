package utils

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrDateRequired = errors.New("date is required")
	ErrDateFormat   = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Calendar turns wall-clock time into calendar dates for a fixed timezone.
// Dates are returned at midnight UTC so they compare as whole days.
type Calendar struct {
	location *time.Location
	now      func() time.Time
}

func NewCalendar(location *time.Location) *Calendar {
	if location == nil {
		location = time.UTC
	}
	return &Calendar{location: location, now: time.Now}
}

// WithClock swaps the time source, used by tests.
func (c *Calendar) WithClock(now func() time.Time) *Calendar {
	c.now = now
	return c
}

func (c *Calendar) Location() *time.Location {
	return c.location
}

func (c *Calendar) Today() time.Time {
	return DateOf(c.now().In(c.location))
}

// DateOrToday parses value, falling back to today when it is empty.
func (c *Calendar) DateOrToday(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return c.Today(), nil
	}
	return ParseDate(value)
}

// IsFuture reports whether date falls after today.
func (c *Calendar) IsFuture(date time.Time) bool {
	return DateOf(date).After(c.Today())
}

func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrDateRequired
	}

	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, ErrDateFormat
	}

	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
