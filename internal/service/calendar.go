package service

import (
	"time"

	"github.com/partnerlink/partnerlink/internal/domain"
)

// Calendar is the single business calendar every "today" and every
// timestamp-to-day conversion goes through.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar creates a Calendar in the given location. A nil location means UTC.
func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{loc: loc, now: time.Now}
}

// WithClock returns a copy of c that reads the current time from now.
func (c *Calendar) WithClock(now func() time.Time) *Calendar {
	return &Calendar{loc: c.loc, now: now}
}

// Location returns the business time zone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Now returns the current instant.
func (c *Calendar) Now() time.Time {
	return c.now()
}

// Today returns the current calendar day in the business time zone.
func (c *Calendar) Today() domain.Date {
	return c.DateOf(c.now())
}

// DateOf returns the calendar day of t in the business time zone.
func (c *Calendar) DateOf(t time.Time) domain.Date {
	return domain.DateOf(t.In(c.loc))
}

// MonthRange returns the first and last day of a month.
func MonthRange(year int, month time.Month) (domain.Date, domain.Date) {
	first := domain.Date{Year: year, Month: month, Day: 1}
	last := domain.Date{Year: year, Month: month, Day: domain.DaysIn(year, month)}
	return first, last
}
