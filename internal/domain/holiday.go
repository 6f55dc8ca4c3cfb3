// Package domain contains the core data types for the holiday planner.
// This package has no I/O and is imported by every other internal package
// (repo, service, llm, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date wire format used for holiday and
// activity dates.
const DateLayout = "2006-01-02"

// Holiday is a user's planned trip. It is the top-level aggregate;
// activities belong to a holiday and are grouped by day.
type Holiday struct {
	ID          uuid.UUID
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Adults      int
	Children    int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DayCount returns the number of calendar days the holiday spans,
// counting both the first and the last day.
func (h Holiday) DayCount() int {
	if h.EndDate.Before(h.StartDate) {
		return 0
	}
	return int(h.EndDate.Sub(h.StartDate).Hours()/24) + 1
}

// DayDates returns the "2006-01-02" date of every day in the holiday.
// Index i holds the date of day number i+1.
func (h Holiday) DayDates() []string {
	n := h.DayCount()
	dates := make([]string, n)
	for i := range n {
		dates[i] = h.StartDate.AddDate(0, 0, i).Format(DateLayout)
	}
	return dates
}
