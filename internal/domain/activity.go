package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a single scheduled item within one day of a holiday.
//
// StartTime and EndTime are kept as the literal 24-hour "HH:MM" strings
// they were created with. SortOrder is assigned by the repo on insert and
// is 1-based within a (HolidayID, DayNumber) pair.
type Activity struct {
	ID            uuid.UUID
	HolidayID     uuid.UUID
	DayNumber     int
	ActivityDate  string
	ActivityName  string
	VenueName     string
	StartTime     string
	Description   string
	ActivityType  string
	Address       string
	EndTime       string
	EstimatedCost *float64
	Currency      string
	Notes         string
	SortOrder     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DayKey identifies one day of one holiday.
type DayKey struct {
	HolidayID uuid.UUID
	DayNumber int
}

// Key returns the DayKey the activity belongs to.
func (a Activity) Key() DayKey {
	return DayKey{HolidayID: a.HolidayID, DayNumber: a.DayNumber}
}
