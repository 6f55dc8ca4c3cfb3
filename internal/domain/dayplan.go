package domain

import (
	"time"

	"github.com/google/uuid"
)

// DayPlanRequest asks for activities to be generated for one day of a holiday.
// It lives only for the duration of a single generation call.
type DayPlanRequest struct {
	HolidayID   uuid.UUID
	DayNumber   int
	DayDate     time.Time
	Preferences string
}

// PlannedActivity is one candidate activity returned by the model.
// SortOrder is the model's intended position within the day; the persisted
// order is recomputed on insert.
type PlannedActivity struct {
	ActivityName string  `json:"activity_name" validate:"required"`
	VenueName    string  `json:"venue_name" validate:"required"`
	StartTime    string  `json:"start_time" validate:"required,clock24"`
	Description  *string `json:"description,omitempty"`
	SortOrder    int     `json:"sort_order" validate:"min=1"`
}

// DayPlan is the structured result of one generation call.
type DayPlan struct {
	Activities []PlannedActivity `json:"activities" validate:"required,min=1,max=8,dive"`
}

// GenerationParams is everything the model-invocation boundary needs for a
// single schema-constrained completion.
type GenerationParams struct {
	SystemPrompt string
	UserPrompt   string
	SchemaName   string
	Schema       map[string]any
	Temperature  float64
	MaxTokens    int
}

// TripContext is the holiday metadata embedded in the prompt. Empty fields
// mean the holiday could not be loaded; the Display methods substitute
// generic placeholders.
type TripContext struct {
	Name        string
	Destination string
}

// DisplayName returns the holiday name or "Holiday".
func (c TripContext) DisplayName() string {
	if c.Name == "" {
		return "Holiday"
	}
	return c.Name
}

// DisplayDestination returns the destination or "destination".
func (c TripContext) DisplayDestination() string {
	if c.Destination == "" {
		return "destination"
	}
	return c.Destination
}

// Exclusions holds the activity and venue names already used on other days.
// They are passed to the model as a soft constraint only.
type Exclusions struct {
	ActivityNames []string
	VenueNames    []string
}

// Empty reports whether there is nothing to exclude.
func (e Exclusions) Empty() bool {
	return len(e.ActivityNames) == 0
}
