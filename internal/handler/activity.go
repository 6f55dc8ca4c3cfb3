package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	"github.com/samber/lo"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
)

// CreateActivityRequest is the body of POST /api/holiday-activities.
type CreateActivityRequest struct {
	HolidayID     string   `json:"holiday_id"`
	DayNumber     int      `json:"day_number"`
	ActivityDate  string   `json:"activity_date"`
	ActivityName  string   `json:"activity_name"`
	VenueName     string   `json:"venue_name"`
	StartTime     string   `json:"start_time"`
	Description   string   `json:"description,omitempty"`
	ActivityType  string   `json:"activity_type,omitempty"`
	Address       string   `json:"address,omitempty"`
	EndTime       string   `json:"end_time,omitempty"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// Activity is the wire representation of a domain.Activity.
// Optional text fields are omitted when empty.
type Activity struct {
	ID            uuid.UUID `json:"id"`
	HolidayID     uuid.UUID `json:"holiday_id"`
	DayNumber     int       `json:"day_number"`
	ActivityDate  string    `json:"activity_date"`
	ActivityName  string    `json:"activity_name"`
	VenueName     string    `json:"venue_name"`
	StartTime     string    `json:"start_time"`
	Description   *string   `json:"description,omitempty"`
	ActivityType  *string   `json:"activity_type,omitempty"`
	Address       *string   `json:"address,omitempty"`
	EndTime       *string   `json:"end_time,omitempty"`
	EstimatedCost *float64  `json:"estimated_cost,omitempty"`
	Currency      *string   `json:"currency,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateActivityResponse is the 201 body of POST /api/holiday-activities.
type CreateActivityResponse struct {
	Message  string   `json:"message"`
	Activity Activity `json:"activity"`
}

// ActivityList is the body of GET /api/holiday-activities.
type ActivityList struct {
	Activities []Activity `json:"activities"`
}

// MessageResponse is a body carrying only a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateActivity handles POST /api/holiday-activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var body CreateActivityRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	// An absent holiday_id keeps uuid.Nil so the service reports it first.
	var holidayID uuid.UUID
	if body.HolidayID != "" {
		id, err := uuid.Parse(body.HolidayID)
		if err != nil {
			badRequest(w, "Invalid holiday_id format")
			return
		}
		holidayID = id
	}

	created, err := s.activities.Create(r.Context(), domain.Activity{
		HolidayID:     holidayID,
		DayNumber:     body.DayNumber,
		ActivityDate:  body.ActivityDate,
		ActivityName:  body.ActivityName,
		VenueName:     body.VenueName,
		StartTime:     body.StartTime,
		Description:   body.Description,
		ActivityType:  body.ActivityType,
		Address:       body.Address,
		EndTime:       body.EndTime,
		EstimatedCost: body.EstimatedCost,
		Currency:      body.Currency,
		Notes:         body.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			badRequest(w, validationMessage(err))
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, ErrorResponse{Error: "Holiday not found"})
		default:
			s.internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, CreateActivityResponse{
		Message:  "Activity created successfully",
		Activity: activityToResponse(created),
	})
}

// ListActivities handles GET /api/holiday-activities?holiday_id=.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	var raw string
	if err := runtime.BindQueryParameter("form", true, false, "holiday_id", r.URL.Query(), &raw); err != nil || raw == "" {
		badRequest(w, "Holiday ID is required")
		return
	}
	holidayID, err := uuid.Parse(raw)
	if err != nil {
		badRequest(w, "Invalid holiday_id format")
		return
	}

	activities, err := s.activities.ListByHolidayID(r.Context(), holidayID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	out := make([]Activity, len(activities))
	for i, a := range activities {
		out[i] = activityToResponse(a)
	}
	writeJSON(w, http.StatusOK, ActivityList{Activities: out})
}

// DeleteActivity handles DELETE /api/holiday-activities/{id}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		badRequest(w, "Invalid activity ID")
		return
	}

	if err := s.activities.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, ErrorResponse{Error: "Activity not found"})
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Activity deleted successfully"})
}

// activityToResponse converts a domain.Activity into its wire type.
func activityToResponse(a domain.Activity) Activity {
	return Activity{
		ID:            a.ID,
		HolidayID:     a.HolidayID,
		DayNumber:     a.DayNumber,
		ActivityDate:  a.ActivityDate,
		ActivityName:  a.ActivityName,
		VenueName:     a.VenueName,
		StartTime:     a.StartTime,
		Description:   lo.EmptyableToPtr(a.Description),
		ActivityType:  lo.EmptyableToPtr(a.ActivityType),
		Address:       lo.EmptyableToPtr(a.Address),
		EndTime:       lo.EmptyableToPtr(a.EndTime),
		EstimatedCost: a.EstimatedCost,
		Currency:      lo.EmptyableToPtr(a.Currency),
		Notes:         lo.EmptyableToPtr(a.Notes),
		SortOrder:     a.SortOrder,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
