package handler

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
)

var dayDateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// PlanDayRequest is the body of POST /api/plan-day.
type PlanDayRequest struct {
	HolidayID   string `json:"holidayId"`
	DayNumber   int    `json:"dayNumber"`
	DayDate     string `json:"dayDate"`
	Preferences string `json:"preferences,omitempty"`
}

// PlanDayResponse is the 201 body of POST /api/plan-day.
// DayPlan echoes the validated model output, including its own sort_order.
type PlanDayResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	DayPlan domain.DayPlan `json:"dayPlan"`
}

// PlanDay handles POST /api/plan-day.
// Request validation happens before any collaborator is called.
func (s *Server) PlanDay(w http.ResponseWriter, r *http.Request) {
	var body PlanDayRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	req, msg := planRequestFromBody(body)
	if msg != "" {
		badRequest(w, msg)
		return
	}

	result, err := s.planner.Plan(r.Context(), req)
	if err != nil {
		writePlanError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, PlanDayResponse{
		Success: true,
		Message: fmt.Sprintf("Generated %d activities for day %d", len(result.Plan.Activities), req.DayNumber),
		DayPlan: result.Plan,
	})
}

// planRequestFromBody validates body and returns the request, or a
// non-empty 400 message.
func planRequestFromBody(body PlanDayRequest) (domain.DayPlanRequest, string) {
	var missing []string
	if body.HolidayID == "" {
		missing = append(missing, "holidayId")
	}
	if body.DayNumber == 0 {
		missing = append(missing, "dayNumber")
	}
	if body.DayDate == "" {
		missing = append(missing, "dayDate")
	}
	if len(missing) > 0 {
		return domain.DayPlanRequest{}, "Missing required fields: " + strings.Join(missing, ", ")
	}

	if !dayDateRE.MatchString(body.DayDate) {
		return domain.DayPlanRequest{}, "Invalid date format. Expected YYYY-MM-DD format."
	}
	date, err := time.Parse(domain.DateLayout, body.DayDate)
	if err != nil {
		return domain.DayPlanRequest{}, "Invalid date format. Expected YYYY-MM-DD format."
	}
	holidayID, err := uuid.Parse(body.HolidayID)
	if err != nil {
		return domain.DayPlanRequest{}, "Invalid holidayId format"
	}
	if body.DayNumber < 1 {
		return domain.DayPlanRequest{}, "dayNumber must be a positive integer"
	}

	return domain.DayPlanRequest{
		HolidayID:   holidayID,
		DayNumber:   body.DayNumber,
		DayDate:     date,
		Preferences: body.Preferences,
	}, ""
}

// writePlanError maps a DayPlanService error to its 500 body.
func writePlanError(w http.ResponseWriter, err error) {
	var invalid *domain.ResponseValidationError
	var partial *domain.PersistError
	var failed *domain.GenerationError
	switch {
	case errors.As(err, &invalid):
		writeError(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Invalid response format from AI",
			Details: invalid.Details,
		})
	case errors.Is(err, domain.ErrAIConfiguration):
		writeError(w, http.StatusInternalServerError, ErrorResponse{Error: "OpenAI API configuration error"})
	case errors.As(err, &partial):
		writeError(w, http.StatusInternalServerError, ErrorResponse{
			Error: fmt.Sprintf("Failed to save day plan: saved %d of %d activities", partial.Saved, partial.Total),
			Type:  "generation_error",
			Saved: &partial.Saved,
			Total: &partial.Total,
		})
	case errors.As(err, &failed):
		writeError(w, http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to generate day plan: " + failed.Reason,
			Type:  "generation_error",
		})
	default:
		writeError(w, http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to generate day plan",
			Type:  "generation_error",
		})
	}
}

func planDayMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	writeError(w, http.StatusMethodNotAllowed, ErrorResponse{
		Error: "Method not allowed. Use POST to generate a day plan.",
	})
}
