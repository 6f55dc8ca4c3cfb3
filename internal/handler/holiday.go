package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
)

// CreateHolidayRequest is the body of POST /api/holidays.
// Pointer fields distinguish "absent" from a zero value.
type CreateHolidayRequest struct {
	Name        string              `json:"name"`
	Destination string              `json:"destination"`
	StartDate   *openapi_types.Date `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date"`
	Adults      *int                `json:"adults"`
	Children    *int                `json:"children"`
	Description *string             `json:"description,omitempty"`
}

// Holiday is the wire representation of a domain.Holiday.
type Holiday struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Adults      int                `json:"adults"`
	Children    int                `json:"children"`
	Description *string            `json:"description,omitempty"`
	DayCount    int                `json:"day_count"`
	DayDates    []string           `json:"day_dates"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CreateHolidayResponse is the 201 body of POST /api/holidays.
type CreateHolidayResponse struct {
	Message string  `json:"message"`
	Holiday Holiday `json:"holiday"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// HolidayList is the body of GET /api/holidays.
type HolidayList struct {
	Data       []Holiday  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CreateHoliday handles POST /api/holidays.
func (s *Server) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var body CreateHolidayRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}
	if body.Name == "" || body.Destination == "" || body.StartDate == nil || body.EndDate == nil || body.Adults == nil {
		badRequest(w, "Missing required fields")
		return
	}
	if body.Children == nil {
		badRequest(w, "Adults and children must be numbers")
		return
	}

	h := domain.Holiday{
		Name:        body.Name,
		Destination: body.Destination,
		StartDate:   body.StartDate.Time,
		EndDate:     body.EndDate.Time,
		Adults:      *body.Adults,
		Children:    *body.Children,
	}
	if body.Description != nil {
		h.Description = *body.Description
	}

	created, err := s.holidays.Create(r.Context(), h)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			badRequest(w, validationMessage(err))
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateHolidayResponse{
		Message: "Holiday created successfully",
		Holiday: holidayToResponse(created),
	})
}

// ListHolidays handles GET /api/holidays.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListHolidays(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "page", q, &page); err != nil {
		badRequest(w, "Invalid page parameter")
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		badRequest(w, "Invalid limit parameter")
		return
	}

	params := domain.NewPaginationParams(page, limit)
	holidays, total, err := s.holidays.ListPaged(r.Context(), params)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	data := make([]Holiday, len(holidays))
	for i, h := range holidays {
		data[i] = holidayToResponse(h)
	}
	writeJSON(w, http.StatusOK, HolidayList{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetHoliday handles GET /api/holidays/{id}.
func (s *Server) GetHoliday(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		badRequest(w, "Invalid holiday ID")
		return
	}

	h, err := s.holidays.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, ErrorResponse{Error: "Holiday not found"})
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, holidayToResponse(h))
}

// holidayToResponse converts a domain.Holiday into its wire type.
func holidayToResponse(h domain.Holiday) Holiday {
	resp := Holiday{
		ID:          h.ID,
		Name:        h.Name,
		Destination: h.Destination,
		StartDate:   openapi_types.Date{Time: h.StartDate},
		EndDate:     openapi_types.Date{Time: h.EndDate},
		Adults:      h.Adults,
		Children:    h.Children,
		DayCount:    h.DayCount(),
		DayDates:    h.DayDates(),
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
	if h.Description != "" {
		resp.Description = &h.Description
	}
	return resp
}
