// Package handler implements the HTTP handlers for the holiday planner API.
// All handlers are methods on Server. They are split into domain-specific
// files (health.go, holiday.go, activity.go, dayplan.go, itinerary.go) but
// share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
	"github.com/pkordes/holiday-planner/backend/internal/service"
	"github.com/pkordes/holiday-planner/backend/spec"
)

// HolidayServicer defines the business operations the holiday handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type HolidayServicer interface {
	Create(ctx context.Context, h domain.Holiday) (domain.Holiday, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Holiday, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Holiday, int64, error)
}

// ActivityServicer defines the operations on manually managed activities.
type ActivityServicer interface {
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
	ListByHolidayID(ctx context.Context, holidayID uuid.UUID) ([]domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DayPlanner generates and stores the activities for one day.
type DayPlanner interface {
	Plan(ctx context.Context, req domain.DayPlanRequest) (service.PlanResult, error)
}

// ItineraryExporter builds the flat day-by-day export of a holiday.
type ItineraryExporter interface {
	Itinerary(ctx context.Context, holidayID uuid.UUID) (domain.Itinerary, error)
}

// Server serves every API endpoint.
// Wire it in main.go via Routes.
type Server struct {
	holidays   HolidayServicer
	activities ActivityServicer
	planner    DayPlanner
	itinerary  ItineraryExporter
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil log falls back to slog.Default().
func NewServer(
	holidays HolidayServicer,
	activities ActivityServicer,
	planner DayPlanner,
	itinerary ItineraryExporter,
	log *slog.Logger,
) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{holidays: holidays, activities: activities, planner: planner, itinerary: itinerary, log: log}
}

// Routes returns a chi router with every endpoint registered.
// /metrics is mounted separately by main because it belongs to the
// metrics registry, not to the API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Post("/holidays", s.CreateHoliday)
		r.Get("/holidays", s.ListHolidays)
		r.Get("/holidays/{id}", s.GetHoliday)
		r.Get("/holidays/{id}/itinerary", s.GetItinerary)

		r.Post("/holiday-activities", s.CreateActivity)
		r.Get("/holiday-activities", s.ListActivities)
		r.Delete("/holiday-activities/{id}", s.DeleteActivity)

		r.Post("/plan-day", s.PlanDay)
		for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
			r.Method(m, "/plan-day", http.HandlerFunc(planDayMethodNotAllowed))
		}
	})
	return r
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
