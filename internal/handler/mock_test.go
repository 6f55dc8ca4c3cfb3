package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
	"github.com/pkordes/holiday-planner/backend/internal/handler"
	"github.com/pkordes/holiday-planner/backend/internal/service"
)

// mockHolidayServicer is a test double for handler.HolidayServicer.
// Set only the method fields your test needs.
type mockHolidayServicer struct {
	create    func(ctx context.Context, h domain.Holiday) (domain.Holiday, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Holiday, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Holiday, int64, error)
}

func (m *mockHolidayServicer) Create(ctx context.Context, h domain.Holiday) (domain.Holiday, error) {
	return m.create(ctx, h)
}
func (m *mockHolidayServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Holiday, error) {
	return m.getByID(ctx, id)
}
func (m *mockHolidayServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Holiday, int64, error) {
	return m.listPaged(ctx, p)
}

// mockActivityServicer is a test double for handler.ActivityServicer.
type mockActivityServicer struct {
	create          func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	listByHolidayID func(ctx context.Context, holidayID uuid.UUID) ([]domain.Activity, error)
	delete          func(ctx context.Context, id uuid.UUID) error
}

func (m *mockActivityServicer) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityServicer) ListByHolidayID(ctx context.Context, holidayID uuid.UUID) ([]domain.Activity, error) {
	return m.listByHolidayID(ctx, holidayID)
}
func (m *mockActivityServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// mockDayPlanner is a test double for handler.DayPlanner.
type mockDayPlanner struct {
	plan func(ctx context.Context, req domain.DayPlanRequest) (service.PlanResult, error)
}

func (m *mockDayPlanner) Plan(ctx context.Context, req domain.DayPlanRequest) (service.PlanResult, error) {
	return m.plan(ctx, req)
}

// mockItineraryExporter is a test double for handler.ItineraryExporter.
type mockItineraryExporter struct {
	itinerary func(ctx context.Context, holidayID uuid.UUID) (domain.Itinerary, error)
}

func (m *mockItineraryExporter) Itinerary(ctx context.Context, holidayID uuid.UUID) (domain.Itinerary, error) {
	return m.itinerary(ctx, holidayID)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.HolidayServicer   = (*mockHolidayServicer)(nil)
	_ handler.ActivityServicer  = (*mockActivityServicer)(nil)
	_ handler.DayPlanner        = (*mockDayPlanner)(nil)
	_ handler.ItineraryExporter = (*mockItineraryExporter)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into its chi router.
// This mirrors exactly how main.go wires it in production.
func newHTTPHandler(h handler.HolidayServicer, a handler.ActivityServicer, p handler.DayPlanner) http.Handler {
	return handler.NewServer(h, a, p, nil, nil).Routes()
}

// newItineraryHandler wires a Server whose only dependency is the itinerary exporter.
func newItineraryHandler(e handler.ItineraryExporter) http.Handler {
	return handler.NewServer(nil, nil, nil, e, nil).Routes()
}

func holidayFixture() domain.Holiday {
	return domain.Holiday{
		ID:          uuid.New(),
		Name:        "Bali Escape",
		Destination: "Bali, Indonesia",
		StartDate:   time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC),
		Adults:      2,
		Children:    1,
		Description: "family trip",
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func activityFixture(holidayID uuid.UUID) domain.Activity {
	cost := 25.5
	return domain.Activity{
		ID:            uuid.New(),
		HolidayID:     holidayID,
		DayNumber:     1,
		ActivityDate:  "2025-08-15",
		ActivityName:  "Beach Walk",
		VenueName:     "Seminyak Beach",
		StartTime:     "14:30",
		EstimatedCost: &cost,
		Currency:      "USD",
		SortOrder:     1,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// do sends one request through h and returns the recorder.
func do(h http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func bytesOf(s string) *bytes.Buffer {
	return bytes.NewBufferString(s)
}
