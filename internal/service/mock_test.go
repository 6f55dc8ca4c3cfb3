package service_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
	"github.com/pkordes/holiday-planner/backend/internal/repo"
	"github.com/pkordes/holiday-planner/backend/internal/service"
)

// mockHolidayRepo is a hand-written test double for repo.HolidayRepo.
// Each method is a function field; set only the ones your test needs.
type mockHolidayRepo struct {
	create    func(ctx context.Context, h domain.Holiday) (domain.Holiday, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Holiday, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Holiday, int64, error)
}

func (m *mockHolidayRepo) Create(ctx context.Context, h domain.Holiday) (domain.Holiday, error) {
	return m.create(ctx, h)
}
func (m *mockHolidayRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Holiday, error) {
	return m.getByID(ctx, id)
}
func (m *mockHolidayRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Holiday, int64, error) {
	return m.listPaged(ctx, p)
}

// compile-time check: mockHolidayRepo must satisfy repo.HolidayRepo.
var _ repo.HolidayRepo = (*mockHolidayRepo)(nil)

// holidayRepoReturning answers GetByID with h for any ID.
func holidayRepoReturning(h domain.Holiday) *mockHolidayRepo {
	return &mockHolidayRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Holiday, error) { return h, nil },
	}
}

// memActivityRepo is an in-memory repo.ActivityRepo that assigns
// sort_order as max+1 per (holiday, day), like the SQL implementation.
// failOn makes the n-th Create call (1-based) return failErr.
// listErr makes ListByHolidayID fail.
type memActivityRepo struct {
	mu      sync.Mutex
	rows    []domain.Activity
	creates int
	failOn  int
	failErr error
	listErr error
}

func (m *memActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Activity{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.creates++
	if m.failOn > 0 && m.creates == m.failOn {
		return domain.Activity{}, m.failErr
	}

	maxOrder := 0
	for _, r := range m.rows {
		if r.Key() == a.Key() && r.SortOrder > maxOrder {
			maxOrder = r.SortOrder
		}
	}
	now := time.Now().UTC()
	a.ID = uuid.New()
	a.SortOrder = maxOrder + 1
	a.CreatedAt, a.UpdatedAt = now, now
	m.rows = append(m.rows, a)
	return a, nil
}

func (m *memActivityRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Activity{}, domain.ErrNotFound
}

func (m *memActivityRepo) ListByHolidayID(_ context.Context, holidayID uuid.UUID) ([]domain.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []domain.Activity{}
	for _, r := range m.rows {
		if r.HolidayID == holidayID {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Activity) int {
		if a.DayNumber != b.DayNumber {
			return a.DayNumber - b.DayNumber
		}
		return a.SortOrder - b.SortOrder
	})
	return out, nil
}

func (m *memActivityRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.ID == id {
			m.rows = slices.Delete(m.rows, i, i+1)
			return nil
		}
	}
	return domain.ErrNotFound
}

// day returns the stored rows of one day in insertion order.
func (m *memActivityRepo) day(holidayID uuid.UUID, dayNumber int) []domain.Activity {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Activity
	for _, r := range m.rows {
		if r.HolidayID == holidayID && r.DayNumber == dayNumber {
			out = append(out, r)
		}
	}
	return out
}

var _ repo.ActivityRepo = (*memActivityRepo)(nil)

// fakeGenerator returns raw (or err) and records every call.
// onCall, when set, runs before the result is returned.
type fakeGenerator struct {
	mu     sync.Mutex
	raw    []byte
	err    error
	calls  []domain.GenerationParams
	onCall func()
}

func (g *fakeGenerator) Generate(_ context.Context, p domain.GenerationParams) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, p)
	if g.onCall != nil {
		g.onCall()
	}
	if g.err != nil {
		return nil, g.err
	}
	return g.raw, nil
}

var _ service.Generator = (*fakeGenerator)(nil)

type planObservation struct {
	outcome    string
	activities int
}

// fakeRecorder collects ObservePlan calls.
type fakeRecorder struct {
	got []planObservation
}

func (r *fakeRecorder) ObservePlan(outcome string, activities int) {
	r.got = append(r.got, planObservation{outcome: outcome, activities: activities})
}

var _ service.PlanRecorder = (*fakeRecorder)(nil)

var errBoom = errors.New("boom")
