package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
)

func activityFixture(holidayID uuid.UUID, day int) domain.Activity {
	return domain.Activity{
		HolidayID:    holidayID,
		DayNumber:    day,
		ActivityDate: "2025-08-16",
		ActivityName: "Beach Walk",
		VenueName:    "Seminyak Beach",
		StartTime:    "14:30",
		Description:  "Sunset stroll",
	}
}

func TestActivityRepo_Create(t *testing.T) {
	holidays, activities := newTestRepos(t)
	parent := mustCreateHoliday(t, holidays)
	input := activityFixture(parent.ID, 2)

	got, err := activities.Create(context.Background(), input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID)
	assert.Equal(t, parent.ID, got.HolidayID)
	assert.Equal(t, 2, got.DayNumber)
	assert.Equal(t, "2025-08-16", got.ActivityDate)
	assert.Equal(t, "Beach Walk", got.ActivityName)
	assert.Equal(t, "Seminyak Beach", got.VenueName)
	assert.Equal(t, 1, got.SortOrder, "first activity of an empty day gets sort_order 1")
	assert.Nil(t, got.EstimatedCost)
}

// TestActivityRepo_Create_StartTimeRoundTrip verifies the literal HH:MM string
// survives storage without time-type coercion.
func TestActivityRepo_Create_StartTimeRoundTrip(t *testing.T) {
	holidays, activities := newTestRepos(t)
	ctx := context.Background()
	parent := mustCreateHoliday(t, holidays)

	created, err := activities.Create(ctx, activityFixture(parent.ID, 1))
	require.NoError(t, err)

	got, err := activities.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, "14:30", got.StartTime)
}

func TestActivityRepo_Create_SortOrderPerDay(t *testing.T) {
	holidays, activities := newTestRepos(t)
	ctx := context.Background()
	parent := mustCreateHoliday(t, holidays)

	var orders []int
	for range 3 {
		a, err := activities.Create(ctx, activityFixture(parent.ID, 1))
		require.NoError(t, err)
		orders = append(orders, a.SortOrder)
	}
	other, err := activities.Create(ctx, activityFixture(parent.ID, 2))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, orders)
	assert.Equal(t, 1, other.SortOrder, "a different day has its own sequence")
}

func TestActivityRepo_Create_IgnoresInputSortOrder(t *testing.T) {
	holidays, activities := newTestRepos(t)
	parent := mustCreateHoliday(t, holidays)
	input := activityFixture(parent.ID, 1)
	input.SortOrder = 7

	got, err := activities.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 1, got.SortOrder)
}

func TestActivityRepo_Create_WithCost(t *testing.T) {
	holidays, activities := newTestRepos(t)
	parent := mustCreateHoliday(t, holidays)
	input := activityFixture(parent.ID, 1)
	cost := 42.5
	input.EstimatedCost = &cost
	input.Currency = "EUR"

	got, err := activities.Create(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, got.EstimatedCost)
	assert.InDelta(t, 42.5, *got.EstimatedCost, 0.001)
	assert.Equal(t, "EUR", got.Currency)
}

func TestActivityRepo_Create_HolidayMissing(t *testing.T) {
	_, activities := newTestRepos(t)

	_, err := activities.Create(context.Background(), activityFixture(uuid.New(), 1))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityRepo_ListByHolidayID(t *testing.T) {
	holidays, activities := newTestRepos(t)
	ctx := context.Background()
	parent := mustCreateHoliday(t, holidays)
	other := mustCreateHoliday(t, holidays)

	_, err := activities.Create(ctx, activityFixture(parent.ID, 2))
	require.NoError(t, err)
	_, err = activities.Create(ctx, activityFixture(parent.ID, 1))
	require.NoError(t, err)
	_, err = activities.Create(ctx, activityFixture(other.ID, 1))
	require.NoError(t, err)

	got, err := activities.ListByHolidayID(ctx, parent.ID)

	require.NoError(t, err)
	require.Len(t, got, 2, "should return only activities for the given holiday")
	assert.Equal(t, 1, got[0].DayNumber, "ordered by day_number")
	assert.Equal(t, 2, got[1].DayNumber)
}

func TestActivityRepo_ListByHolidayID_Empty(t *testing.T) {
	holidays, activities := newTestRepos(t)
	parent := mustCreateHoliday(t, holidays)

	got, err := activities.ListByHolidayID(context.Background(), parent.ID)

	require.NoError(t, err)
	assert.NotNil(t, got, "should return empty slice, not nil")
	assert.Len(t, got, 0)
}

func TestActivityRepo_Delete(t *testing.T) {
	holidays, activities := newTestRepos(t)
	ctx := context.Background()
	parent := mustCreateHoliday(t, holidays)
	created, err := activities.Create(ctx, activityFixture(parent.ID, 1))
	require.NoError(t, err)

	require.NoError(t, activities.Delete(ctx, created.ID))

	_, err = activities.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
