package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
	"github.com/pkordes/holiday-planner/backend/internal/repo"
)

// clockPattern is the 24-hour HH:MM format shared by manual activities,
// the model output schema and the independent validator.
const clockPattern = `^([0-1][0-9]|2[0-3]):[0-5][0-9]$`

var (
	clockRE    = regexp.MustCompile(clockPattern)
	currencyRE = regexp.MustCompile(`^[A-Z]{3}$`)
)

// ActivityService implements business logic for manually managed activities.
type ActivityService struct {
	holidays   repo.HolidayRepo
	activities repo.ActivityRepo
	locks      *DayLocks
}

// NewActivityService constructs an ActivityService. locks must be the same
// table the DayPlanService uses so manual and generated inserts for a day
// are serialized together.
func NewActivityService(holidays repo.HolidayRepo, activities repo.ActivityRepo, locks *DayLocks) *ActivityService {
	return &ActivityService{holidays: holidays, activities: activities, locks: locks}
}

// Create validates the activity, verifies the parent holiday exists, and
// persists it with the next sort_order for its day.
// Returns domain.ErrValidation for invalid input and domain.ErrNotFound if
// the holiday does not exist.
func (s *ActivityService) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	a = trimActivity(a)
	if err := validateActivity(a); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if _, err := s.holidays.GetByID(ctx, a.HolidayID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	result, err := insertActivity(ctx, s.activities, s.locks, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// ListByHolidayID returns every activity of a holiday ordered by day and
// sort_order. Always returns a non-nil slice.
func (s *ActivityService) ListByHolidayID(ctx context.Context, holidayID uuid.UUID) ([]domain.Activity, error) {
	activities, err := s.activities.ListByHolidayID(ctx, holidayID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByHolidayID: %w", err)
	}
	if activities == nil {
		return []domain.Activity{}, nil
	}
	return activities, nil
}

// Delete removes an activity by ID.
// Returns domain.ErrNotFound if it does not exist.
func (s *ActivityService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

func trimActivity(a domain.Activity) domain.Activity {
	a.ActivityName = strings.TrimSpace(a.ActivityName)
	a.VenueName = strings.TrimSpace(a.VenueName)
	a.StartTime = strings.TrimSpace(a.StartTime)
	a.ActivityDate = strings.TrimSpace(a.ActivityDate)
	a.Description = strings.TrimSpace(a.Description)
	a.ActivityType = strings.TrimSpace(a.ActivityType)
	a.Address = strings.TrimSpace(a.Address)
	a.EndTime = strings.TrimSpace(a.EndTime)
	a.Currency = strings.ToUpper(strings.TrimSpace(a.Currency))
	a.Notes = strings.TrimSpace(a.Notes)
	return a
}

// validateActivity checks required fields in the order the client reports
// them, then formats.
func validateActivity(a domain.Activity) error {
	switch {
	case a.HolidayID == uuid.Nil:
		return fmt.Errorf("%w: Holiday ID is required", domain.ErrValidation)
	case a.ActivityName == "":
		return fmt.Errorf("%w: Activity name is required", domain.ErrValidation)
	case a.VenueName == "":
		return fmt.Errorf("%w: Venue/location name is required", domain.ErrValidation)
	case a.StartTime == "":
		return fmt.Errorf("%w: Start time is required", domain.ErrValidation)
	case a.ActivityDate == "":
		return fmt.Errorf("%w: Activity date is required", domain.ErrValidation)
	case a.DayNumber < 1:
		return fmt.Errorf("%w: Day number is required", domain.ErrValidation)
	}
	if !clockRE.MatchString(a.StartTime) {
		return fmt.Errorf("%w: start_time must be a 24-hour HH:MM time", domain.ErrValidation)
	}
	if a.EndTime != "" && !clockRE.MatchString(a.EndTime) {
		return fmt.Errorf("%w: end_time must be a 24-hour HH:MM time", domain.ErrValidation)
	}
	if _, err := time.Parse(domain.DateLayout, a.ActivityDate); err != nil {
		return fmt.Errorf("%w: activity_date must be YYYY-MM-DD", domain.ErrValidation)
	}
	if a.EstimatedCost != nil && *a.EstimatedCost < 0 {
		return fmt.Errorf("%w: estimated_cost must not be negative", domain.ErrValidation)
	}
	if a.Currency != "" && !currencyRE.MatchString(a.Currency) {
		return fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrValidation)
	}
	return nil
}
