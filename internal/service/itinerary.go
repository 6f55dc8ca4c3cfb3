package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
	"github.com/pkordes/holiday-planner/backend/internal/repo"
)

// ItineraryService assembles the flat day-by-day export of one holiday.
type ItineraryService struct {
	holidays   repo.HolidayRepo
	activities repo.ActivityRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repos.
func NewItineraryService(holidays repo.HolidayRepo, activities repo.ActivityRepo) *ItineraryService {
	return &ItineraryService{holidays: holidays, activities: activities}
}

// Itinerary returns the holiday and one row per activity in day and sort
// order. A holiday without activities yields an empty, non-nil Rows.
// Returns domain.ErrNotFound if the holiday does not exist.
func (s *ItineraryService) Itinerary(ctx context.Context, holidayID uuid.UUID) (domain.Itinerary, error) {
	h, err := s.holidays.GetByID(ctx, holidayID)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Itinerary: %w", err)
	}
	activities, err := s.activities.ListByHolidayID(ctx, holidayID)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Itinerary: %w", err)
	}

	rows := make([]domain.ItineraryRow, len(activities))
	for i, a := range activities {
		rows[i] = domain.ItineraryRow{
			HolidayName:   h.Name,
			Destination:   h.Destination,
			DayNumber:     a.DayNumber,
			ActivityDate:  a.ActivityDate,
			SortOrder:     a.SortOrder,
			StartTime:     a.StartTime,
			EndTime:       a.EndTime,
			ActivityName:  a.ActivityName,
			VenueName:     a.VenueName,
			Address:       a.Address,
			EstimatedCost: a.EstimatedCost,
			Currency:      a.Currency,
			Notes:         a.Notes,
		}
	}
	return domain.Itinerary{Holiday: h, Rows: rows}, nil
}
