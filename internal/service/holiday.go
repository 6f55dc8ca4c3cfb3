// Package service contains the business logic for the holiday planner.
// Services validate inputs, enforce business rules, and orchestrate repo
// and model calls. No SQL lives here; services depend on repo interfaces.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
	"github.com/pkordes/holiday-planner/backend/internal/repo"
)

// HolidayService implements business logic for Holiday operations.
type HolidayService struct {
	repo repo.HolidayRepo
}

// NewHolidayService constructs a HolidayService backed by the provided HolidayRepo.
func NewHolidayService(r repo.HolidayRepo) *HolidayService {
	return &HolidayService{repo: r}
}

// Create validates and persists a new holiday.
// Returns domain.ErrValidation if input violates business rules.
func (s *HolidayService) Create(ctx context.Context, h domain.Holiday) (domain.Holiday, error) {
	h.Name = strings.TrimSpace(h.Name)
	h.Destination = strings.TrimSpace(h.Destination)
	h.Description = strings.TrimSpace(h.Description)

	if err := validateHoliday(h); err != nil {
		return domain.Holiday{}, fmt.Errorf("service.HolidayService.Create: %w", err)
	}
	result, err := s.repo.Create(ctx, h)
	if err != nil {
		return domain.Holiday{}, fmt.Errorf("service.HolidayService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single holiday by ID.
// Returns domain.ErrNotFound if it does not exist.
func (s *HolidayService) GetByID(ctx context.Context, id uuid.UUID) (domain.Holiday, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Holiday{}, fmt.Errorf("service.HolidayService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of holidays and the total count.
func (s *HolidayService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Holiday, int64, error) {
	holidays, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.HolidayService.ListPaged: %w", err)
	}
	if holidays == nil {
		holidays = []domain.Holiday{}
	}
	return holidays, total, nil
}

// validateHoliday enforces the rules for a new holiday:
//   - name and destination must be non-empty
//   - adults and children must not be negative
//   - the end date must be after the start date
func validateHoliday(h domain.Holiday) error {
	if h.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if h.Destination == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if h.StartDate.IsZero() || h.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if h.Adults < 0 || h.Children < 0 {
		return fmt.Errorf("%w: adults and children must not be negative", domain.ErrValidation)
	}
	if !h.EndDate.After(h.StartDate) {
		return fmt.Errorf("%w: End date must be after start date", domain.ErrValidation)
	}
	return nil
}
