package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
	"github.com/pkordes/holiday-planner/backend/internal/repo"
)

// Generator is the model-invocation boundary. Generate returns the raw JSON
// the model produced under p.Schema; the caller validates it.
type Generator interface {
	Generate(ctx context.Context, p domain.GenerationParams) ([]byte, error)
}

// PlanRecorder receives the outcome of every Plan call. Outcomes are the
// Outcome* constants.
type PlanRecorder interface {
	ObservePlan(outcome string, activities int)
}

// Plan outcomes reported to the PlanRecorder.
const (
	OutcomeSuccess          = "success"
	OutcomeGenerationError  = "generation_error"
	OutcomeConfigError      = "config_error"
	OutcomeInvalidResponse  = "invalid_response"
	OutcomePersistenceError = "persistence_error"
)

// PlanResult is a validated day plan and the rows saved from it.
// Plan keeps the model's own sort_order; Saved carries the stored one.
type PlanResult struct {
	Plan  domain.DayPlan
	Saved []domain.Activity
}

// DayPlanService generates and stores the activities for one day of a
// holiday. Each call runs four stages in order and keeps no state between
// calls:
//
//  1. collect the holiday metadata and every saved activity of the holiday
//  2. turn the activities of the other days into exclusion lists
//  3. build the prompts and call the model with the day plan schema
//  4. re-validate the output and save each activity
//
// Generation is additive: activities already saved for the target day are
// kept and new ones are appended after them.
type DayPlanService struct {
	holidays   repo.HolidayRepo
	activities repo.ActivityRepo
	generator  Generator
	locks      *DayLocks
	recorder   PlanRecorder
	log        *slog.Logger
}

// NewDayPlanService wires the pipeline. recorder may be nil; a nil log
// falls back to slog.Default().
func NewDayPlanService(
	holidays repo.HolidayRepo,
	activities repo.ActivityRepo,
	generator Generator,
	locks *DayLocks,
	recorder PlanRecorder,
	log *slog.Logger,
) *DayPlanService {
	if log == nil {
		log = slog.Default()
	}
	return &DayPlanService{
		holidays:   holidays,
		activities: activities,
		generator:  generator,
		locks:      locks,
		recorder:   recorder,
		log:        log,
	}
}

// Plan runs the pipeline for req.
//
// Errors:
//   - wraps domain.ErrAIConfiguration when the provider rejects credentials
//   - *domain.GenerationError (matches domain.ErrGeneration) when the call
//     fails or returns nothing
//   - *domain.ResponseValidationError when the output fails re-validation
//   - *domain.PersistError when an insert fails; earlier rows stay saved
//
// Nothing is saved unless generation and validation both succeed.
func (s *DayPlanService) Plan(ctx context.Context, req domain.DayPlanRequest) (PlanResult, error) {
	trip, existing := s.collectContext(ctx, req)
	exclusions := BuildExclusions(existing, req.DayNumber)

	in := PromptInput{
		Trip:        trip,
		DayNumber:   req.DayNumber,
		DayDate:     req.DayDate,
		Preferences: req.Preferences,
		Exclusions:  exclusions,
	}
	raw, err := s.generate(ctx, in)
	if err != nil {
		return PlanResult{}, s.fail(ctx, req, err)
	}

	plan, err := ParseDayPlan(raw)
	if err != nil {
		return PlanResult{}, s.fail(ctx, req, err)
	}

	saved, err := s.persist(ctx, req, plan)
	if err != nil {
		return PlanResult{}, s.fail(ctx, req, err)
	}

	s.observe(OutcomeSuccess, len(saved))
	s.log.InfoContext(ctx, "day plan generated",
		"holiday_id", req.HolidayID,
		"day_number", req.DayNumber,
		"activities", len(saved),
		"excluded", len(exclusions.ActivityNames),
	)
	return PlanResult{Plan: plan, Saved: saved}, nil
}

// collectContext loads the holiday and its saved activities concurrently.
// Either fetch may fail without failing the request: a missing holiday
// leaves the TripContext empty and a failed list yields no activities.
func (s *DayPlanService) collectContext(ctx context.Context, req domain.DayPlanRequest) (domain.TripContext, []domain.Activity) {
	var (
		trip     domain.TripContext
		existing []domain.Activity
		g        errgroup.Group
	)

	g.Go(func() error {
		h, err := s.holidays.GetByID(ctx, req.HolidayID)
		if err != nil {
			s.log.WarnContext(ctx, "holiday context unavailable", "holiday_id", req.HolidayID, "error", err)
			return nil
		}
		trip = domain.TripContext{Name: h.Name, Destination: h.Destination}
		return nil
	})
	g.Go(func() error {
		list, err := s.activities.ListByHolidayID(ctx, req.HolidayID)
		if err != nil {
			s.log.WarnContext(ctx, "existing activities unavailable", "holiday_id", req.HolidayID, "error", err)
			return nil
		}
		existing = list
		return nil
	})
	_ = g.Wait() // both goroutines degrade instead of returning errors

	return trip, existing
}

// BuildExclusions returns the names and venues of every activity not on
// dayNumber, in input order and without de-duplication. Activities of the
// target day itself are left out so a day can be planned again.
func BuildExclusions(all []domain.Activity, dayNumber int) domain.Exclusions {
	others := lo.Filter(all, func(a domain.Activity, _ int) bool {
		return a.DayNumber != dayNumber
	})
	return domain.Exclusions{
		ActivityNames: lo.Map(others, func(a domain.Activity, _ int) string { return a.ActivityName }),
		VenueNames:    lo.Map(others, func(a domain.Activity, _ int) string { return a.VenueName }),
	}
}

func (s *DayPlanService) generate(ctx context.Context, in PromptInput) ([]byte, error) {
	raw, err := s.generator.Generate(ctx, domain.GenerationParams{
		SystemPrompt: BuildSystemPrompt(in),
		UserPrompt:   BuildUserPrompt(in),
		SchemaName:   dayPlanSchemaName,
		Schema:       DayPlanSchema(),
		Temperature:  dayPlanTemperature,
		MaxTokens:    dayPlanMaxTokens,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAIConfiguration) || errors.Is(err, domain.ErrGeneration) {
			return nil, fmt.Errorf("service.DayPlanService.Plan: %w", err)
		}
		return nil, fmt.Errorf("service.DayPlanService.Plan: %w", &domain.GenerationError{Reason: "model request failed", Err: err})
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("service.DayPlanService.Plan: %w", &domain.GenerationError{Reason: "no result from model"})
	}
	return raw, nil
}

// persist saves the activities one at a time in plan order. Each insert
// reads the day's current maximum sort_order under the day lock. The first
// failure stops the batch; rows already written are not removed.
//
// The model call has already been paid for at this point, so the inserts
// are detached from request cancellation.
func (s *DayPlanService) persist(ctx context.Context, req domain.DayPlanRequest, plan domain.DayPlan) ([]domain.Activity, error) {
	ctx = context.WithoutCancel(ctx)
	date := req.DayDate.Format(domain.DateLayout)

	saved := make([]domain.Activity, 0, len(plan.Activities))
	for _, pa := range plan.Activities {
		a := domain.Activity{
			HolidayID:    req.HolidayID,
			DayNumber:    req.DayNumber,
			ActivityDate: date,
			ActivityName: pa.ActivityName,
			VenueName:    pa.VenueName,
			StartTime:    pa.StartTime,
			Description:  lo.FromPtr(pa.Description),
		}
		row, err := insertActivity(ctx, s.activities, s.locks, a)
		if err != nil {
			return saved, &domain.PersistError{Saved: len(saved), Total: len(plan.Activities), Err: err}
		}
		saved = append(saved, row)
	}
	return saved, nil
}

// fail logs err, reports its outcome and returns it unchanged.
func (s *DayPlanService) fail(ctx context.Context, req domain.DayPlanRequest, err error) error {
	outcome := OutcomeGenerationError
	switch {
	case errors.Is(err, domain.ErrAIConfiguration):
		outcome = OutcomeConfigError
	case errors.Is(err, domain.ErrInvalidAIResponse):
		outcome = OutcomeInvalidResponse
	case errors.Is(err, domain.ErrPersistence):
		outcome = OutcomePersistenceError
	}

	saved := 0
	var pe *domain.PersistError
	if errors.As(err, &pe) {
		saved = pe.Saved
	}

	s.observe(outcome, saved)
	s.log.ErrorContext(ctx, "day plan failed",
		"holiday_id", req.HolidayID,
		"day_number", req.DayNumber,
		"outcome", outcome,
		"error", err,
	)
	return err
}

func (s *DayPlanService) observe(outcome string, activities int) {
	if s.recorder != nil {
		s.recorder.ObservePlan(outcome, activities)
	}
}
