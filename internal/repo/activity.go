package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
)

// ActivityRepo defines the persistence operations for holiday activities.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	// The stored sort_order is one more than the current maximum for the
	// activity's (holiday, day) pair, read and written in one statement;
	// any SortOrder on the input is ignored.
	// Returns domain.ErrNotFound if the holiday does not exist and
	// domain.ErrConflict if another writer claimed the same sort_order.
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity by its UUID.
	// Returns domain.ErrNotFound if no activity with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error)

	// ListByHolidayID returns every activity of a holiday ordered by
	// day_number, then sort_order. The slice is never nil.
	ListByHolidayID(ctx context.Context, holidayID uuid.UUID) ([]domain.Activity, error)

	// Delete removes an activity by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, holiday_id, day_number, activity_date, activity_name, venue_name,
	start_time, description, activity_type, address, end_time, estimated_cost::float8,
	currency, notes, sort_order, created_at, updated_at`

func (r *pgActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	date, err := time.Parse(domain.DateLayout, a.ActivityDate)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w: activity_date %q", domain.ErrValidation, a.ActivityDate)
	}

	// The aggregate always yields one row, so an empty day starts at 1.
	const q = `
		INSERT INTO holiday_activities (
			holiday_id, day_number, activity_date, activity_name, venue_name, start_time,
			description, activity_type, address, end_time, estimated_cost, currency, notes, sort_order)
		SELECT @holiday_id::uuid, @day_number::int, @activity_date::date, @activity_name::text,
			@venue_name::text, @start_time::text, @description::text, @activity_type::text,
			@address::text, @end_time::text, @estimated_cost::numeric, @currency::text, @notes::text,
			COALESCE(MAX(sort_order), 0) + 1
		FROM holiday_activities
		WHERE holiday_id = @holiday_id::uuid AND day_number = @day_number::int
		RETURNING ` + activityColumns

	args := pgx.NamedArgs{
		"holiday_id":     a.HolidayID,
		"day_number":     a.DayNumber,
		"activity_date":  date,
		"activity_name":  a.ActivityName,
		"venue_name":     a.VenueName,
		"start_time":     a.StartTime,
		"description":    a.Description,
		"activity_type":  a.ActivityType,
		"address":        a.Address,
		"end_time":       a.EndTime,
		"estimated_cost": a.EstimatedCost, // nil becomes NULL
		"currency":       a.Currency,
		"notes":          a.Notes,
	}

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM holiday_activities WHERE id = @id`

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) ListByHolidayID(ctx context.Context, holidayID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM holiday_activities
		WHERE holiday_id = @holiday_id
		ORDER BY day_number ASC, sort_order ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"holiday_id": holidayID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByHolidayID: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByHolidayID: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByHolidayID: rows: %w", err)
	}
	return activities, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM holiday_activities WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a         domain.Activity
		id        pgtype.UUID
		holidayID pgtype.UUID
		date      pgtype.Date
		cost      pgtype.Float8
	)

	err := s.Scan(&id, &holidayID, &a.DayNumber, &date, &a.ActivityName, &a.VenueName,
		&a.StartTime, &a.Description, &a.ActivityType, &a.Address, &a.EndTime, &cost,
		&a.Currency, &a.Notes, &a.SortOrder, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Activity{}, mapError(err)
	}

	a.ID = uuid.UUID(id.Bytes)
	a.HolidayID = uuid.UUID(holidayID.Bytes)
	a.ActivityDate = date.Time.Format(domain.DateLayout)
	if cost.Valid {
		v := cost.Float64
		a.EstimatedCost = &v
	}
	return a, nil
}
