package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
)

// HolidayRepo defines the persistence operations for Holidays.
type HolidayRepo interface {
	// Create inserts a new holiday and returns the persisted record
	// (with DB-generated id, created_at and updated_at populated).
	Create(ctx context.Context, h domain.Holiday) (domain.Holiday, error)

	// GetByID retrieves a single holiday by its UUID primary key.
	// Returns domain.ErrNotFound if no holiday with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Holiday, error)

	// ListPaged returns one page of holidays ordered by start_date ascending
	// together with the total number of holidays.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Holiday, int64, error)
}

type pgHolidayRepo struct {
	db db
}

// NewHolidayRepo constructs a HolidayRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewHolidayRepo(db db) HolidayRepo {
	return &pgHolidayRepo{db: db}
}

const holidayColumns = `id, name, destination, start_date, end_date, adults, children, description, created_at, updated_at`

func (r *pgHolidayRepo) Create(ctx context.Context, h domain.Holiday) (domain.Holiday, error) {
	const q = `
		INSERT INTO holidays (name, destination, start_date, end_date, adults, children, description)
		VALUES (@name, @destination, @start_date, @end_date, @adults, @children, @description)
		RETURNING ` + holidayColumns

	args := pgx.NamedArgs{
		"name":        h.Name,
		"destination": h.Destination,
		"start_date":  h.StartDate,
		"end_date":    h.EndDate,
		"adults":      h.Adults,
		"children":    h.Children,
		"description": h.Description,
	}

	result, err := scanHoliday(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Holiday{}, fmt.Errorf("repo.HolidayRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgHolidayRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Holiday, error) {
	const q = `SELECT ` + holidayColumns + ` FROM holidays WHERE id = @id`

	result, err := scanHoliday(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Holiday{}, fmt.Errorf("repo.HolidayRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgHolidayRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Holiday, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM holidays`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.HolidayRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT ` + holidayColumns + `
		FROM holidays
		ORDER BY start_date ASC, created_at ASC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.HolidayRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	holidays := []domain.Holiday{}
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.HolidayRepo.ListPaged: scan: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.HolidayRepo.ListPaged: rows: %w", err)
	}
	return holidays, total, nil
}

// scanHoliday maps a single database row into a domain.Holiday.
func scanHoliday(s scanner) (domain.Holiday, error) {
	var (
		h     domain.Holiday
		id    pgtype.UUID
		start pgtype.Date
		end   pgtype.Date
	)

	err := s.Scan(&id, &h.Name, &h.Destination, &start, &end, &h.Adults, &h.Children,
		&h.Description, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return domain.Holiday{}, mapError(err)
	}

	h.ID = uuid.UUID(id.Bytes)
	h.StartDate = start.Time
	h.EndDate = end.Time
	return h, nil
}
