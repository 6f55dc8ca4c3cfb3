package service

import (
	"context"
	"errors"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
	"github.com/pkordes/holiday-planner/backend/internal/repo"
)

// maxInsertAttempts bounds retries when another process claims the same
// sort_order between our read of the day's maximum and our write.
const maxInsertAttempts = 3

// insertActivity persists one activity while holding the lock for its day.
// The repo computes sort_order as the day's current maximum plus one; a
// domain.ErrConflict from a cross-process race is retried.
func insertActivity(ctx context.Context, activities repo.ActivityRepo, locks *DayLocks, a domain.Activity) (domain.Activity, error) {
	unlock := locks.Lock(a.Key())
	defer unlock()

	var err error
	for range maxInsertAttempts {
		var saved domain.Activity
		saved, err = activities.Create(ctx, a)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return domain.Activity{}, err
		}
	}
	return domain.Activity{}, err
}
