package service

import (
	"sync"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
)

// DayLocks serializes activity inserts per (holiday, day) within this
// process, so the read-max-then-insert in the repo never races with another
// request on the same day. Entries are reference counted and removed when
// no goroutine holds or waits for them.
type DayLocks struct {
	mu    sync.Mutex
	locks map[domain.DayKey]*dayLock
}

type dayLock struct {
	mu   sync.Mutex
	refs int
}

// NewDayLocks returns an empty lock table.
func NewDayLocks() *DayLocks {
	return &DayLocks{locks: make(map[domain.DayKey]*dayLock)}
}

// Lock blocks until the caller holds the lock for key and returns the
// function that releases it.
func (d *DayLocks) Lock(key domain.DayKey) (unlock func()) {
	d.mu.Lock()
	l, ok := d.locks[key]
	if !ok {
		l = &dayLock{}
		d.locks[key] = l
	}
	l.refs++
	d.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		d.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(d.locks, key)
		}
		d.mu.Unlock()
	}
}

// Len returns the number of keys currently held or waited on.
func (d *DayLocks) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.locks)
}
