// Package daylock serializes ledger writers per (employee, date). Two
// near-simultaneous punches for the same employee must not both pass the
// anti-replay check; writers touching different employees or dates never
// contend.
package daylock

import (
	"sync"
	"time"
)

type Locker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *Locker {
	return &Locker{locks: make(map[string]*entry)}
}

// Lock acquires the lock for the given employee and date and returns the
// release function.
func (l *Locker) Lock(employeeID string, date time.Time) func() {
	key := employeeID + "|" + date.Format("2006-01-02")

	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}
