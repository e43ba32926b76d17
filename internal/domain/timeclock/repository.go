package timeclock

import (
	"context"
	"time"
)

// PunchRepository defines data access for the punch ledger. The ledger is
// append-only from the punching paths; only approved adjustments update or
// delete rows.
type PunchRepository interface {
	Create(ctx context.Context, punch PunchEvent) (PunchEvent, error)
	GetByID(ctx context.Context, id string) (PunchEvent, error)
	Update(ctx context.Context, punch PunchEvent) error
	Delete(ctx context.Context, id string) error

	// ListByEmployeeAndDate returns the day's punches ordered by time.
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]PunchEvent, error)

	// GetLastByEmployeeAndDate returns the day's most recent punch, nil when
	// the day has none. Drives the anti-replay check.
	GetLastByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*PunchEvent, error)

	// GetLastByEmployee returns the employee's most recent punch across all
	// dates, nil when none exist. Drives the poll side-channel.
	GetLastByEmployee(ctx context.Context, employeeID string) (*PunchEvent, error)
}

// SummaryRepository defines data access for daily summary rows.
type SummaryRepository interface {
	// Upsert writes the (employee, date) row, creating it lazily on first
	// reconciliation.
	Upsert(ctx context.Context, summary DailySummary) (DailySummary, error)

	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*DailySummary, error)

	ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]DailySummary, error)

	// CountByStatusInRange counts the employee's summaries with the given
	// status in [from, to]. Used by the leave entitlement look-back.
	CountByStatusInRange(ctx context.Context, employeeID string, status DayStatus, from, to time.Time) (int, error)
}
