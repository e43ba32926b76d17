package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, rejectionReason *string) error

	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]LeaveRequest, error)
	ListPending(ctx context.Context) ([]LeaveRequest, error)

	// SumRequestedDays totals requested days of the employee's own vacation
	// requests in the given statuses whose start date falls in [from, to].
	// Feeds the usedDays side of the entitlement balance.
	SumRequestedDays(ctx context.Context, employeeID string, leaveType Type, statuses []Status, from, to time.Time) (int, error)
}
