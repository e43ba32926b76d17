package leave

import (
	"context"
)

// LeaveService is the coarse-grained correction workflow operating on date
// ranges. Approval writes daily summaries directly; revocation reverts only
// days whose status still carries this leave's type.
type LeaveService interface {
	Submit(ctx context.Context, req SubmitRequest) (LeaveResponse, error)
	ListMy(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListPending(ctx context.Context) ([]LeaveResponse, error)
	Approve(ctx context.Context, req DecideRequest) (LeaveResponse, error)
	Reject(ctx context.Context, req DecideRequest) (LeaveResponse, error)

	// Cancel revokes an approved leave and undoes its summary overrides.
	Cancel(ctx context.Context, req DecideRequest) (LeaveResponse, error)

	// GetBalance returns the employee's vacation entitlement breakdown.
	GetBalance(ctx context.Context, employeeID string) (Balance, error)
}
