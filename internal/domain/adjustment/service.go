package adjustment

import (
	"context"
)

// AdjustmentService is the punch correction workflow: employees propose a
// single edit/include/delete for a past date, administrators resolve it
// exactly once. Approval mutates the punch ledger and re-reconciles the day.
type AdjustmentService interface {
	Submit(ctx context.Context, req SubmitRequest) (AdjustmentResponse, error)
	ListMy(ctx context.Context, employeeID string) ([]AdjustmentResponse, error)
	ListPending(ctx context.Context) ([]AdjustmentResponse, error)
	Approve(ctx context.Context, req DecideRequest) (AdjustmentResponse, error)
	Reject(ctx context.Context, req DecideRequest) (AdjustmentResponse, error)
}
