package adjustment

import (
	"context"
)

type AdjustmentRepository interface {
	Create(ctx context.Context, req AdjustmentRequest) (AdjustmentRequest, error)
	GetByID(ctx context.Context, id string) (AdjustmentRequest, error)

	// UpdateStatus records the single pending -> approved/rejected
	// transition together with the decision timestamp.
	UpdateStatus(ctx context.Context, id string, status Status, rejectionReason *string) error

	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]AdjustmentRequest, error)
	ListPending(ctx context.Context) ([]AdjustmentRequest, error)
}
