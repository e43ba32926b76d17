package adjustment

import (
	"time"
)

type Kind string

const (
	KindEdit    Kind = "edit"
	KindInclude Kind = "include"
	KindDelete  Kind = "delete"
)

func (k Kind) Valid() bool {
	switch k {
	case KindEdit, KindInclude, KindDelete:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// AdjustmentRequest proposes a single punch mutation for a past date. It is
// created by the employee and transitioned exactly once by an administrator.
type AdjustmentRequest struct {
	ID         string
	EmployeeID string
	Date       time.Time

	// PunchID references the targeted punch for edit/delete, nil for include.
	PunchID *string

	// ProposedTime ("HH:MM") and ProposedLabel are set for edit/include,
	// empty for delete.
	ProposedTime  string
	ProposedLabel string

	Kind            Kind
	Justification   string
	Status          Status
	RejectionReason *string

	CreatedAt time.Time
	DecidedAt *time.Time
}
