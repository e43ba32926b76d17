package leave

import (
	"time"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/timeclock"
)

type Type string

const (
	TypeVacation    Type = "vacation"
	TypeSickLeave   Type = "sick_leave"
	TypeUnpaidLeave Type = "unpaid_leave"
)

func (t Type) Valid() bool {
	switch t {
	case TypeVacation, TypeSickLeave, TypeUnpaidLeave:
		return true
	}
	return false
}

// DayStatus maps the leave type to the summary status its approval writes.
func (t Type) DayStatus() timeclock.DayStatus {
	switch t {
	case TypeVacation:
		return timeclock.StatusVacation
	case TypeSickLeave:
		return timeclock.StatusSickLeave
	default:
		return timeclock.StatusUnpaidLeave
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// LeaveRequest covers an inclusive date range. Unlike adjustments, approval
// overwrites the daily summaries directly; no punches exist on leave days.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time

	// RequestedDays is derived from the range at submission.
	RequestedDays int

	// CashOut converts part of the entitlement to pay (abono pecuniario).
	CashOut    bool
	CashedDays int

	Status          Status
	RejectionReason *string

	CreatedAt time.Time
	DecidedAt *time.Time
}
