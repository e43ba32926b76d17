package leave

import (
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	EmployeeID string `json:"-"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	CashOut    bool   `json:"cash_out"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of vacation, sick_leave, unpaid_leave",
		})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if r.CashOut && Type(r.Type) != TypeVacation {
		errs = append(errs, validator.ValidationError{
			Field:   "cash_out",
			Message: "cash_out applies to vacation leave only",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideRequest struct {
	RequestID string `json:"-"`
	Reason    string `json:"reason,omitempty"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	Type            string  `json:"type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	RequestedDays   int     `json:"requested_days"`
	CashOut         bool    `json:"cash_out"`
	CashedDays      int     `json:"cashed_days"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func NewLeaveResponse(req LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:              req.ID,
		EmployeeID:      req.EmployeeID,
		Type:            string(req.Type),
		StartDate:       req.StartDate.Format("2006-01-02"),
		EndDate:         req.EndDate.Format("2006-01-02"),
		RequestedDays:   req.RequestedDays,
		CashOut:         req.CashOut,
		CashedDays:      req.CashedDays,
		Status:          string(req.Status),
		RejectionReason: req.RejectionReason,
		CreatedAt:       req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
