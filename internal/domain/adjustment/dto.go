package adjustment

import (
	"github.com/athos-hr/timeclock-backend-go/internal/domain/timeclock"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	EmployeeID    string  `json:"-"`
	Date          string  `json:"date"`
	Kind          string  `json:"kind"`
	PunchID       *string `json:"punch_id,omitempty"`
	ProposedTime  string  `json:"proposed_time,omitempty"`
	ProposedLabel string  `json:"proposed_label,omitempty"`
	Justification string  `json:"justification"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	kind := Kind(r.Kind)
	if !kind.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of edit, include, delete",
		})
	}
	if (kind == KindEdit || kind == KindDelete) && (r.PunchID == nil || validator.IsEmpty(*r.PunchID)) {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_id",
			Message: "punch_id is required for edit and delete requests",
		})
	}
	if kind == KindInclude && r.PunchID != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_id",
			Message: "punch_id must not be set on include requests",
		})
	}
	if kind == KindEdit || kind == KindInclude {
		if !validator.IsValidClock(r.ProposedTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "proposed_time",
				Message: "proposed_time must be a time in HH:MM format",
			})
		}
		if !timeclock.Label(r.ProposedLabel).Valid() {
			errs = append(errs, validator.ValidationError{
				Field:   "proposed_label",
				Message: "proposed_label must be one of entry, lunch_out, lunch_in, exit, extra",
			})
		}
	}
	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{
			Field:   "justification",
			Message: "justification is required",
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

type AdjustmentResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	Date            string  `json:"date"`
	Kind            string  `json:"kind"`
	PunchID         *string `json:"punch_id,omitempty"`
	OriginalTime    *string `json:"original_time,omitempty"`
	ProposedTime    string  `json:"proposed_time,omitempty"`
	ProposedLabel   string  `json:"proposed_label,omitempty"`
	Justification   string  `json:"justification"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func NewAdjustmentResponse(req AdjustmentRequest, originalTime *string) AdjustmentResponse {
	return AdjustmentResponse{
		ID:              req.ID,
		EmployeeID:      req.EmployeeID,
		Date:            req.Date.Format("2006-01-02"),
		Kind:            string(req.Kind),
		PunchID:         req.PunchID,
		OriginalTime:    originalTime,
		ProposedTime:    req.ProposedTime,
		ProposedLabel:   req.ProposedLabel,
		Justification:   req.Justification,
		Status:          string(req.Status),
		RejectionReason: req.RejectionReason,
		CreatedAt:       req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
