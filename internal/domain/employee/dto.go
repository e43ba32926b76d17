package employee

import (
	"time"

	"github.com/athos-hr/timeclock-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name           string  `json:"name"`
	ScheduleKind   string  `json:"schedule_kind"`
	ScheduleAnchor *string `json:"schedule_anchor,omitempty"`
	ShiftEntry     string  `json:"shift_entry"`
	ShiftLunchOut  string  `json:"shift_lunch_out"`
	ShiftLunchIn   string  `json:"shift_lunch_in"`
	ShiftExit      string  `json:"shift_exit"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !ScheduleKind(r.ScheduleKind).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_kind",
			Message: "schedule_kind must be one of unrestricted, five_two, twelve_thirty_six",
		})
	}
	if ScheduleKind(r.ScheduleKind) == ScheduleTwelveThirtySix && r.ScheduleAnchor == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_anchor",
			Message: "schedule_anchor is required for the twelve_thirty_six schedule",
		})
	}
	if r.ScheduleAnchor != nil {
		if _, ok := validator.IsValidDate(*r.ScheduleAnchor); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "schedule_anchor",
				Message: "schedule_anchor must be a date in YYYY-MM-DD format",
			})
		}
	}
	for field, value := range map[string]string{
		"shift_entry":     r.ShiftEntry,
		"shift_lunch_out": r.ShiftLunchOut,
		"shift_lunch_in":  r.ShiftLunchIn,
		"shift_exit":      r.ShiftExit,
	} {
		if !validator.IsValidClock(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a time in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID             string  `json:"-"`
	Name           *string `json:"name,omitempty"`
	ScheduleKind   *string `json:"schedule_kind,omitempty"`
	ScheduleAnchor *string `json:"schedule_anchor,omitempty"`
	ShiftEntry     *string `json:"shift_entry,omitempty"`
	ShiftLunchOut  *string `json:"shift_lunch_out,omitempty"`
	ShiftLunchIn   *string `json:"shift_lunch_in,omitempty"`
	ShiftExit      *string `json:"shift_exit,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.ScheduleKind != nil && !ScheduleKind(*r.ScheduleKind).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_kind",
			Message: "schedule_kind must be one of unrestricted, five_two, twelve_thirty_six",
		})
	}
	if r.ScheduleAnchor != nil {
		if _, ok := validator.IsValidDate(*r.ScheduleAnchor); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "schedule_anchor",
				Message: "schedule_anchor must be a date in YYYY-MM-DD format",
			})
		}
	}
	for field, value := range map[string]*string{
		"shift_entry":     r.ShiftEntry,
		"shift_lunch_out": r.ShiftLunchOut,
		"shift_lunch_in":  r.ShiftLunchIn,
		"shift_exit":      r.ShiftExit,
	} {
		if value != nil && !validator.IsValidClock(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a time in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ScheduleKind   string  `json:"schedule_kind"`
	ScheduleAnchor *string `json:"schedule_anchor,omitempty"`
	ShiftEntry     string  `json:"shift_entry"`
	ShiftLunchOut  string  `json:"shift_lunch_out"`
	ShiftLunchIn   string  `json:"shift_lunch_in"`
	ShiftExit      string  `json:"shift_exit"`
}

func NewEmployeeResponse(emp Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            emp.ID,
		Name:          emp.Name,
		ScheduleKind:  string(emp.ScheduleKind),
		ShiftEntry:    emp.ShiftEntry,
		ShiftLunchOut: emp.ShiftLunchOut,
		ShiftLunchIn:  emp.ShiftLunchIn,
		ShiftExit:     emp.ShiftExit,
	}
	if emp.ScheduleAnchor != nil {
		anchor := emp.ScheduleAnchor.Format("2006-01-02")
		resp.ScheduleAnchor = &anchor
	}
	return resp
}

// AnchorFromString is shared by the service when applying create/update
// requests; inputs are validated beforehand.
func AnchorFromString(anchor *string) *time.Time {
	if anchor == nil {
		return nil
	}
	t, ok := validator.IsValidDate(*anchor)
	if !ok {
		return nil
	}
	return &t
}
