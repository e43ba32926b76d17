package timeclock

import (
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/validator"
)

type PunchRequest struct {
	EmployeeID string   `json:"-"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "latitude and longitude must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Label        string `json:"label"`
	Time         string `json:"time"`
}

type MirrorRequest struct {
	EmployeeID string `json:"-"`
	Month      string `json:"month"`
}

func (r *MirrorRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MirrorDay is one reconciled day with its punch drill-down.
type MirrorDay struct {
	Date            string   `json:"date"`
	Weekday         string   `json:"weekday"`
	Punches         []string `json:"punches"`
	WorkedMinutes   int      `json:"worked_minutes"`
	ExpectedMinutes int      `json:"expected_minutes"`
	BalanceMinutes  int      `json:"balance_minutes"`
	Balance         string   `json:"balance"`
	Status          string   `json:"status"`
}

type MirrorResponse struct {
	EmployeeID          string      `json:"employee_id"`
	Month               string      `json:"month"`
	Days                []MirrorDay `json:"days"`
	TotalBalanceMinutes int         `json:"total_balance_minutes"`
	TotalBalance        string      `json:"total_balance"`
	TotalWorkedHours    string      `json:"total_worked_hours"`
}

type PunchStatusResponse struct {
	Punched bool    `json:"punched"`
	Label   *string `json:"label,omitempty"`
	Time    *string `json:"time,omitempty"`
}
