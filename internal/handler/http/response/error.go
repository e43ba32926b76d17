package response

import (
	"errors"
	"net/http"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/adjustment"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/kiosk"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/leave"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/timeclock"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAnchorRequired):
		BadRequest(w, "A schedule anchor is required for the 12x36 rotation", nil)

	// Timeclock domain errors
	case errors.Is(err, timeclock.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, timeclock.ErrRestDayPunch):
		BadRequest(w, "Punching is blocked on a scheduled rest day", nil)
	case errors.Is(err, timeclock.ErrPunchTooSoon):
		Conflict(w, "A punch was already recorded moments ago")
	case errors.Is(err, timeclock.ErrNotOwnMirror):
		Forbidden(w, "You may only view your own mirror")

	// Kiosk handshake errors
	case errors.Is(err, kiosk.ErrTokenExpired):
		Unauthorized(w, "Punch token expired")
	case errors.Is(err, kiosk.ErrTokenInvalid):
		Unauthorized(w, "Punch token invalid")
	case errors.Is(err, kiosk.ErrUnknownEmployee):
		NotFound(w, "Employee not found")
	case errors.Is(err, kiosk.ErrDeviceKeyInvalid):
		Unauthorized(w, "Device key invalid")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrRequestNotFound):
		NotFound(w, "Adjustment request not found")
	case errors.Is(err, adjustment.ErrAlreadyProcessed):
		Conflict(w, "Adjustment request already processed")
	case errors.Is(err, adjustment.ErrReasonRequired):
		BadRequest(w, "A rejection reason is required", nil)
	case errors.Is(err, adjustment.ErrPunchVanished):
		Conflict(w, "The referenced punch no longer exists")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotApproved):
		Conflict(w, "Only an approved leave can be cancelled")
	case errors.Is(err, leave.ErrReasonRequired):
		BadRequest(w, "A rejection reason is required", nil)
	case errors.Is(err, leave.ErrRangeTooShort),
		errors.Is(err, leave.ErrCashOutTooLarge),
		errors.Is(err, leave.ErrInsufficientDays),
		errors.Is(err, leave.ErrStartBeforeRest),
		errors.Is(err, leave.ErrEndBeforeStart):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
