package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyProcessed = errors.New("leave request has already been processed")
	ErrNotApproved      = errors.New("only an approved leave can be cancelled")
	ErrReasonRequired   = errors.New("a rejection reason is required")

	// Submission eligibility failures, each a specific machine-checkable
	// reason.
	ErrRangeTooShort    = errors.New("a vacation period must cover at least 5 days")
	ErrCashOutTooLarge  = errors.New("cashed-out days may not exceed a third of the entitlement")
	ErrInsufficientDays = errors.New("insufficient vacation balance for the requested period")
	ErrStartBeforeRest  = errors.New("a five-two schedule vacation may not start on the two days before the weekly rest")
	ErrEndBeforeStart   = errors.New("end date must not precede start date")
)
