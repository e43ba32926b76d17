package adjustment

import "errors"

var (
	ErrRequestNotFound  = errors.New("adjustment request not found")
	ErrAlreadyProcessed = errors.New("adjustment request has already been approved or rejected")
	ErrReasonRequired   = errors.New("a rejection reason is required")

	// ErrPunchVanished means the referenced punch no longer exists, e.g. it
	// was deleted by a concurrent adjustment. The request stays pending.
	ErrPunchVanished = errors.New("referenced punch no longer exists")
)
