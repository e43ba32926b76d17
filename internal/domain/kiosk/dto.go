package kiosk

import (
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/validator"
)

type StartSessionRequest struct {
	DeviceLabel string `json:"device_label"`
	DeviceKey   string `json:"device_key"`
}

func (r *StartSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DeviceLabel) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_label",
			Message: "device_label is required",
		})
	}
	if validator.IsEmpty(r.DeviceKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_key",
			Message: "device_key is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// TokenResponse carries the opaque signed string the employee device renders
// on screen for the kiosk to scan.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type ScanRequest struct {
	Token string `json:"token"`
}

func (r *ScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
