package kiosk

import (
	"context"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/timeclock"
)

// KioskService drives the kiosk/mobile hand-off: a shared device
// authenticates once with its provisioned key, employees mint short-lived
// punch tokens on their own devices, and the kiosk presents them for
// validation. Tokens are never revoked, only time-boxed.
type KioskService interface {
	// StartSession exchanges the device key for a kiosk-role session token.
	StartSession(ctx context.Context, req StartSessionRequest) (SessionResponse, error)

	// IssueToken mints a punch token for the authenticated employee.
	IssueToken(ctx context.Context, employeeID string) (TokenResponse, error)

	// Scan validates a presented token and, on success, records the punch
	// and reconciles the day.
	Scan(ctx context.Context, req ScanRequest) (timeclock.PunchResponse, error)

	// PunchStatus is the polling side-channel: it reports the caller's most
	// recent punch when it happened inside the visibility window, so the
	// employee device can confirm a kiosk scan it never saw.
	PunchStatus(ctx context.Context, employeeID string) (timeclock.PunchStatusResponse, error)
}
