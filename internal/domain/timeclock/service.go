package timeclock

import (
	"context"
	"time"
)

// TimeclockService is the punch ledger plus daily reconciler. Every ledger
// writer re-reconciles the affected day synchronously so the summary is
// never stale relative to the ledger.
type TimeclockService interface {
	// Punch records a self-service punch for the calling employee.
	Punch(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// RecordKioskPunch records a punch on behalf of a validated kiosk token.
	// Schedule blocking is not applied on this path; the kiosk flow trusts
	// the handshake.
	RecordKioskPunch(ctx context.Context, employeeID string) (PunchResponse, error)

	// Reconcile recomputes the (employee, date) summary from the ledger.
	// Callers mutating the ledger invoke it inside their transaction.
	Reconcile(ctx context.Context, employeeID string, date time.Time) (DailySummary, error)

	// Mirror returns the month's summaries with punch drill-down.
	Mirror(ctx context.Context, req MirrorRequest) (MirrorResponse, error)
}

// Reconciler is the narrow dependency the correction workflows take.
type Reconciler interface {
	Reconcile(ctx context.Context, employeeID string, date time.Time) (DailySummary, error)
}
