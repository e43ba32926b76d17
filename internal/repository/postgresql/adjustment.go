package postgresql

import (
	"context"
	"fmt"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/adjustment"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

const adjustmentColumns = `id, employee_id, date, kind, punch_id, proposed_time, proposed_label,
	   justification, status, rejection_reason, created_at, decided_at`

func scanAdjustment(row pgx.Row) (adjustment.AdjustmentRequest, error) {
	var req adjustment.AdjustmentRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.Kind, &req.PunchID,
		&req.ProposedTime, &req.ProposedLabel, &req.Justification,
		&req.Status, &req.RejectionReason, &req.CreatedAt, &req.DecidedAt,
	)
	return req, err
}

// Create implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) Create(ctx context.Context, req adjustment.AdjustmentRequest) (adjustment.AdjustmentRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	query := `
		INSERT INTO adjustment_requests (
			id, employee_id, date, kind, punch_id, proposed_time, proposed_label,
			justification, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.Date,
		req.Kind,
		req.PunchID,
		req.ProposedTime,
		req.ProposedLabel,
		req.Justification,
		req.Status,
	).Scan(&req.CreatedAt)
	if err != nil {
		return adjustment.AdjustmentRequest{}, fmt.Errorf("failed to create adjustment request: %w", err)
	}

	return req, nil
}

// GetByID implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) GetByID(ctx context.Context, id string) (adjustment.AdjustmentRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adjustmentColumns + ` FROM adjustment_requests WHERE id = $1`

	req, err := scanAdjustment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return adjustment.AdjustmentRequest{}, adjustment.ErrRequestNotFound
		}
		return adjustment.AdjustmentRequest{}, fmt.Errorf("failed to get adjustment request: %w", err)
	}

	return req, nil
}

// UpdateStatus implements adjustment.AdjustmentRepository. The WHERE clause
// only matches pending rows so concurrent decisions cannot both win.
func (r *adjustmentRepository) UpdateStatus(ctx context.Context, id string, status adjustment.Status, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE adjustment_requests
		SET status = $2, rejection_reason = $3, decided_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, status, rejectionReason)
	if err != nil {
		return fmt.Errorf("failed to update adjustment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrAlreadyProcessed
	}

	return nil
}

// ListByEmployee implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]adjustment.AdjustmentRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustment_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustment requests: %w", err)
	}
	defer rows.Close()

	return collectAdjustments(rows)
}

// ListPending implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) ListPending(ctx context.Context) ([]adjustment.AdjustmentRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustment_requests
		WHERE status = 'pending'
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending adjustment requests: %w", err)
	}
	defer rows.Close()

	return collectAdjustments(rows)
}

func collectAdjustments(rows pgx.Rows) ([]adjustment.AdjustmentRequest, error) {
	var requests []adjustment.AdjustmentRequest
	for rows.Next() {
		req, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adjustment request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate adjustment requests: %w", err)
	}
	return requests, nil
}
