package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/leave"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `id, employee_id, type, start_date, end_date, requested_days,
	   cash_out, cashed_days, status, rejection_reason, created_at, decided_at`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate,
		&req.RequestedDays, &req.CashOut, &req.CashedDays,
		&req.Status, &req.RejectionReason, &req.CreatedAt, &req.DecidedAt,
	)
	return req, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, type, start_date, end_date, requested_days,
			cash_out, cashed_days, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.RequestedDays,
		req.CashOut,
		req.CashedDays,
		req.Status,
	).Scan(&req.CreatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`

	req, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, rejection_reason = $3, decided_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, rejectionReason)
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}

	return nil
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// ListPending implements leave.LeaveRepository.
func (r *leaveRepository) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE status = 'pending'
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// SumRequestedDays implements leave.LeaveRepository.
func (r *leaveRepository) SumRequestedDays(ctx context.Context, employeeID string, leaveType leave.Type, statuses []leave.Status, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(requested_days), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND type = $2
		  AND status = ANY($3)
		  AND start_date >= $4
		  AND start_date <= $5
	`

	statusStrings := make([]string, 0, len(statuses))
	for _, status := range statuses {
		statusStrings = append(statusStrings, string(status))
	}

	var total int
	if err := q.QueryRow(ctx, query, employeeID, leaveType, statusStrings, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum requested days: %w", err)
	}

	return total, nil
}

func collectLeaves(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return requests, nil
}
