package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/timeclock"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type summaryRepository struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) timeclock.SummaryRepository {
	return &summaryRepository{db: db}
}

// Upsert implements timeclock.SummaryRepository. The (employee_id, date)
// unique constraint makes the row a single writable cell per day.
func (r *summaryRepository) Upsert(ctx context.Context, summary timeclock.DailySummary) (timeclock.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	if summary.ID == "" {
		summary.ID = uuid.New().String()
	}

	query := `
		INSERT INTO daily_summaries (
			id, employee_id, date, worked_minutes, expected_minutes, balance_minutes, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET worked_minutes = EXCLUDED.worked_minutes,
			expected_minutes = EXCLUDED.expected_minutes,
			balance_minutes = EXCLUDED.balance_minutes,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		summary.ID,
		summary.EmployeeID,
		summary.Date,
		summary.WorkedMinutes,
		summary.ExpectedMinutes,
		summary.BalanceMinutes,
		summary.Status,
	).Scan(&summary.ID, &summary.CreatedAt, &summary.UpdatedAt)
	if err != nil {
		return timeclock.DailySummary{}, fmt.Errorf("failed to upsert daily summary: %w", err)
	}

	return summary, nil
}

// GetByEmployeeAndDate implements timeclock.SummaryRepository.
func (r *summaryRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timeclock.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, worked_minutes, expected_minutes, balance_minutes, status,
			   created_at, updated_at
		FROM daily_summaries
		WHERE employee_id = $1 AND date = $2
	`

	var s timeclock.DailySummary
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&s.ID, &s.EmployeeID, &s.Date, &s.WorkedMinutes, &s.ExpectedMinutes,
		&s.BalanceMinutes, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily summary: %w", err)
	}

	return &s, nil
}

// ListByEmployeeAndMonth implements timeclock.SummaryRepository.
func (r *summaryRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]timeclock.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	query := `
		SELECT id, employee_id, date, worked_minutes, expected_minutes, balance_minutes, status,
			   created_at, updated_at
		FROM daily_summaries
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily summaries: %w", err)
	}
	defer rows.Close()

	var summaries []timeclock.DailySummary
	for rows.Next() {
		var s timeclock.DailySummary
		err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.Date, &s.WorkedMinutes, &s.ExpectedMinutes,
			&s.BalanceMinutes, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily summaries: %w", err)
	}

	return summaries, nil
}

// CountByStatusInRange implements timeclock.SummaryRepository.
func (r *summaryRepository) CountByStatusInRange(ctx context.Context, employeeID string, status timeclock.DayStatus, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM daily_summaries
		WHERE employee_id = $1 AND status = $2 AND date >= $3 AND date <= $4
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, status, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count daily summaries: %w", err)
	}

	return count, nil
}
