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

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) timeclock.PunchRepository {
	return &punchRepository{db: db}
}

const punchColumns = `id, employee_id, date, punched_at, label, source, latitude, longitude, created_at`

func scanPunch(row pgx.Row) (timeclock.PunchEvent, error) {
	var p timeclock.PunchEvent
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Date, &p.At, &p.Label, &p.Source,
		&p.Latitude, &p.Longitude, &p.CreatedAt,
	)
	return p, err
}

// Create implements timeclock.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, punch timeclock.PunchEvent) (timeclock.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	if punch.ID == "" {
		punch.ID = uuid.New().String()
	}

	query := `
		INSERT INTO punch_events (
			id, employee_id, date, punched_at, label, source, latitude, longitude
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		punch.ID,
		punch.EmployeeID,
		punch.Date,
		punch.At,
		punch.Label,
		punch.Source,
		punch.Latitude,
		punch.Longitude,
	).Scan(&punch.CreatedAt)
	if err != nil {
		return timeclock.PunchEvent{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return punch, nil
}

// GetByID implements timeclock.PunchRepository.
func (r *punchRepository) GetByID(ctx context.Context, id string) (timeclock.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + ` FROM punch_events WHERE id = $1`

	punch, err := scanPunch(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeclock.PunchEvent{}, timeclock.ErrPunchNotFound
		}
		return timeclock.PunchEvent{}, fmt.Errorf("failed to get punch: %w", err)
	}

	return punch, nil
}

// Update implements timeclock.PunchRepository.
func (r *punchRepository) Update(ctx context.Context, punch timeclock.PunchEvent) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punch_events
		SET punched_at = $2, label = $3, source = $4
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, punch.ID, punch.At, punch.Label, punch.Source)
	if err != nil {
		return fmt.Errorf("failed to update punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeclock.ErrPunchNotFound
	}

	return nil
}

// Delete implements timeclock.PunchRepository.
func (r *punchRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM punch_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeclock.ErrPunchNotFound
	}

	return nil
}

// ListByEmployeeAndDate implements timeclock.PunchRepository.
func (r *punchRepository) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]timeclock.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punch_events
		WHERE employee_id = $1 AND date = $2
		ORDER BY punched_at
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []timeclock.PunchEvent
	for rows.Next() {
		punch, err := scanPunch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, punch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}

	return punches, nil
}

// GetLastByEmployeeAndDate implements timeclock.PunchRepository.
func (r *punchRepository) GetLastByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timeclock.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punch_events
		WHERE employee_id = $1 AND date = $2
		ORDER BY punched_at DESC
		LIMIT 1
	`

	punch, err := scanPunch(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last punch: %w", err)
	}

	return &punch, nil
}

// GetLastByEmployee implements timeclock.PunchRepository.
func (r *punchRepository) GetLastByEmployee(ctx context.Context, employeeID string) (*timeclock.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punch_events
		WHERE employee_id = $1
		ORDER BY punched_at DESC
		LIMIT 1
	`

	punch, err := scanPunch(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last punch: %w", err)
	}

	return &punch, nil
}
