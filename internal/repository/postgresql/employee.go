package postgresql

import (
	"context"
	"fmt"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employees (
			id, name, schedule_kind, schedule_anchor,
			shift_entry, shift_lunch_out, shift_lunch_in, shift_exit
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.Name,
		emp.ScheduleKind,
		emp.ScheduleAnchor,
		emp.ShiftEntry,
		emp.ShiftLunchOut,
		emp.ShiftLunchIn,
		emp.ShiftExit,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, schedule_kind, schedule_anchor,
			   shift_entry, shift_lunch_out, shift_lunch_in, shift_exit,
			   created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.ScheduleKind, &emp.ScheduleAnchor,
		&emp.ShiftEntry, &emp.ShiftLunchOut, &emp.ShiftLunchIn, &emp.ShiftExit,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2,
			schedule_kind = $3,
			schedule_anchor = $4,
			shift_entry = $5,
			shift_lunch_out = $6,
			shift_lunch_in = $7,
			shift_exit = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.Name,
		emp.ScheduleKind,
		emp.ScheduleAnchor,
		emp.ShiftEntry,
		emp.ShiftLunchOut,
		emp.ShiftLunchIn,
		emp.ShiftExit,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, schedule_kind, schedule_anchor,
			   shift_entry, shift_lunch_out, shift_lunch_in, shift_exit,
			   created_at, updated_at
		FROM employees
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Name, &emp.ScheduleKind, &emp.ScheduleAnchor,
			&emp.ShiftEntry, &emp.ShiftLunchOut, &emp.ShiftLunchIn, &emp.ShiftExit,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
