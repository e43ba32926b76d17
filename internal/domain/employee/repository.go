package employee

import (
	"context"
)

// EmployeeRepository defines data access for the employee records the engine
// reads. Ownership of the wider employee profile stays with the user
// management module; only the scheduling fields live here.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	List(ctx context.Context) ([]Employee, error)
}
