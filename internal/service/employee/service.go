package employee

import (
	"context"
	"fmt"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Name:           req.Name,
		ScheduleKind:   employee.ScheduleKind(req.ScheduleKind),
		ScheduleAnchor: employee.AnchorFromString(req.ScheduleAnchor),
		ShiftEntry:     req.ShiftEntry,
		ShiftLunchOut:  req.ShiftLunchOut,
		ShiftLunchIn:   req.ShiftLunchIn,
		ShiftExit:      req.ShiftExit,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.NewEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// UpdateEmployee implements employee.EmployeeService. Partial update; a
// switch to the 12x36 rotation must carry an anchor unless one is already
// set.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.ScheduleKind != nil {
		emp.ScheduleKind = employee.ScheduleKind(*req.ScheduleKind)
	}
	if req.ScheduleAnchor != nil {
		emp.ScheduleAnchor = employee.AnchorFromString(req.ScheduleAnchor)
	}
	if req.ShiftEntry != nil {
		emp.ShiftEntry = *req.ShiftEntry
	}
	if req.ShiftLunchOut != nil {
		emp.ShiftLunchOut = *req.ShiftLunchOut
	}
	if req.ShiftLunchIn != nil {
		emp.ShiftLunchIn = *req.ShiftLunchIn
	}
	if req.ShiftExit != nil {
		emp.ShiftExit = *req.ShiftExit
	}

	if emp.ScheduleKind == employee.ScheduleTwelveThirtySix && emp.ScheduleAnchor == nil {
		return employee.EmployeeResponse{}, employee.ErrAnchorRequired
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}
	return responses, nil
}

var _ employee.EmployeeService = (*EmployeeServiceImpl)(nil)
