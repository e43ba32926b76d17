package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/leave"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/schedule"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/timeclock"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/daylock"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/validator"
	"github.com/athos-hr/timeclock-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

const (
	listLimit = 100

	// entitlementCycleDays is the trailing window absences and vacation
	// usage are counted over.
	entitlementCycleDays = 365

	// minVacationDays is the shortest bookable vacation period.
	minVacationDays = 5
)

type Config struct {
	Timezone string
}

type LeaveServiceImpl struct {
	db database.TxBeginner
	leave.LeaveRepository
	summaryRepo timeclock.SummaryRepository
	empRepo     employee.EmployeeRepository
	resolver    *schedule.Resolver
	locks       *daylock.Locker
	loc         *time.Location
	now         func() time.Time
}

func NewLeaveService(
	db database.TxBeginner,
	leaveRepo leave.LeaveRepository,
	summaryRepo timeclock.SummaryRepository,
	empRepo employee.EmployeeRepository,
	resolver *schedule.Resolver,
	locks *daylock.Locker,
	cfg Config,
) *LeaveServiceImpl {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return &LeaveServiceImpl{
		db:              db,
		LeaveRepository: leaveRepo,
		summaryRepo:     summaryRepo,
		empRepo:         empRepo,
		resolver:        resolver,
		locks:           locks,
		loc:             loc,
		now:             time.Now,
	}
}

func (s *LeaveServiceImpl) today() time.Time {
	n := s.now().In(s.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// Submit implements leave.LeaveService. Entitlement rules apply to vacation
// requests only; sick and unpaid leave go straight to pending.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.empRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	if end.Before(start) {
		return leave.LeaveResponse{}, leave.ErrEndBeforeStart
	}

	leaveType := leave.Type(req.Type)
	requested := int(end.Sub(start).Hours()/24) + 1
	cashed := 0

	if leaveType == leave.TypeVacation {
		if requested < minVacationDays {
			return leave.LeaveResponse{}, leave.ErrRangeTooShort
		}

		balance, err := s.GetBalance(ctx, req.EmployeeID)
		if err != nil {
			return leave.LeaveResponse{}, err
		}

		if req.CashOut {
			cashed = requested / 2
			if cashed > balance.EntitledDays/3 {
				return leave.LeaveResponse{}, leave.ErrCashOutTooLarge
			}
			if requested+cashed > balance.BalanceDays {
				return leave.LeaveResponse{}, leave.ErrInsufficientDays
			}
		} else if requested > balance.BalanceDays {
			return leave.LeaveResponse{}, leave.ErrInsufficientDays
		}

		if emp.ScheduleKind == employee.ScheduleFiveTwo {
			if wd := start.Weekday(); wd == time.Thursday || wd == time.Friday {
				return leave.LeaveResponse{}, leave.ErrStartBeforeRest
			}
		}
	}

	created, err := s.LeaveRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID:    req.EmployeeID,
		Type:          leaveType,
		StartDate:     start,
		EndDate:       end,
		RequestedDays: requested,
		CashOut:       req.CashOut,
		CashedDays:    cashed,
		Status:        leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.NewLeaveResponse(created), nil
}

// ListMy implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMy(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRepository.ListByEmployee(ctx, employeeID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.NewLeaveResponse(req))
	}
	return responses, nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.NewLeaveResponse(req))
	}
	return responses, nil
}

// Approve implements leave.LeaveService. Each day in the range gets its
// summary overwritten with the leave status: expected drops to zero, any
// worked minutes stay on the row as pure balance. Overwriting an already
// overwritten day is a no-op.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.DecideRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := s.LeaveRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	unlockAll := s.lockRange(request.EmployeeID, request.StartDate, request.EndDate)
	defer unlockAll()

	dayStatus := request.Type.DayStatus()
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for day := request.StartDate; !day.After(request.EndDate); day = day.AddDate(0, 0, 1) {
			existing, err := s.summaryRepo.GetByEmployeeAndDate(txCtx, request.EmployeeID, day)
			if err != nil {
				return fmt.Errorf("failed to load daily summary: %w", err)
			}
			worked := 0
			if existing != nil {
				worked = existing.WorkedMinutes
			}
			_, err = s.summaryRepo.Upsert(txCtx, timeclock.DailySummary{
				EmployeeID:      request.EmployeeID,
				Date:            day,
				WorkedMinutes:   worked,
				ExpectedMinutes: 0,
				BalanceMinutes:  worked,
				Status:          dayStatus,
			})
			if err != nil {
				return fmt.Errorf("failed to upsert daily summary: %w", err)
			}
		}

		if err := s.LeaveRepository.UpdateStatus(txCtx, request.ID, leave.StatusApproved, nil); err != nil {
			return fmt.Errorf("failed to update leave status: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	decided, err := s.LeaveRepository.GetByID(ctx, request.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(decided), nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.DecideRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	if validator.IsEmpty(req.Reason) {
		return leave.LeaveResponse{}, leave.ErrReasonRequired
	}

	request, err := s.LeaveRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	if err := s.LeaveRepository.UpdateStatus(ctx, request.ID, leave.StatusRejected, &req.Reason); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	decided, err := s.LeaveRepository.GetByID(ctx, request.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(decided), nil
}

// Cancel implements leave.LeaveService. Only days whose summary still carries
// this leave's status are reverted; a day since overwritten by another leave
// or re-reconciled is left alone.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, req leave.DecideRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := s.LeaveRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if request.Status != leave.StatusApproved {
		return leave.LeaveResponse{}, leave.ErrNotApproved
	}

	emp, err := s.empRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	unlockAll := s.lockRange(request.EmployeeID, request.StartDate, request.EndDate)
	defer unlockAll()

	dayStatus := request.Type.DayStatus()
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for day := request.StartDate; !day.After(request.EndDate); day = day.AddDate(0, 0, 1) {
			existing, err := s.summaryRepo.GetByEmployeeAndDate(txCtx, request.EmployeeID, day)
			if err != nil {
				return fmt.Errorf("failed to load daily summary: %w", err)
			}
			if existing == nil || existing.Status != dayStatus {
				continue
			}
			expected := s.resolver.ExpectedMinutes(emp, day)
			_, err = s.summaryRepo.Upsert(txCtx, timeclock.DailySummary{
				EmployeeID:      request.EmployeeID,
				Date:            day,
				WorkedMinutes:   existing.WorkedMinutes,
				ExpectedMinutes: expected,
				BalanceMinutes:  existing.WorkedMinutes - expected,
				Status:          timeclock.StatusOK,
			})
			if err != nil {
				return fmt.Errorf("failed to upsert daily summary: %w", err)
			}
		}

		if err := s.LeaveRepository.UpdateStatus(txCtx, request.ID, leave.StatusCancelled, nil); err != nil {
			return fmt.Errorf("failed to update leave status: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	decided, err := s.LeaveRepository.GetByID(ctx, request.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(decided), nil
}

// GetBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID string) (leave.Balance, error) {
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return leave.Balance{}, err
	}

	today := s.today()
	from := today.AddDate(0, 0, -entitlementCycleDays)

	absences, err := s.summaryRepo.CountByStatusInRange(ctx, employeeID, timeclock.StatusAbsence, from, today)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to count absences: %w", err)
	}

	// Upcoming bookings count against the balance too, so the window for
	// used days runs a cycle ahead of today.
	used, err := s.LeaveRepository.SumRequestedDays(
		ctx,
		employeeID,
		leave.TypeVacation,
		[]leave.Status{leave.StatusPending, leave.StatusApproved},
		from,
		today.AddDate(0, 0, entitlementCycleDays),
	)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to sum used vacation days: %w", err)
	}

	return leave.NewBalance(absences, used), nil
}

// lockRange takes the day locks for [start, end] in ascending order and
// returns a single release for all of them.
func (s *LeaveServiceImpl) lockRange(employeeID string, start, end time.Time) func() {
	var unlocks []func()
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		unlocks = append(unlocks, s.locks.Lock(employeeID, day))
	}
	return func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
}

var _ leave.LeaveService = (*LeaveServiceImpl)(nil)
