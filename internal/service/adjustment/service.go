package adjustment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/adjustment"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/timeclock"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/daylock"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/validator"
	"github.com/athos-hr/timeclock-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

const listLimit = 100

type AdjustmentServiceImpl struct {
	db database.TxBeginner
	adjustment.AdjustmentRepository
	punchRepo  timeclock.PunchRepository
	empRepo    employee.EmployeeRepository
	reconciler timeclock.Reconciler
	locks      *daylock.Locker
}

func NewAdjustmentService(
	db database.TxBeginner,
	adjustmentRepo adjustment.AdjustmentRepository,
	punchRepo timeclock.PunchRepository,
	empRepo employee.EmployeeRepository,
	reconciler timeclock.Reconciler,
	locks *daylock.Locker,
) *AdjustmentServiceImpl {
	return &AdjustmentServiceImpl{
		db:                   db,
		AdjustmentRepository: adjustmentRepo,
		punchRepo:            punchRepo,
		empRepo:              empRepo,
		reconciler:           reconciler,
		locks:                locks,
	}
}

// Submit implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Submit(ctx context.Context, req adjustment.SubmitRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	kind := adjustment.Kind(req.Kind)

	var originalTime *string
	if kind == adjustment.KindEdit || kind == adjustment.KindDelete {
		punch, err := s.punchRepo.GetByID(ctx, *req.PunchID)
		if err != nil {
			return adjustment.AdjustmentResponse{}, err
		}
		if punch.EmployeeID != req.EmployeeID || !punch.Date.Equal(date) {
			return adjustment.AdjustmentResponse{}, timeclock.ErrPunchNotFound
		}
		t := punch.TimeString()
		originalTime = &t
	}

	created, err := s.AdjustmentRepository.Create(ctx, adjustment.AdjustmentRequest{
		EmployeeID:    req.EmployeeID,
		Date:          date,
		Kind:          kind,
		PunchID:       req.PunchID,
		ProposedTime:  req.ProposedTime,
		ProposedLabel: req.ProposedLabel,
		Justification: req.Justification,
		Status:        adjustment.StatusPending,
	})
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to create adjustment request: %w", err)
	}

	return adjustment.NewAdjustmentResponse(created, originalTime), nil
}

// ListMy implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) ListMy(ctx context.Context, employeeID string) ([]adjustment.AdjustmentResponse, error) {
	requests, err := s.AdjustmentRepository.ListByEmployee(ctx, employeeID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustment requests: %w", err)
	}
	return s.toResponses(ctx, requests), nil
}

// ListPending implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) ListPending(ctx context.Context) ([]adjustment.AdjustmentResponse, error) {
	requests, err := s.AdjustmentRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending adjustment requests: %w", err)
	}
	return s.toResponses(ctx, requests), nil
}

func (s *AdjustmentServiceImpl) toResponses(ctx context.Context, requests []adjustment.AdjustmentRequest) []adjustment.AdjustmentResponse {
	responses := make([]adjustment.AdjustmentResponse, 0, len(requests))
	for _, req := range requests {
		var originalTime *string
		if req.PunchID != nil {
			if punch, err := s.punchRepo.GetByID(ctx, *req.PunchID); err == nil {
				t := punch.TimeString()
				originalTime = &t
			}
		}
		responses = append(responses, adjustment.NewAdjustmentResponse(req, originalTime))
	}
	return responses
}

// Approve implements adjustment.AdjustmentService. The ledger mutation, the
// status transition and the day's re-reconciliation commit together; if the
// referenced punch vanished the whole decision rolls back and the request
// stays pending.
func (s *AdjustmentServiceImpl) Approve(ctx context.Context, req adjustment.DecideRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	request, err := s.AdjustmentRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	if request.Status != adjustment.StatusPending {
		return adjustment.AdjustmentResponse{}, adjustment.ErrAlreadyProcessed
	}

	unlock := s.locks.Lock(request.EmployeeID, request.Date)
	defer unlock()

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.applyMutation(txCtx, request); err != nil {
			return err
		}
		if err := s.AdjustmentRepository.UpdateStatus(txCtx, request.ID, adjustment.StatusApproved, nil); err != nil {
			return fmt.Errorf("failed to update adjustment status: %w", err)
		}
		if _, err := s.reconciler.Reconcile(txCtx, request.EmployeeID, request.Date); err != nil {
			return fmt.Errorf("failed to reconcile day: %w", err)
		}
		return nil
	})
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	decided, err := s.AdjustmentRepository.GetByID(ctx, request.ID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	return adjustment.NewAdjustmentResponse(decided, nil), nil
}

func (s *AdjustmentServiceImpl) applyMutation(ctx context.Context, request adjustment.AdjustmentRequest) error {
	switch request.Kind {
	case adjustment.KindEdit:
		punch, err := s.punchRepo.GetByID(ctx, *request.PunchID)
		if err != nil {
			if errors.Is(err, timeclock.ErrPunchNotFound) {
				return adjustment.ErrPunchVanished
			}
			return err
		}
		// A punch no longer on the request's day would leave its own day
		// unreconciled after the mutation.
		if !punch.Date.Equal(request.Date) {
			return adjustment.ErrPunchVanished
		}
		punch.At = clockOnDate(request.Date, request.ProposedTime)
		punch.Label = timeclock.Label(request.ProposedLabel)
		punch.Source = timeclock.SourceAdjustment
		if err := s.punchRepo.Update(ctx, punch); err != nil {
			return fmt.Errorf("failed to update punch: %w", err)
		}
		return nil

	case adjustment.KindInclude:
		_, err := s.punchRepo.Create(ctx, timeclock.PunchEvent{
			EmployeeID: request.EmployeeID,
			Date:       request.Date,
			At:         clockOnDate(request.Date, request.ProposedTime),
			Label:      timeclock.Label(request.ProposedLabel),
			Source:     timeclock.SourceAdjustment,
		})
		if err != nil {
			return fmt.Errorf("failed to create punch: %w", err)
		}
		return nil

	case adjustment.KindDelete:
		punch, err := s.punchRepo.GetByID(ctx, *request.PunchID)
		if err != nil {
			if errors.Is(err, timeclock.ErrPunchNotFound) {
				return adjustment.ErrPunchVanished
			}
			return err
		}
		if !punch.Date.Equal(request.Date) {
			return adjustment.ErrPunchVanished
		}
		if err := s.punchRepo.Delete(ctx, *request.PunchID); err != nil {
			return fmt.Errorf("failed to delete punch: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown adjustment kind: %s", request.Kind)
}

// Reject implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Reject(ctx context.Context, req adjustment.DecideRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	if validator.IsEmpty(req.Reason) {
		return adjustment.AdjustmentResponse{}, adjustment.ErrReasonRequired
	}

	request, err := s.AdjustmentRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	if request.Status != adjustment.StatusPending {
		return adjustment.AdjustmentResponse{}, adjustment.ErrAlreadyProcessed
	}

	if err := s.AdjustmentRepository.UpdateStatus(ctx, request.ID, adjustment.StatusRejected, &req.Reason); err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to update adjustment status: %w", err)
	}

	decided, err := s.AdjustmentRepository.GetByID(ctx, request.ID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	return adjustment.NewAdjustmentResponse(decided, nil), nil
}

// clockOnDate anchors an "HH:MM" wall-clock reading onto the given day.
func clockOnDate(date time.Time, clock string) time.Time {
	minutes := validator.ClockToMinutes(clock)
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, time.UTC)
}

var _ adjustment.AdjustmentService = (*AdjustmentServiceImpl)(nil)
