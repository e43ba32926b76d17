package timeclock

import (
	"context"
	"fmt"
	"time"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/schedule"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/timeclock"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/daylock"
	"github.com/athos-hr/timeclock-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type Config struct {
	ToleranceMinutes  int
	AntiReplaySeconds int
	Timezone          string
}

type TimeclockServiceImpl struct {
	db database.TxBeginner
	timeclock.PunchRepository
	timeclock.SummaryRepository
	employee.EmployeeRepository
	resolver *schedule.Resolver
	locks    *daylock.Locker
	cfg      Config
	loc      *time.Location
	now      func() time.Time
}

func NewTimeclockService(
	db database.TxBeginner,
	punchRepo timeclock.PunchRepository,
	summaryRepo timeclock.SummaryRepository,
	employeeRepo employee.EmployeeRepository,
	resolver *schedule.Resolver,
	locks *daylock.Locker,
	cfg Config,
) *TimeclockServiceImpl {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return &TimeclockServiceImpl{
		db:                 db,
		PunchRepository:    punchRepo,
		SummaryRepository:  summaryRepo,
		EmployeeRepository: employeeRepo,
		resolver:           resolver,
		locks:              locks,
		cfg:                cfg,
		loc:                loc,
		now:                time.Now,
	}
}

// nowLocal returns the current wall clock in the engine timezone,
// re-expressed in UTC so it compares cleanly with stored punch times.
func (s *TimeclockServiceImpl) nowLocal() time.Time {
	n := s.now().In(s.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second(), 0, time.UTC)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Punch implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) Punch(ctx context.Context, req timeclock.PunchRequest) (timeclock.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.PunchResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timeclock.PunchResponse{}, err
	}

	today := dateOf(s.nowLocal())
	if !s.resolver.IsDutyDay(emp, today) {
		return timeclock.PunchResponse{}, timeclock.ErrRestDayPunch
	}

	return s.recordPunch(ctx, emp, timeclock.SourceGeo, req.Latitude, req.Longitude)
}

// RecordKioskPunch implements timeclock.TimeclockService. The kiosk path
// skips the rest-day block: the scan already carries a validated token.
func (s *TimeclockServiceImpl) RecordKioskPunch(ctx context.Context, employeeID string) (timeclock.PunchResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return timeclock.PunchResponse{}, err
	}
	return s.recordPunch(ctx, emp, timeclock.SourceKiosk, nil, nil)
}

func (s *TimeclockServiceImpl) recordPunch(ctx context.Context, emp employee.Employee, source timeclock.Source, lat, lng *float64) (timeclock.PunchResponse, error) {
	now := s.nowLocal()
	today := dateOf(now)

	unlock := s.locks.Lock(emp.ID, today)
	defer unlock()

	var created timeclock.PunchEvent
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		last, err := s.PunchRepository.GetLastByEmployeeAndDate(txCtx, emp.ID, today)
		if err != nil {
			return fmt.Errorf("failed to load last punch: %w", err)
		}
		if last != nil && now.Sub(last.At) < time.Duration(s.cfg.AntiReplaySeconds)*time.Second {
			return timeclock.ErrPunchTooSoon
		}

		punches, err := s.PunchRepository.ListByEmployeeAndDate(txCtx, emp.ID, today)
		if err != nil {
			return fmt.Errorf("failed to list punches: %w", err)
		}

		created, err = s.PunchRepository.Create(txCtx, timeclock.PunchEvent{
			EmployeeID: emp.ID,
			Date:       today,
			At:         now,
			Label:      timeclock.NextLabel(len(punches)),
			Source:     source,
			Latitude:   lat,
			Longitude:  lng,
		})
		if err != nil {
			return fmt.Errorf("failed to create punch: %w", err)
		}

		if _, err := s.Reconcile(txCtx, emp.ID, today); err != nil {
			return fmt.Errorf("failed to reconcile day: %w", err)
		}
		return nil
	})
	if err != nil {
		return timeclock.PunchResponse{}, err
	}

	return timeclock.PunchResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Date:         created.Date.Format("2006-01-02"),
		Label:        string(created.Label),
		Time:         created.TimeString(),
	}, nil
}

// Reconcile implements timeclock.TimeclockService. It recomputes one
// (employee, date) summary from the ledger; ledger writers call it inside
// their transaction so a reader never observes a punch without its summary.
func (s *TimeclockServiceImpl) Reconcile(ctx context.Context, employeeID string, date time.Time) (timeclock.DailySummary, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return timeclock.DailySummary{}, err
	}

	date = dateOf(date)
	punches, err := s.PunchRepository.ListByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return timeclock.DailySummary{}, fmt.Errorf("failed to list punches: %w", err)
	}

	expected := s.resolver.ExpectedMinutes(emp, date)
	comp := timeclock.ComputeDay(punches, expected, s.cfg.ToleranceMinutes)

	summary, err := s.SummaryRepository.Upsert(ctx, timeclock.DailySummary{
		EmployeeID:      employeeID,
		Date:            date,
		WorkedMinutes:   comp.WorkedMinutes,
		ExpectedMinutes: comp.ExpectedMinutes,
		BalanceMinutes:  comp.BalanceMinutes,
		Status:          comp.Status,
	})
	if err != nil {
		return timeclock.DailySummary{}, fmt.Errorf("failed to upsert daily summary: %w", err)
	}
	return summary, nil
}

// Mirror implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) Mirror(ctx context.Context, req timeclock.MirrorRequest) (timeclock.MirrorResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.MirrorResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return timeclock.MirrorResponse{}, err
	}

	month, err := time.Parse("2006-01", req.Month)
	if err != nil {
		return timeclock.MirrorResponse{}, fmt.Errorf("failed to parse month: %w", err)
	}

	summaries, err := s.SummaryRepository.ListByEmployeeAndMonth(ctx, req.EmployeeID, month.Year(), month.Month())
	if err != nil {
		return timeclock.MirrorResponse{}, fmt.Errorf("failed to list summaries: %w", err)
	}

	resp := timeclock.MirrorResponse{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Days:       make([]timeclock.MirrorDay, 0, len(summaries)),
	}

	totalWorked := 0
	for _, summary := range summaries {
		punches, err := s.PunchRepository.ListByEmployeeAndDate(ctx, req.EmployeeID, summary.Date)
		if err != nil {
			return timeclock.MirrorResponse{}, fmt.Errorf("failed to list punches: %w", err)
		}
		times := make([]string, 0, len(punches))
		for _, p := range punches {
			times = append(times, p.TimeString())
		}

		resp.Days = append(resp.Days, timeclock.MirrorDay{
			Date:            summary.Date.Format("2006-01-02"),
			Weekday:         summary.Date.Weekday().String(),
			Punches:         times,
			WorkedMinutes:   summary.WorkedMinutes,
			ExpectedMinutes: summary.ExpectedMinutes,
			BalanceMinutes:  summary.BalanceMinutes,
			Balance:         timeclock.FormatMinutesHM(summary.BalanceMinutes),
			Status:          string(summary.Status),
		})
		resp.TotalBalanceMinutes += summary.BalanceMinutes
		totalWorked += summary.WorkedMinutes
	}

	resp.TotalBalance = timeclock.FormatMinutesHM(resp.TotalBalanceMinutes)
	resp.TotalWorkedHours = decimal.NewFromInt(int64(totalWorked)).
		Div(decimal.NewFromInt(60)).
		Round(2).
		String()

	return resp, nil
}

var _ timeclock.TimeclockService = (*TimeclockServiceImpl)(nil)
