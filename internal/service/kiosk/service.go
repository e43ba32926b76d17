package kiosk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/kiosk"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/timeclock"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DeviceKeyHash         string
	PollVisibilitySeconds int
	Timezone              string
}

type KioskServiceImpl struct {
	jwtService jwt.Service
	employee.EmployeeRepository
	punchRepo timeclock.PunchRepository
	recorder  timeclock.TimeclockService
	cfg       Config
	loc       *time.Location
	now       func() time.Time
}

func NewKioskService(
	jwtService jwt.Service,
	employeeRepo employee.EmployeeRepository,
	punchRepo timeclock.PunchRepository,
	recorder timeclock.TimeclockService,
	cfg Config,
) *KioskServiceImpl {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return &KioskServiceImpl{
		jwtService:         jwtService,
		EmployeeRepository: employeeRepo,
		punchRepo:          punchRepo,
		recorder:           recorder,
		cfg:                cfg,
		loc:                loc,
		now:                time.Now,
	}
}

// StartSession implements kiosk.KioskService. The device key is compared
// against the provisioned bcrypt hash; there is no per-device record.
func (s *KioskServiceImpl) StartSession(ctx context.Context, req kiosk.StartSessionRequest) (kiosk.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return kiosk.SessionResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.DeviceKeyHash), []byte(req.DeviceKey)); err != nil {
		return kiosk.SessionResponse{}, kiosk.ErrDeviceKeyInvalid
	}

	token, expiresAt, err := s.jwtService.GenerateKioskSessionToken(req.DeviceLabel)
	if err != nil {
		return kiosk.SessionResponse{}, fmt.Errorf("failed to generate kiosk session token: %w", err)
	}

	return kiosk.SessionResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// IssueToken implements kiosk.KioskService.
func (s *KioskServiceImpl) IssueToken(ctx context.Context, employeeID string) (kiosk.TokenResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return kiosk.TokenResponse{}, err
	}

	token, expiresAt, err := s.jwtService.GeneratePunchToken(employeeID)
	if err != nil {
		return kiosk.TokenResponse{}, fmt.Errorf("failed to generate punch token: %w", err)
	}

	return kiosk.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Scan implements kiosk.KioskService. Validation failures never touch the
// ledger; an expired token just tells the employee to refresh their code.
func (s *KioskServiceImpl) Scan(ctx context.Context, req kiosk.ScanRequest) (timeclock.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.PunchResponse{}, err
	}

	employeeID, err := s.jwtService.ValidatePunchToken(req.Token)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return timeclock.PunchResponse{}, kiosk.ErrTokenExpired
		default:
			return timeclock.PunchResponse{}, kiosk.ErrTokenInvalid
		}
	}

	resp, err := s.recorder.RecordKioskPunch(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return timeclock.PunchResponse{}, kiosk.ErrUnknownEmployee
		}
		return timeclock.PunchResponse{}, err
	}
	return resp, nil
}

// PunchStatus implements kiosk.KioskService. It reports the caller's last
// punch only while it is fresh, so a polling device can confirm a kiosk scan
// without ever seeing a stale one as new.
func (s *KioskServiceImpl) PunchStatus(ctx context.Context, employeeID string) (timeclock.PunchStatusResponse, error) {
	last, err := s.punchRepo.GetLastByEmployee(ctx, employeeID)
	if err != nil {
		return timeclock.PunchStatusResponse{}, fmt.Errorf("failed to load last punch: %w", err)
	}
	if last == nil {
		return timeclock.PunchStatusResponse{Punched: false}, nil
	}

	n := s.now().In(s.loc)
	now := time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second(), 0, time.UTC)
	if now.Sub(last.At) > time.Duration(s.cfg.PollVisibilitySeconds)*time.Second {
		return timeclock.PunchStatusResponse{Punched: false}, nil
	}

	label := string(last.Label)
	at := last.TimeString()
	return timeclock.PunchStatusResponse{Punched: true, Label: &label, Time: &at}, nil
}

var _ kiosk.KioskService = (*KioskServiceImpl)(nil)
