package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/athos-hr/timeclock-backend-go/internal/config"
	"github.com/athos-hr/timeclock-backend-go/internal/domain/schedule"
	appHTTP "github.com/athos-hr/timeclock-backend-go/internal/handler/http"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/daylock"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/jwt"
	"github.com/athos-hr/timeclock-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/athos-hr/timeclock-backend-go/internal/service/adjustment"
	employeeService "github.com/athos-hr/timeclock-backend-go/internal/service/employee"
	kioskService "github.com/athos-hr/timeclock-backend-go/internal/service/kiosk"
	leaveService "github.com/athos-hr/timeclock-backend-go/internal/service/leave"
	timeclockService "github.com/athos-hr/timeclock-backend-go/internal/service/timeclock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	JWTService := jwt.NewJWTService(
		cfg.JWT.Secret,
		time.Duration(cfg.Engine.PunchTokenWindowSecs)*time.Second,
		cfg.JWT.KioskSessionExpiration,
	)
	resolver := schedule.NewResolver(cfg.Engine.FullShiftMinutes)
	locks := daylock.New()

	timeclockSvc := timeclockService.NewTimeclockService(
		db, punchRepo, summaryRepo, employeeRepo, resolver, locks,
		timeclockService.Config{
			ToleranceMinutes:  cfg.Engine.ToleranceMinutes,
			AntiReplaySeconds: cfg.Engine.AntiReplaySeconds,
			Timezone:          cfg.Engine.Timezone,
		},
	)
	kioskSvc := kioskService.NewKioskService(
		JWTService, employeeRepo, punchRepo, timeclockSvc,
		kioskService.Config{
			DeviceKeyHash:         cfg.Kiosk.DeviceKeyHash,
			PollVisibilitySeconds: cfg.Engine.PollVisibilitySeconds,
			Timezone:              cfg.Engine.Timezone,
		},
	)
	adjustmentSvc := adjustmentService.NewAdjustmentService(
		db, adjustmentRepo, punchRepo, employeeRepo, timeclockSvc, locks,
	)
	leaveSvc := leaveService.NewLeaveService(
		db, leaveRepo, summaryRepo, employeeRepo, resolver, locks,
		leaveService.Config{Timezone: cfg.Engine.Timezone},
	)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	timeclockHandler := appHTTP.NewTimeclockHandler(timeclockSvc)
	kioskHandler := appHTTP.NewKioskHandler(kioskSvc)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(adjustmentSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		timeclockHandler,
		kioskHandler,
		adjustmentHandler,
		leaveHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
