package main

import (
	"fmt"
	"net/http"

	"github.com/shiftledger/shiftledger-backend-go/internal/config"
	appHTTP "github.com/shiftledger/shiftledger-backend-go/internal/handler/http"
	"github.com/shiftledger/shiftledger-backend-go/internal/pkg/cron"
	"github.com/shiftledger/shiftledger-backend-go/internal/pkg/database"
	"github.com/shiftledger/shiftledger-backend-go/internal/pkg/punchclock"
	"github.com/shiftledger/shiftledger-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftledger/shiftledger-backend-go/internal/service/attendance"
	ledgerService "github.com/shiftledger/shiftledger-backend-go/internal/service/ledger"
	payrollService "github.com/shiftledger/shiftledger-backend-go/internal/service/payroll"
	placementService "github.com/shiftledger/shiftledger-backend-go/internal/service/placement"
	scheduleService "github.com/shiftledger/shiftledger-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)

	punchSource := punchclock.NewClient(cfg.Sync)

	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, employeeRepo)
	ledgerSvc := ledgerService.NewLedgerService(ledgerRepo, employeeRepo, scheduleSvc)
	attendanceSvc := attendanceService.NewAttendanceService(
		ledgerRepo,
		ledgerSvc,
		scheduleSvc,
		punchSource,
		cfg.Payroll,
	)
	payrollSvc := payrollService.NewPayrollService(ledgerRepo, employeeRepo, advanceRepo, ledgerSvc)
	placementSvc := placementService.NewPlacementService(employeeRepo, scheduleSvc)

	scheduler := cron.NewScheduler()
	cron.NewSyncJobs(attendanceSvc, ledgerSvc, cfg.Sync.Interval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	placementHandler := appHTTP.NewPlacementHandler(placementSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		scheduleHandler,
		ledgerHandler,
		attendanceHandler,
		payrollHandler,
		placementHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
