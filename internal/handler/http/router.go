package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	scheduleHandler ScheduleHandler,
	ledgerHandler LedgerHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	placementHandler PlacementHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftledger"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/schedules/{employeeID}", func(r chi.Router) {
			r.Get("/", scheduleHandler.GetWeek)
			r.Put("/", scheduleHandler.ReplaceWeek)
		})

		r.Route("/ledger/{month}", func(r chi.Router) {
			r.Get("/", ledgerHandler.ListMonth)
			r.Post("/initialize", ledgerHandler.InitializeMonth)
			r.Get("/rows/{rowID}", ledgerHandler.GetRow)
			r.Patch("/rows/{rowID}", ledgerHandler.UpdateRow)
		})

		r.Post("/attendance/sync/{date}", attendanceHandler.SyncDay)

		r.Route("/payroll/{month}", func(r chi.Router) {
			r.Get("/run", payrollHandler.RunMonth)
			r.Get("/forecast", payrollHandler.ForecastMonth)
			r.Get("/summary/{employeeID}", payrollHandler.GetSummary)
		})

		r.Get("/placement/{date}", placementHandler.GetDay)
	})
	return r
}
