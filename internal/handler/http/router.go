package http

import (
	"log/slog"
	"os"

	"github.com/athos-hr/timeclock-backend-go/internal/config"
	"github.com/athos-hr/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/athos-hr/timeclock-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	timeclockHandler TimeclockHandler,
	kioskHandler KioskHandler,
	adjustmentHandler AdjustmentHandler,
	leaveHandler LeaveHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

		// Device key is the credential here, not a bearer token.
		r.Post("/kiosk/session", kioskHandler.StartSession)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/timeclock", func(r chi.Router) {
				r.Use(middleware.RequireEmployee)
				r.Post("/punch", timeclockHandler.Punch)
				r.Get("/mirror", timeclockHandler.Mirror)
				r.Post("/token", kioskHandler.IssueToken)
				r.Get("/punch-status", kioskHandler.PunchStatus)
			})

			r.Route("/kiosk", func(r chi.Router) {
				r.Use(middleware.RequireKiosk)
				r.Post("/scan", kioskHandler.Scan)
			})

			r.Route("/adjustments", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployee)
					r.Post("/", adjustmentHandler.Submit)
					r.Get("/my", adjustmentHandler.ListMy)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/pending", adjustmentHandler.ListPending)
					r.Post("/{id}/approve", adjustmentHandler.Approve)
					r.Post("/{id}/reject", adjustmentHandler.Reject)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployee)
					r.Post("/", leaveHandler.Submit)
					r.Get("/my", leaveHandler.ListMy)
					r.Get("/balance", leaveHandler.GetBalance)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/pending", leaveHandler.ListPending)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
					r.Post("/{id}/cancel", leaveHandler.Cancel)
				})
			})

			// Admin only
			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
			})
		})
	})
	return r
}
