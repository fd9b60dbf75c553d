package http

import (
	"log/slog"
	"net/http"

	"github.com/DeFacto365/Protip365-sub004/internal/handler/http/middleware"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
}

type Handlers struct {
	Dashboard DashboardHandler
	Shift     ShiftHandler
	Profile   ProfileHandler
	Employer  EmployerHandler
	Report    ReportHandler
	Events    EventsHandler
}

func NewRouter(JWTService jwt.Service, h Handlers, cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
		// the stream stays open for the life of the tab
		Skip: func(req *http.Request, respStatus int) bool {
			return req.URL.Path == "/api/v1/events/stream" && respStatus == http.StatusOK
		},
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// EventSource cannot send an Authorization header
		r.Get("/events/stream", h.Events.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Post("/events/token", h.Events.GetSSEToken)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", h.Dashboard.GetDashboard)
				r.Get("/summary", h.Dashboard.GetSummaries)
				r.Get("/performance", h.Dashboard.GetPerformance)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.List)
				r.Post("/", h.Shift.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Shift.Get)
					r.Put("/", h.Shift.Update)
					r.Delete("/", h.Shift.Delete)
					r.Put("/entry", h.Shift.RecordEntry)
					r.Delete("/entry", h.Shift.DeleteEntry)
					r.Post("/missed", h.Shift.MarkMissed)
				})
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.Profile.Get)
				r.Put("/", h.Profile.Update)
				r.Put("/targets", h.Profile.UpdateTargets)
			})

			r.Route("/employers", func(r chi.Router) {
				r.Get("/", h.Employer.List)
				r.Post("/", h.Employer.Create)
				r.Get("/{id}", h.Employer.Get)
				r.Put("/{id}", h.Employer.Update)
				r.Delete("/{id}", h.Employer.Deactivate)
			})

			r.Get("/reports/earnings.xlsx", h.Report.ExportEarnings)
		})
	})
	return r
}
