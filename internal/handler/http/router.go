package http

import (
	"log/slog"
	"net/http"

	"github.com/gilrsantana/pontolegal/internal/handler/http/middleware"
	"github.com/gilrsantana/pontolegal/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
	Gatherer       prometheus.Gatherer
}

type Handlers struct {
	TimeClock          TimeClockHandler
	WorkingDay         WorkingDayHandler
	Employee           EmployeeHandler
	ReviewNotification ReviewNotificationHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Authenticated by the short-lived token in the query string
		r.Get("/review-notifications/stream", h.ReviewNotification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/punches", func(r chi.Router) {
				r.Post("/", h.TimeClock.Register)
				r.Get("/{id}", h.TimeClock.Get)

				// Admin only
				r.With(middleware.AdminOnly).Patch("/{id}/status", h.TimeClock.UpdateStatus)
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.AdminOnly).Post("/", h.Employee.Create)

				r.Route("/{employeeID}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Get("/punches", h.TimeClock.ListForEmployeeOnDate)
					r.With(middleware.AdminOnly).Put("/working-day", h.Employee.AssignWorkingDay)
				})
			})

			r.Route("/working-days", func(r chi.Router) {
				r.Get("/", h.WorkingDay.List)
				r.Get("/{id}", h.WorkingDay.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.WorkingDay.Create)
					r.Put("/{id}", h.WorkingDay.Update)
				})
			})

			r.Route("/review-notifications", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.ReviewNotification.List)
				r.Get("/stream-token", h.ReviewNotification.GetSSEToken)
			})
		})
	})
	return r
}
