package api

import (
	"net/http"

	"wastewise-admin-service/internal/api/handlers"
	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/platform/metrics"
	"wastewise-admin-service/internal/ports"
	"wastewise-admin-service/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the services the HTTP API serves.
type Deps struct {
	Auth      *services.AuthService
	Themes    *services.ThemeService
	Records   *services.RecordService
	Pickup    *services.PickupService
	Reports   *services.ReportService
	Console   *services.ConsoleService
	Estimator *services.RouteEstimator
	Workbook  ports.ReportWriter

	Health         map[string]handlers.Pinger
	Gatherer       prometheus.Gatherer
	HTTPMetrics    *metrics.HTTPMetrics
	AllowedOrigins []string
	RecentLimit    int
	Log            *logger.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	logg := d.Log
	if logg == nil {
		logg = logger.Nop()
	}

	r := chi.NewRouter()
	r.Use(requestID(logg))
	r.Use(logging(logg, d.HTTPMetrics))
	r.Use(recoverer(logg))
	r.Use(corsPolicy(d.AllowedOrigins))

	health := &handlers.HealthHandler{Checks: d.Health}
	r.Get("/health", health.Health)
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	authH := &handlers.AuthHandler{Auth: d.Auth, Log: logg}
	themeH := &handlers.ThemeHandler{Themes: d.Themes, Log: logg}
	dash := &handlers.DashboardHandler{Pickup: d.Pickup, Log: logg}
	stats := &handlers.StatsHandler{Pickup: d.Pickup, RecentLimit: d.RecentLimit, Log: logg}
	reports := &handlers.ReportHandler{Reports: d.Reports, Workbook: d.Workbook, Log: logg}
	console := &handlers.ConsoleHandler{Console: d.Console, Log: logg}
	estimate := &handlers.EstimateHandler{Estimator: d.Estimator, Log: logg}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authH.Login)

		r.Group(func(r chi.Router) {
			r.Use(handlers.RequireSession(d.Auth, logg))
			r.Post("/auth/logout", authH.Logout)
			r.Get("/auth/me", authH.Me)
			r.Get("/theme", themeH.Get)
			r.Post("/theme/toggle", themeH.Toggle)

			r.Group(func(r chi.Router) {
				r.Use(handlers.RequireRole(domain.RoleAdmin, logg))

				r.Route("/workers", handlers.Workers(d.Records, logg).Register)
				r.Route("/zones", func(r chi.Router) {
					handlers.Zones(d.Records, logg).Register(r)
					r.Get("/{id}/routes", dash.ZoneRoutes)
				})
				r.Route("/routes", func(r chi.Router) {
					handlers.Routes(d.Records, logg).Register(r)
					r.Post("/{id}/estimate", estimate.Estimate)
				})
				r.Route("/vehicles", handlers.Vehicles(d.Records, logg).Register)
				r.Route("/assignments", handlers.Assignments(d.Records, logg).Register)
				r.Route("/logs", handlers.CollectionLogs(d.Records, logg).Register)

				r.Route("/dashboard", func(r chi.Router) {
					r.Get("/home", dash.Home)
					r.Get("/workers", dash.Workers)
					r.Get("/zones", dash.Zones)
					r.Get("/routes", dash.Routes)
					r.Get("/vehicles", dash.Vehicles)
					r.Get("/assignments", dash.Assignments)
				})

				r.Route("/stats", func(r chi.Router) {
					r.Get("/weekly", stats.Weekly)
					r.Get("/monthly", stats.Monthly)
					r.Get("/recent-logs", stats.RecentLogs)
					r.Get("/zones/{id}/daily", stats.ZoneDaily)
					r.Get("/vehicles/{id}/daily", stats.VehicleDaily)
				})

				r.Post("/reports", reports.Generate)

				r.Route("/console", func(r chi.Router) {
					r.Get("/", console.Current)
					r.Post("/navigate", console.Navigate)
					r.Post("/open", console.Open)
					r.Post("/back", console.Back)
					r.Post("/success", console.Success)
					r.Post("/sidebar", console.Sidebar)
				})
			})
		})
	})

	return r
}
