package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wastewise-admin-service/internal/adapters/cache"
	"wastewise-admin-service/internal/adapters/distance"
	"wastewise-admin-service/internal/adapters/report"
	"wastewise-admin-service/internal/adapters/repositories"
	"wastewise-admin-service/internal/api"
	"wastewise-admin-service/internal/api/handlers"
	"wastewise-admin-service/internal/config"
	"wastewise-admin-service/internal/platform/db"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/platform/metrics"
	"wastewise-admin-service/internal/platform/migrate"
	"wastewise-admin-service/internal/platform/obs"
	redisclient "wastewise-admin-service/internal/platform/redis"
	"wastewise-admin-service/internal/ports"
	"wastewise-admin-service/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"
)

const shutdownTimeout = 15 * time.Second

// main is the application composition root.
// It wires concrete adapters (GORM, Redis, ORS) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Console output is for local runs only.
	format := cfg.App.LogFormat
	if cfg.App.IsProd() {
		format = "json"
	}
	logg := logger.New(logger.Options{
		ServiceName: "wastewise-admin",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      format,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "server exited", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	obs.Configure(logg, metrics.NewOperationMetrics(reg))

	dbClient, err := db.Open(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, dbClient.Close()) }()

	if err := migrate.MaybeRun(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	rc, err := redisclient.New(ctx, cfg.Redis, logg)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, rc.Close()) }()

	repos := repositories.New(dbClient.DB())

	sessions, err := cache.NewRedisSessionStore(rc, cfg.JWT.SessionTTL())
	if err != nil {
		return err
	}
	consoles := cache.NewRedisConsoleStore(rc, cfg.JWT.SessionTTL())

	// A nil provider keeps the service up; route estimates then report DEPENDENCY_ERROR.
	var provider ports.DistanceProvider
	ors, err := distance.NewORSDistanceProvider(
		cfg.ORS,
		cache.NewRedisDistanceCache(rc, cfg.ORS.DistanceCacheTTL),
		cache.NewRedisGeocodeCache(rc, cfg.ORS.GeocodeCacheTTL),
		logg,
	)
	switch {
	case errors.Is(err, distance.ErrNotConfigured):
		logg.Warn(ctx, "ORS api key not set; route estimation disabled")
	case err != nil:
		return err
	default:
		provider = ors
	}

	pickup := services.NewPickupService(repos, services.PickupOptions{
		Cache:          cache.NewRedisSummaryCache(rc),
		CacheTTL:       cfg.Stats.SummaryCacheTTL,
		RecentLogLimit: cfg.Stats.RecentLogLimit,
		Logger:         logg,
	})
	records := services.NewRecordService(repos, pickup, logg)

	router := api.NewRouter(api.Deps{
		Auth:      services.NewAuthService(repos.Users, sessions, consoles, cfg.JWT, logg),
		Themes:    services.NewThemeService(repos.Users),
		Records:   records,
		Pickup:    pickup,
		Reports:   services.NewReportService(pickup),
		Console:   services.NewConsoleService(consoles, pickup, records, logg),
		Estimator: services.NewRouteEstimator(records, provider, logg),
		Workbook:  report.NewXLSXWriter(),
		Health: map[string]handlers.Pinger{
			"database": dbClient,
			"redis":    rc,
		},
		Gatherer:       reg,
		HTTPMetrics:    metrics.NewHTTPMetrics(reg),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RecentLimit:    cfg.Stats.RecentLogLimit,
		Log:            logg,
	})

	// Timeouts are tuned for cold-cache route estimates (external API latency).
	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(logg.WithField(ctx, "addr", srv.Addr), "server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logg.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
