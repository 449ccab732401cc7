package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gilrsantana/pontolegal/internal/config"
	appHTTP "github.com/gilrsantana/pontolegal/internal/handler/http"
	"github.com/gilrsantana/pontolegal/internal/pkg/cron"
	"github.com/gilrsantana/pontolegal/internal/pkg/database"
	"github.com/gilrsantana/pontolegal/internal/pkg/events"
	"github.com/gilrsantana/pontolegal/internal/pkg/jwt"
	"github.com/gilrsantana/pontolegal/internal/pkg/lock"
	"github.com/gilrsantana/pontolegal/internal/pkg/metrics"
	"github.com/gilrsantana/pontolegal/internal/pkg/sse"
	"github.com/gilrsantana/pontolegal/internal/repository/postgresql"
	"github.com/gilrsantana/pontolegal/internal/service/compliance"
	employeeService "github.com/gilrsantana/pontolegal/internal/service/employee"
	notificationService "github.com/gilrsantana/pontolegal/internal/service/notification"
	timeClockService "github.com/gilrsantana/pontolegal/internal/service/timeclock"
	workingDayService "github.com/gilrsantana/pontolegal/internal/service/workingday"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{MaxConns: cfg.Database.MaxConns})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	locker, closeLocker, err := newLocker(cfg, logger)
	if err != nil {
		return err
	}
	defer closeLocker()

	publisher, err := newPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	// Repositories
	workingDayRepo := postgresql.NewWorkingDayRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewTimeClockRepository(db, loc)
	reviewRepo := postgresql.NewReviewNotificationRepository(db)
	transactor := postgresql.NewTransactor(db)

	// Services
	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return err
	}

	hub := sse.NewHub()
	reviewService := notificationService.NewNotificationService(reviewRepo, hub, publisher, logger, notificationService.Config{
		WorkerCount: cfg.Notification.WorkerCount,
		QueueSize:   cfg.Notification.QueueSize,
	})
	defer reviewService.Stop()

	evaluator := compliance.NewEvaluator(employeeRepo, workingDayRepo, punchRepo, reviewRepo, transactor, reviewService, appMetrics, logger)
	punchService := timeClockService.NewTimeClockService(punchRepo, evaluator, locker, appMetrics, logger, timeClockService.Config{
		Location:         loc,
		RetryGrace:       cfg.Compliance.RetryGrace,
		RetryBatchSize:   cfg.Compliance.RetryBatchSize,
		RetryConcurrency: cfg.Compliance.RetryConcurrency,
	})
	scheduleService := workingDayService.NewWorkingDayService(workingDayRepo, logger)
	staffService := employeeService.NewEmployeeService(employeeRepo, workingDayRepo, logger)

	// Background jobs
	scheduler := cron.NewScheduler(logger)
	cron.NewComplianceJobs(punchService, cfg.Compliance.RetryInterval, logger).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AllowedOrigins: cfg.App.AllowedOrigins,
		Logger:         logger,
		Gatherer:       registry,
	}, JWTService, appHTTP.Handlers{
		TimeClock:          appHTTP.NewTimeClockHandler(punchService),
		WorkingDay:         appHTTP.NewWorkingDayHandler(scheduleService),
		Employee:           appHTTP.NewEmployeeHandler(staffService),
		ReviewNotification: appHTTP.NewReviewNotificationHandler(reviewService, JWTService),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "addr", server.Addr, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pontolegal"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
}

// newLocker uses Redis when configured so registrations serialize across
// replicas; a single instance falls back to the in-process lock.
func newLocker(cfg *config.Config, logger *slog.Logger) (lock.Locker, func(), error) {
	if cfg.Redis.URL == "" {
		logger.Warn("REDIS_URL not set, using in-process registration lock")
		return lock.NewLocal(), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	return lock.NewRedis(client, logger), func() { _ = client.Close() }, nil
}

func newPublisher(cfg *config.Config, logger *slog.Logger) (events.Publisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Warn("KAFKA_BROKERS not set, flagged punch events are not published")
		return events.Noop{}, nil
	}

	publisher, err := events.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.ClientID)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}
