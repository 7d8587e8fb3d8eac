package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/herdsync/internal/catalog"
	"github.com/alexanderramin/herdsync/internal/cli"
	"github.com/alexanderramin/herdsync/internal/cli/formatter"
	"github.com/alexanderramin/herdsync/internal/config"
	"github.com/alexanderramin/herdsync/internal/db"
	"github.com/alexanderramin/herdsync/internal/repository"
	"github.com/alexanderramin/herdsync/internal/scheduler"
	"github.com/alexanderramin/herdsync/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
)

const lockTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Config file from HERDSYNC_CONFIG or the default locations
	cfg, cfgPath, cfgFound, err := config.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database
	database, err := db.Open(ctx, db.Options{
		Driver: cfg.Database.Driver,
		Path:   cfg.Database.Path,
		DSN:    cfg.Database.DSN,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	conn := database.Conn()
	cowRepo := repository.NewSQLCowRepo(conn)
	protocolRepo := repository.NewSQLProtocolRepo(conn)
	reminderRepo := repository.NewSQLReminderRepo(conn)

	// Wire unit of work for transactional operations
	uow := db.NewUnitOfWork(database)

	// Predefined protocols plus user files from the protocol directory
	cat := catalog.Default()
	fromFiles, err := catalog.LoadDir(cfg.Catalog.ProtocolDir)
	if err != nil {
		return fmt.Errorf("loading protocols: %w", err)
	}
	for _, p := range fromFiles {
		if err := cat.Register(p); err != nil {
			return fmt.Errorf("loading protocols: %w", err)
		}
	}

	calc := scheduler.Calculator{
		Defaults: scheduler.DefaultRatios().Merge(cfg.WorkforceDefaults()),
	}

	// Observers: structured log on stderr, metrics when a textfile is configured
	observers := []service.UseCaseObserver{
		service.NewLogUseCaseObserver(os.Stderr, service.LogOptions{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		}),
	}
	var registry *prometheus.Registry
	if cfg.Metrics.Textfile != "" {
		registry = prometheus.NewRegistry()
		metrics, err := service.NewMetricsUseCaseObserver(registry)
		if err != nil {
			return fmt.Errorf("registering metrics: %w", err)
		}
		observers = append(observers, metrics)
	}

	// Wire services
	protocolSvc := service.NewProtocolService(protocolRepo, cat, uow, observers...)
	reminderSvc := service.NewReminderService(reminderRepo, calc, uow, observers...)

	lock := db.NewWriterLock(cfg.LockPath())
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	err = lock.Acquire(lockCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("database is busy: %w", err)
	}
	err = protocolSvc.SyncCatalog(ctx)
	lock.Release()
	if err != nil {
		return fmt.Errorf("syncing protocol catalog: %w", err)
	}

	app := &cli.App{
		Cows:      service.NewCowService(cowRepo, uow, observers...),
		Protocols: protocolSvc,
		Reminders: reminderSvc,

		Apply:    reminderSvc,
		Complete: reminderSvc,
		Forecast: service.NewForecastService(reminderRepo, protocolRepo, calc, cfg.Forecast.WindowDays, observers...),
		Stats:    service.NewAnalyticsService(cowRepo, reminderRepo),

		Lock:         lock,
		LockTimeout:  lockTimeout,
		ForecastDays: cfg.Forecast.WindowDays,

		Config:      cfg,
		ConfigPath:  cfgPath,
		ConfigFound: cfgFound,
	}

	// Colors only on a terminal
	formatter.SetPlain(!isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()))

	// Execute root command
	runErr := cli.NewRootCmd(app).ExecuteContext(ctx)

	if registry != nil {
		if err := service.WriteMetricsTextfile(cfg.Metrics.Textfile, registry); err != nil {
			fmt.Fprintf(os.Stderr, "warning: writing metrics: %v\n", err)
		}
	}
	return runErr
}
