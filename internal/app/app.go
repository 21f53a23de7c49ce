package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vadim/neo-insight/internal/config"
	httpcontroller "github.com/vadim/neo-insight/internal/controller/http"
	"github.com/vadim/neo-insight/internal/database"
	analysispolicy "github.com/vadim/neo-insight/internal/domain/analysis/policy"
	analysisservice "github.com/vadim/neo-insight/internal/domain/analysis/service"
	"github.com/vadim/neo-insight/internal/domain/report/dao"
	"github.com/vadim/neo-insight/internal/domain/report/render"
	"github.com/vadim/neo-insight/internal/domain/report/scheduler"
	reportservice "github.com/vadim/neo-insight/internal/domain/report/service"
	"github.com/vadim/neo-insight/internal/extractor"
	"github.com/vadim/neo-insight/internal/logging"
	"github.com/vadim/neo-insight/internal/storage"
)

// App is the main application container
type App struct {
	cfg        config.Config
	httpServer *http.Server
	router     *chi.Mux
	logger     *slog.Logger

	// Infrastructure, nil when not configured
	pg      *pgxpool.Pool
	sqlite  *sql.DB
	storage *storage.S3Storage

	// Domain layers (interfaces for HTTP handlers)
	analysisPolicy *analysispolicy.Policy
	reportService  *reportservice.Service

	// Scheduler for purging expired reports
	scheduler *scheduler.Scheduler
}

// NewApp creates and initializes the application
func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	// Initialize logger
	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	// Initialize router with middleware
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Timeout(30 * time.Second))

	app := &App{
		cfg:    cfg,
		router: r,
		logger: logger,
	}

	// Initialize infrastructure
	if err := app.initInfrastructure(ctx); err != nil {
		app.closeInfrastructure()
		return nil, fmt.Errorf("initializing infrastructure: %w", err)
	}

	// Initialize domain layers
	if err := app.initDomains(ctx); err != nil {
		app.closeInfrastructure()
		return nil, fmt.Errorf("initializing domains: %w", err)
	}

	// Register routes
	if err := app.registerRoutes(); err != nil {
		app.closeInfrastructure()
		return nil, fmt.Errorf("registering routes: %w", err)
	}

	// Initialize HTTP server
	app.httpServer = &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      app.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return app, nil
}

// Handler returns the application's HTTP handler
func (a *App) Handler() http.Handler {
	return a.router
}

// initInfrastructure initializes infrastructure components (DB, object storage)
func (a *App) initInfrastructure(ctx context.Context) error {
	switch a.cfg.Database.Driver {
	case config.DriverPostgres:
		pool, err := database.NewPostgresPool(ctx, database.PoolConfig{
			DSN:          a.cfg.Database.PostgresDSN,
			MaxConns:     int32(a.cfg.Database.MaxOpenConns),
			MinConns:     int32(a.cfg.Database.MaxIdleConns),
			ConnLifetime: a.cfg.Database.ConnLifetime,
		})
		if err != nil {
			return fmt.Errorf("connecting to postgres: %w", err)
		}
		a.pg = pool
		a.logger.Info("connected to postgres")
	case config.DriverSQLite:
		db, err := database.NewSQLite(ctx, a.cfg.Database.SQLitePath)
		if err != nil {
			return fmt.Errorf("opening sqlite: %w", err)
		}
		a.sqlite = db
		a.logger.Info("opened sqlite", "path", a.cfg.Database.SQLitePath)
	default:
		a.logger.Warn("report persistence disabled")
	}

	if a.cfg.S3.Enabled {
		s3, err := storage.NewS3Storage(storage.S3Config{
			Endpoint:        a.cfg.S3.Endpoint,
			AccessKeyID:     a.cfg.S3.AccessKeyID,
			SecretAccessKey: a.cfg.S3.SecretAccessKey,
			Bucket:          a.cfg.S3.Bucket,
			Region:          a.cfg.S3.Region,
			PublicURL:       a.cfg.S3.PublicURL,
			Prefix:          a.cfg.S3.Prefix,
		})
		if err != nil {
			return fmt.Errorf("creating s3 storage: %w", err)
		}
		a.storage = s3
	}

	return nil
}

// initDomains initializes domain layers (DAO, Service, Policy)
func (a *App) initDomains(ctx context.Context) error {
	var repo dao.ReportRepository
	switch {
	case a.pg != nil:
		pgRepo := dao.NewReportPostgres(a.pg)
		if err := pgRepo.Migrate(ctx); err != nil {
			return fmt.Errorf("migrating reports: %w", err)
		}
		repo = pgRepo
	case a.sqlite != nil:
		sqliteRepo := dao.NewReportSQLite(a.sqlite)
		if err := sqliteRepo.Migrate(ctx); err != nil {
			return fmt.Errorf("migrating reports: %w", err)
		}
		repo = sqliteRepo
	}

	var store reportservice.ObjectStorage
	if a.storage != nil {
		store = a.storage
	}

	renderer, err := render.New()
	if err != nil {
		return err
	}

	a.reportService = reportservice.New(repo, store, renderer, a.logger.With("component", "reports"))

	a.analysisPolicy = analysispolicy.New(
		analysisservice.New(nil),
		extractor.New(extractor.WithBaseURL(a.cfg.Instagram.BaseURL)),
		a.reportService,
		renderer,
		a.cfg.Report.MaxPosts,
	)

	if a.cfg.Scheduler.Enabled && repo != nil {
		s, err := scheduler.New(a.reportService, a.cfg.Scheduler.Schedule, a.cfg.Scheduler.ReportTTL, a.logger.With("component", "retention"))
		if err != nil {
			return err
		}
		a.scheduler = s
	}

	return nil
}

// registerRoutes registers all HTTP routes
func (a *App) registerRoutes() error {
	// Health check
	a.router.Get("/healthz", a.healthHandler)
	a.router.Get("/readyz", a.readyHandler)

	// Swagger UI documentation
	swaggerHandler, err := httpcontroller.NewSwaggerHandler("Neo-Insight Content Analysis API", OpenAPISpec)
	if err != nil {
		return err
	}
	swaggerHandler.RegisterRoutes(a.router)

	// API v1
	a.router.Route("/api/v1", func(r chi.Router) {
		analysisHandler := httpcontroller.NewAnalysisHandler(a.analysisPolicy, a.cfg.Report.MaxDocumentSize)
		analysisHandler.RegisterRoutes(r)

		reportHandler := httpcontroller.NewReportHandler(a.reportService)
		reportHandler.RegisterRoutes(r)
	})

	return nil
}

// healthHandler handles health check requests
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// readyHandler handles readiness check requests
func (a *App) readyHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	var err error
	switch {
	case a.pg != nil:
		err = a.pg.Ping(ctx)
	case a.sqlite != nil:
		err = a.sqlite.PingContext(ctx)
	}

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		a.logger.Error("readiness check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"unavailable"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

// Run starts the application and blocks until shutdown signal
func (a *App) Run(ctx context.Context) error {
	// Start scheduler if enabled
	if a.scheduler != nil {
		a.scheduler.Start(ctx)
	}

	// Channel to receive errors from server
	errCh := make(chan error, 1)

	// Start HTTP server in goroutine
	go func() {
		a.logger.Info("starting HTTP server", "addr", a.cfg.Server.Address())
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		a.closeInfrastructure()
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.logger.Info("received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
		a.logger.Info("context cancelled")
	}

	// Graceful shutdown
	return a.Shutdown(context.Background())
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down...")

	// Stop scheduler
	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	// Shutdown HTTP server with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}

	a.closeInfrastructure()

	a.logger.Info("shutdown complete")
	return nil
}

// closeInfrastructure closes database connections
func (a *App) closeInfrastructure() {
	if a.pg != nil {
		a.pg.Close()
		a.pg = nil
	}
	if a.sqlite != nil {
		if err := a.sqlite.Close(); err != nil {
			a.logger.Error("failed to close sqlite", "error", err)
		}
		a.sqlite = nil
	}
}
