package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/talentwire/jobconnect/internal/connector/http"
	"github.com/talentwire/jobconnect/internal/connector/notify"
	"github.com/talentwire/jobconnect/internal/connector/service"
	"github.com/talentwire/jobconnect/internal/connector/store"
	"github.com/talentwire/jobconnect/internal/connector/store/drivers/sqlite"
	"github.com/talentwire/jobconnect/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the connector service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	// Services
	identityService     *service.IdentityService
	otpService          *service.OTPService
	profileService      *service.ProfileService
	jobService          *service.JobService
	bootstrapService    *service.BootstrapService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "job-connector",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	// Seed the admin account before accepting traffic so the admin role is
	// resolvable from the first request
	if err := app.bootstrapService.EnsureAdmin(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("connector service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down connector service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("connector service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initTransports picks the delivery transports. Both fall back to the dev
// log sink when unconfigured, so a bare `go run` works out of the box.
func (app *Application) initTransports() (notify.Messenger, notify.Mailer) {
	sink := &notify.DevSink{Logger: app.logger}

	var messenger notify.Messenger = sink
	if app.cfg.GatewayURL != "" {
		messenger = notify.NewGatewayMessenger(app.cfg.GatewayURL, app.cfg.GatewayAPIKey, app.cfg.GatewayTimeout)
		app.logger.Info("whatsapp gateway transport enabled", "url", app.cfg.GatewayURL)
	} else {
		app.logger.Warn("no whatsapp gateway configured, codes will be logged")
	}

	var mailer notify.Mailer = sink
	if app.cfg.SMTPAddr != "" {
		mailer = &notify.SMTPMailer{
			Addr:     app.cfg.SMTPAddr,
			From:     app.cfg.SMTPFrom,
			Username: app.cfg.SMTPUsername,
			Password: app.cfg.SMTPPassword,
		}
		app.logger.Info("smtp transport enabled", "addr", app.cfg.SMTPAddr)
	} else {
		app.logger.Warn("no smtp relay configured, codes will be logged")
	}

	return messenger, mailer
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	messenger, mailer := app.initTransports()

	app.identityService = &service.IdentityService{Store: app.db}

	app.otpService = &service.OTPService{
		Store:        app.db,
		Identity:     app.identityService,
		Messenger:    messenger,
		Mailer:       mailer,
		ChallengeTTL: app.cfg.ChallengeTTL,
		MaxAttempts:  app.cfg.MaxAttempts,
	}

	app.profileService = &service.ProfileService{Store: app.db}
	app.jobService = &service.JobService{Store: app.db}

	app.bootstrapService = &service.BootstrapService{
		Store:      app.db,
		Logger:     app.logger,
		AdminEmail: app.cfg.AdminEmail,
		AdminName:  app.cfg.AdminName,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.cfg.Env == "dev",
		app.db,
		app.logger,
	)

	// Wire services to router
	router.OTPService = app.otpService
	router.IdentityService = app.identityService
	router.ProfileService = app.profileService
	router.JobService = app.jobService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
