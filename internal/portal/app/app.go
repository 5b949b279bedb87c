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

	httpapi "github.com/educonnect/portal/internal/portal/http"
	"github.com/educonnect/portal/internal/portal/notify"
	"github.com/educonnect/portal/internal/portal/service"
	"github.com/educonnect/portal/internal/portal/store"
	"github.com/educonnect/portal/internal/portal/store/drivers/sqlite"
	"github.com/educonnect/portal/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the portal with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	notifier notify.Notifier

	authService         *service.AuthService
	kycService          *service.KycService
	pricingService      *service.PricingService
	solutionService     *service.SolutionService
	orderService        *service.OrderService
	whitelistService    *service.WhitelistService
	libraryService      *service.LibraryService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "portal",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initNotifier()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("portal starting", "port", app.cfg.Port, "version", BuildVersion, "demo_otp", app.cfg.OtpDemoMode)

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
	app.logger.Info("shutting down portal...")

	// Give outstanding requests a deadline for completion
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

	app.logger.Info("portal stopped")
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

// initNotifier wires the OTP delivery channels. Email goes over SMTP when
// configured; SMS has no gateway yet and logs instead. Demo mode never
// dispatches, so it runs entirely on the logging stub.
func (app *Application) initNotifier() {
	smsStub := notify.NewLoggerNotifier(app.logger)

	if app.cfg.OtpDemoMode || app.cfg.SMTPHost == "" {
		app.notifier = smsStub
		return
	}

	email := notify.NewEmailNotifier(notify.SMTPConfig{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.SMTPFrom,
	})
	app.notifier = notify.NewDispatcher(email, smsStub)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:      app.db,
		Notifier:   app.notifier,
		Logger:     app.logger,
		DemoMode:   app.cfg.OtpDemoMode,
		OtpTTL:     app.cfg.OtpTTL,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.kycService = &service.KycService{Store: app.db, Logger: app.logger}
	app.pricingService = &service.PricingService{Store: app.db}
	app.solutionService = &service.SolutionService{
		Store:   app.db,
		Pricing: app.pricingService,
		Logger:  app.logger,
	}
	app.orderService = &service.OrderService{Store: app.db, Logger: app.logger}
	app.whitelistService = &service.WhitelistService{Store: app.db, Logger: app.logger}
	app.libraryService = &service.LibraryService{Store: app.db, Logger: app.logger}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.AuthService = app.authService
	router.KycService = app.kycService
	router.SolutionService = app.solutionService
	router.OrderService = app.orderService
	router.WhitelistService = app.whitelistService
	router.LibraryService = app.libraryService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
