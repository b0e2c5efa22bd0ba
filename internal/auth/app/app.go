// Package app assembles the auth service: config, store, services, router,
// and the HTTP server lifecycle.
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

	httpapi "github.com/medibook/medibook/internal/auth/http"
	"github.com/medibook/medibook/internal/auth/service"
	"github.com/medibook/medibook/internal/auth/store"
	"github.com/medibook/medibook/internal/auth/store/drivers/sqlite"
	"github.com/medibook/medibook/pkg/cryptox"
	"github.com/medibook/medibook/pkg/jwtx"
	"github.com/medibook/medibook/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the auth service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	authService  *service.AuthService
	tokenService *service.TokenService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "auth-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, verifier, err := initSigningKey(app.cfg)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices(signer, verifier)

	if err := service.Bootstrap(context.Background(), app.db, service.Seed{
		Identifier:  app.cfg.SeedIdentifier,
		Secret:      app.cfg.SeedSecret,
		Authorities: app.cfg.SeedAuthorities,
	}); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("seed bootstrap failed: %w", err)
	}

	app.initHTTP(verifier)

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

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

// Shutdown drains in-flight requests, then closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
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

// initSigningKey builds the HS256 signer/verifier pair from the configured
// shared secret.
func initSigningKey(cfg Config) (jwtx.Signer, jwtx.Verifier, error) {
	if cfg.SigningSecret == "" {
		return nil, nil, fmt.Errorf("AUTH_SIGNING_SECRET must be set")
	}

	key := []byte(cfg.SigningSecret)
	signer, err := jwtx.NewSignerHS256(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize signer: %w", err)
	}
	verifier, err := jwtx.NewVerifierHS256(key, cfg.Issuer)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize verifier: %w", err)
	}
	return signer, verifier, nil
}

func (app *Application) initServices(signer jwtx.Signer, verifier jwtx.Verifier) {
	app.authService = &service.AuthService{Store: app.db}
	app.tokenService = &service.TokenService{
		Signer:    signer,
		Verifier:  verifier,
		Store:     app.db,
		Issuer:    app.cfg.Issuer,
		AccessTTL: app.cfg.AccessTTL,
	}
}

func (app *Application) initHTTP(verifier jwtx.Verifier) {
	router := httpapi.NewRouter(
		verifier,
		app.cfg.ExemptPaths,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.TokenService = app.tokenService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
