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

	"github.com/apitrail/apitrail/internal/catalog"
	httpapi "github.com/apitrail/apitrail/internal/http"
	"github.com/apitrail/apitrail/internal/service"
	"github.com/apitrail/apitrail/internal/store"
	"github.com/apitrail/apitrail/internal/store/drivers/postgres"
	"github.com/apitrail/apitrail/internal/store/drivers/sqlite"
	"github.com/apitrail/apitrail/pkg/cryptox"
	"github.com/apitrail/apitrail/pkg/jwtx"
	"github.com/apitrail/apitrail/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application wires the tutorial service together: storage, session
// signing, the lesson catalog, services and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db      store.Store
	signer  *jwtx.HS256
	catalog *catalog.Catalog

	accountService  *service.AccountService
	progressService *service.ProgressService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "apitrail",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initCatalog(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initSessions(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("apitrail starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"levels", app.catalog.Len(),
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
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
	app.logger.Info("shutting down apitrail...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("apitrail stopped")
	return nil
}

// initDatabase picks the storage driver and applies migrations. A Postgres
// URL wins; otherwise the service runs on a local SQLite file.
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)

	if app.cfg.DatabaseURL != "" {
		db, err = postgres.NewStore(context.Background(), app.cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize postgres: %w", err)
		}
		app.logger.Info("using postgres storage")
	} else {
		// The _pragma params apply per connection, which matters once the
		// pool holds more than one
		dsn := fmt.Sprintf(
			"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
			app.cfg.DatabaseFile,
		)
		db, err = sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to initialize sqlite: %w", err)
		}
		app.logger.Info("using sqlite storage", "file", app.cfg.DatabaseFile)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initCatalog loads the embedded lesson catalog.
func (app *Application) initCatalog() error {
	c, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load level catalog: %w", err)
	}
	app.catalog = c

	app.logger.Info("level catalog loaded", "levels", c.Len())
	return nil
}

// initSessions builds the HS256 signer. Without a configured secret a
// random one is generated, which invalidates all sessions on restart.
func (app *Application) initSessions() error {
	secret := app.cfg.SessionSecret
	if secret == "" {
		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("failed to generate session secret: %w", err)
		}
		secret = generated
		app.logger.Warn("APITRAIL_SESSION_SECRET not set; generated an ephemeral secret, sessions will not survive restarts")
	}

	signer, err := jwtx.NewHS256([]byte(secret), app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize session signer: %w", err)
	}
	app.signer = signer

	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.accountService = &service.AccountService{
		Store: app.db,
		Hasher: cryptox.NewHasher(cryptox.Params{
			MemoryKiB:   uint32(app.cfg.HashMemoryKiB),
			Iterations:  uint32(app.cfg.HashTimeCost),
			Parallelism: uint8(app.cfg.HashParallelism),
		}),
		Sessions:   app.signer,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
	}

	app.progressService = &service.ProgressService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.Accounts = app.accountService
	router.Progress = app.progressService
	router.Levels = app.catalog
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
