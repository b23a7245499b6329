// Package server initializes and runs the merchkeeper server.
// It wires configuration, storage, the account and catalog services, and
// starts the HTTP server with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/merchkeeper/internal/logging"
	"github.com/dmitrijs2005/merchkeeper/internal/server/catalog"
	"github.com/dmitrijs2005/merchkeeper/internal/server/config"
	"github.com/dmitrijs2005/merchkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/merchkeeper/internal/server/storage"
	"github.com/dmitrijs2005/merchkeeper/internal/server/users"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	storage        storage.Manager
	userService    *users.Service
	catalogService *catalog.Service
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	m, err := storage.NewPostgresManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(m.Users(), c)
	cs := catalog.NewService(m.Catalog())

	return &App{config: c, logger: logger, storage: m, userService: us, catalogService: cs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger,
		app.userService, app.catalogService, app.config.SecretKey, app.config.CookieSecure)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.storage.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
