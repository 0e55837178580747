package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Kamzyled/Love-moyosola/internal/config"
	"github.com/Kamzyled/Love-moyosola/internal/core"
	"github.com/Kamzyled/Love-moyosola/internal/questions"
	"github.com/Kamzyled/Love-moyosola/internal/store"
	"github.com/Kamzyled/Love-moyosola/internal/store/sqlite"
	transporthttp "github.com/Kamzyled/Love-moyosola/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	hub             *core.Hub
	store           store.Store
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) (*App, error) {
	if err := questions.EnsureDefaults(cfg.QuestionsDir); err != nil {
		return nil, fmt.Errorf("seed question banks: %w", err)
	}
	bank, err := questions.Load(cfg.QuestionsDir)
	if err != nil {
		return nil, fmt.Errorf("load question banks: %w", err)
	}
	logger.Info().Strs("categories", bank.Categories()).Msg("question banks loaded")

	st, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	logger.Info().Str("db_path", cfg.DatabasePath).Msg("match archive initialized")

	hub := core.NewHub(bank, st, cfg.RoundAdvanceDelay, logger)
	server := transporthttp.NewServer(hub, bank, st, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		hub:             hub,
		store:           st,
		log:             logger,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go a.hub.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

// cleanup closes the match archive and other resources.
func (a *App) cleanup() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close store")
		} else {
			a.log.Info().Msg("store closed")
		}
	}
}
