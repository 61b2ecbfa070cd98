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

	"tours/cmd"
	httpin "tours/internal/adapters/in/http"
	"tours/internal/adapters/in/http/api"
	"tours/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Application stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(configs.Debug)
	slog.SetDefault(logger)
	if configs.SecretKey == cmd.DefaultSecretKey && !configs.Debug {
		logger.Warn("SECRET_KEY is the development placeholder")
	}
	if configs.AdminEmail == "" {
		logger.Warn("ADMIN_EMAIL is not set, admin alerts and contact messages will fail")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, configs.DatabaseURL, configs.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = postgres.Close(db) }()

	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db, nil, logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}

	return startWebServer(ctx, app, configs, jobManager, logger)
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

type jobStopper interface {
	StopAll(ctx context.Context) error
}

func startWebServer(
	ctx context.Context,
	app *cmd.CompositionRoot,
	configs cmd.Config,
	jobs jobStopper,
	logger *slog.Logger,
) error {
	doc, err := api.GetSwagger()
	if err != nil {
		return err
	}

	server := httpin.NewServer(app.CreateHandlers(), logger)
	e := httpin.NewRouter(server, doc, httpin.RouterConfig{
		RateLimitPerSecond: configs.RateLimitPerSecond,
		Metrics:            app.Metrics(),
	}, logger)
	if configs.Debug {
		e.Logger.SetLevel(log.DEBUG)
	} else {
		e.Logger.SetLevel(log.WARN)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", configs.HTTPPort)
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(err, e.Shutdown(shutdownCtx), jobs.StopAll(shutdownCtx))
}
