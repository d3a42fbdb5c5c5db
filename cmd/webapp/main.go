package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mustafacapras/todoapp-frontend/internal/api"
	"github.com/mustafacapras/todoapp-frontend/internal/config"
	"github.com/mustafacapras/todoapp-frontend/internal/session"
	"github.com/mustafacapras/todoapp-frontend/internal/web"
	"github.com/mustafacapras/todoapp-frontend/internal/web/handler"
)

func main() {
	// Initial logger at info level; reconfigured after config load
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		logger.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.ParseLogLevel(),
	}))
	slog.SetDefault(logger)

	logger.Info("config loaded",
		"env", cfg.AppEnv,
		"port", cfg.ServerPort,
		"backend", cfg.Backend.BaseURL,
		"log_level", cfg.LogLevel,
	)

	sessions := session.NewStore(session.NewFileTokenStore(cfg.Session.TokenFile), logger)

	client, err := api.NewClient(api.ClientConfig{
		BaseURL:    cfg.Backend.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Backend.Timeout},
		Tokens:     sessions,
		// A rejected token is gone for good; drop the session so the guard
		// sends the next request to the sign-in page.
		OnUnauthorized: sessions.Invalidate,
	})
	if err != nil {
		return err
	}

	renderer, err := handler.NewRenderer(logger)
	if err != nil {
		return err
	}

	srv := web.NewServer(cfg.ServerPort, logger, client, sessions, renderer)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	logger.Info("server starting", "port", cfg.ServerPort)

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}
