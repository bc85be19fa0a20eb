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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/light-bringer/agrocart-service/internal/config"
	"github.com/light-bringer/agrocart-service/internal/services"
)

func main() {
	if err := run(); err != nil {
		slog.Error("failed to run server", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load configuration (.env is optional, env vars win)
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on system environment")
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Configure structured logging
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	log.Info("starting agrocart service",
		"env", cfg.AppEnv,
		"http_port", cfg.HTTPServer.Port,
		"firestore_project", cfg.Firestore.ProjectID,
	)

	// 3. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer serviceOpts.Close()

	// 4. Warm the catalog so the first render has data; this degrades to
	// the fallback catalog internally and cannot fail.
	serviceOpts.Catalog.Load(ctx)

	// 5. Build the router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	serviceOpts.Handler.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.TimeoutRead,
		WriteTimeout: cfg.HTTPServer.TimeoutWrite,
		IdleTimeout:  cfg.HTTPServer.TimeoutIdle,
	}

	// 6. Start the HTTP server in the background
	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 7. Wait for a shutdown signal or a server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case sig := <-sigCh:
		log.Info("shutting down gracefully", "signal", sig.String())
	}

	if err := httpServer.Shutdown(context.Background()); err != nil {
		log.Warn("HTTP server shutdown error", "error", err)
	}

	return nil
}
