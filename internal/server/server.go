// Package server owns the process lifecycle of `storerating serve`.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/storerating/config"
	"github.com/shashiranjanraj/storerating/internal/kernel"
	"github.com/shashiranjanraj/storerating/pkg/cache"
	"github.com/shashiranjanraj/storerating/pkg/database"
	"github.com/shashiranjanraj/storerating/pkg/logger"
	"github.com/shashiranjanraj/storerating/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Start connects dependencies, serves until SIGINT/SIGTERM and then drains
// in-flight requests.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	closeLogs := enableMongoLogs(ctx)
	defer closeLogs()

	if err := database.Connect(); err != nil {
		return err
	}
	defer database.Close()

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           kernel.Handler(database.DB, newLimiter(ctx)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	defer cache.Close()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// newLimiter prefers the shared Redis window and falls back to a
// per-process one when Redis is unreachable.
func newLimiter(ctx context.Context) middleware.Limiter {
	max, window := config.RateLimitMax(), config.RateLimitWindow()

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	err := cache.Connect(pingCtx)
	if err == nil {
		logger.Info("server: rate limiting via redis", "addr", config.RedisAddr())
		return middleware.NewRedisLimiter(cache.RDB, max, window)
	}
	logger.Warn("server: redis unavailable, rate limiting per process", "error", err)

	mem := middleware.NewMemoryLimiter(max, window)
	go func() {
		t := time.NewTicker(window)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				mem.Sweep()
			}
		}
	}()
	return mem
}

// enableMongoLogs adds the MongoDB sink when LOG_MONGO_URI is set and
// returns its flush function.
func enableMongoLogs(ctx context.Context) func() {
	uri := config.LogMongoURI()
	if uri == "" {
		return func() {}
	}
	h, err := logger.NewMongoHandler(ctx, uri, config.LogMongoDatabase(), "logs")
	if err != nil {
		logger.Warn("server: mongo log sink disabled", "error", err)
		return func() {}
	}
	logger.Use(h)
	return func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.Close(closeCtx)
	}
}
