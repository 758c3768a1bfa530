package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-backend/pkg/container"
	"blog-backend/pkg/logger"
)

// Serve builds the container, starts the HTTP server and blocks until
// a shutdown signal arrives.
func Serve() error {
	c, err := container.NewContainer()
	if err != nil {
		return err
	}
	defer c.Cleanup()

	router := SetupRouter(c)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", c.Config.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", map[string]interface{}{
			"port": c.Config.App.Port,
			"env":  c.Config.App.Env,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", map[string]interface{}{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info("server stopped", nil)
	return nil
}
