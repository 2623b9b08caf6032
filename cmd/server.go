package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"cab-dispatch/internal/wire"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// APIServer serves the router and, when configured, the inbound location
// stream until ctx is cancelled.
func APIServer(ctx context.Context, app *wire.App, port string, logger *zap.Logger) error {
	// request contexts derive from baseCtx so open SSE streams end on shutdown
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	consumerCtx, cancelConsumer := context.WithCancel(ctx)
	defer cancelConsumer()

	consumerDone := make(chan struct{})
	if app.Consumer != nil {
		go func() {
			defer close(consumerDone)
			if err := app.Consumer.Run(consumerCtx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- fmt.Errorf("location consumer: %w", err)
			}
		}()
	} else {
		close(consumerDone)
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errCh:
		logger.Error("Component failed, shutting down", zap.Error(runErr))
	}

	cancelConsumer()
	<-consumerDone

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	srv.RegisterOnShutdown(cancelBase)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, fmt.Errorf("http server shutdown: %w", err))
	}

	logger.Info("HTTP server stopped")
	return runErr
}
