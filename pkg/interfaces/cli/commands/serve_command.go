package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/arashoo/Katena-project-management/pkg/infrastructure/config"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/events"
	"github.com/arashoo/Katena-project-management/pkg/infrastructure/metrics"
	"github.com/arashoo/Katena-project-management/pkg/interfaces/http/router"
)

const shutdownTimeout = 10 * time.Second

// ServeCommand runs the HTTP API until its context is cancelled
type ServeCommand struct {
	settings *config.Config
	logger   *zap.Logger
}

// NewServeCommand creates a serve command
func NewServeCommand(settings *config.Config, logger *zap.Logger) *ServeCommand {
	if settings == nil {
		settings = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServeCommand{settings: settings, logger: logger}
}

// Execute listens on the configured address and serves until ctx is done
func (c *ServeCommand) Execute(ctx context.Context) error {
	ln, err := net.Listen("tcp", c.settings.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.settings.HTTP.Addr, err)
	}
	return c.Serve(ctx, ln)
}

// Serve serves on ln and shuts down gracefully once ctx is done
func (c *ServeCommand) Serve(ctx context.Context, ln net.Listener) error {
	var recorder *metrics.Recorder
	if c.settings.Metrics.Enabled {
		recorder = metrics.NewRecorder()
	}

	shop, err := NewShop(c.settings, c.logger, recorder)
	if err != nil {
		_ = ln.Close()
		return err
	}
	if err := shop.Events().Subscribe(events.AllEventTypes, events.HandlerFunc(c.logEvent)); err != nil {
		_ = ln.Close()
		return fmt.Errorf("failed to subscribe to shop events: %w", err)
	}

	engine := router.NewEngine(shop, router.Options{
		Logger:      c.logger,
		Recorder:    recorder,
		MetricsPath: c.settings.Metrics.Path,
	})
	server := &http.Server{
		Handler:      engine,
		ReadTimeout:  c.settings.HTTP.ReadTimeout,
		WriteTimeout: c.settings.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		c.logger.Info("http server started",
			zap.String("addr", ln.Addr().String()),
			zap.String("env", c.settings.App.Env),
			zap.Bool("metrics", recorder != nil),
		)
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	c.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func (c *ServeCommand) logEvent(event events.Event) error {
	c.logger.Info("shop event",
		zap.String("event_type", event.Type()),
		zap.String("stream", event.StreamID()),
		zap.Int("version", event.Version()),
	)
	return nil
}
