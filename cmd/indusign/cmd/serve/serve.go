package serve

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/indusign/indusign/internal/cmd/application"
	"github.com/indusign/indusign/internal/server"
	"github.com/indusign/indusign/pkg/constants"
	"github.com/indusign/indusign/pkg/errors"
)

// Run returns a cobra RunE that starts the API server and blocks until the
// command context ends. The root command uses it to serve by default.
func Run(app application.Application) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := app.ServerConfig(cmd)
		if err != nil {
			return err
		}
		logger := app.Logger()

		logger.Info().
			Str("host", cfg.Host).
			Int("port", cfg.Port).
			Strs("cors_origins", cfg.CORSOrigins).
			Bool("cors_credentials", cfg.CORSCredentials).
			Int("rate_limit", cfg.RateLimit).
			Bool("trust_proxy", cfg.TrustProxy).
			Bool("metrics", cfg.MetricsEnabled).
			Bool("docs", cfg.DocsEnabled).
			Msg("Starting API server")

		srv, err := server.New(app.Metadata(), cfg, logger)
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}
		app.SetServer(srv)
		srv.Start()

		listener, err := net.Listen("tcp", cfg.Addr())
		if err != nil {
			return errors.WrapResource("listen", "listener", cfg.Addr(), err)
		}

		httpServer := &http.Server{
			Handler:      srv.Handler(),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			ErrorLog:     log.New(logger, "", 0),
		}

		return startWithGracefulShutdown(cmd.Context(), httpServer, listener, app.TakeServer, logger, cfg.ShutdownTimeout, cmd.OutOrStdout())
	}
}

// startWithGracefulShutdown serves on listener until ctx is cancelled, then
// drains connections for at most timeout and stops background services.
func startWithGracefulShutdown(
	ctx context.Context,
	httpServer *http.Server,
	listener net.Listener,
	background func() *server.Server,
	logger *zerolog.Logger,
	timeout time.Duration,
	out io.Writer,
) error {
	if timeout <= 0 {
		timeout = constants.DefaultShutdownTimeout
	}
	addr := listener.Addr().String()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", addr).
			Str("service", "API").
			Msg("HTTP server listening")

		_, _ = fmt.Fprintf(out, "InduSign API listening on %s\n", addr)
		_, _ = fmt.Fprintln(out, "   Press Ctrl+C to stop")

		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	stopBackground := func(ctx context.Context) {
		if srv := background(); srv != nil {
			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn().Err(err).Msg("Background services shutdown had issues")
			}
		}
	}

	select {
	case err := <-serverErr:
		stopBackground(context.Background())
		return err
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received via context")
		_, _ = fmt.Fprintln(out, "\nShutting down API server...")

		// The parent context is already cancelled
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			stopBackground(shutdownCtx)
			return errors.WrapResource("shutdown", "server", addr, err)
		}
		stopBackground(shutdownCtx)

		logger.Info().Msg("Server stopped gracefully")
		_, _ = fmt.Fprintln(out, "API server stopped gracefully")
		return nil
	}
}
