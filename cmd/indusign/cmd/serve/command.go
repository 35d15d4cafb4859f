// Package serve provides the HTTP server command for the indusign CLI.
package serve

import (
	"github.com/spf13/cobra"

	"github.com/indusign/indusign/internal/cmd/application"
	"github.com/indusign/indusign/internal/server"
)

// NewCommand creates the serve command using app context.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server"},
		Short:   "Start the InduSign API server",
		Long: `Start the InduSign eSignature backend API.

Routes:
  GET /             service banner
  GET /health       service health check
  GET /api/health   API health check
  GET /openapi.json OpenAPI 3.1 document (also /openapi.yaml)
  GET /metrics      Prometheus metrics

Every response carries CORS headers. The server shuts down gracefully on
SIGINT or SIGTERM, draining connections for up to --shutdown-timeout.`,
		Example: `  # Start on the default address 0.0.0.0:8000
  indusign serve

  # Custom port, restricted origins
  indusign serve --port 9000 --cors-origins "https://app.indusign.example"

  # Enable rate limiting behind a reverse proxy
  indusign serve --rate-limit 120 --trust-proxy`,
		RunE: Run(app),
	}

	AddFlags(cmd)

	return cmd
}

// AddFlags registers the server flags on cmd. Defaults mirror
// server.DefaultConfig so help output is accurate.
func AddFlags(cmd *cobra.Command) {
	defaults := server.DefaultConfig()

	cmd.Flags().String("host", defaults.Host, "Bind address")
	cmd.Flags().IntP("port", "p", defaults.Port, "Server port")

	cmd.Flags().StringSlice("cors-origins", defaults.CORSOrigins, "Allowed CORS origins (comma-separated, * for any)")
	cmd.Flags().Bool("cors-credentials", defaults.CORSCredentials, "Allow credentialed cross-origin requests")

	cmd.Flags().Int("rate-limit", defaults.RateLimit, "Requests per minute per client (0 to disable)")
	cmd.Flags().Bool("trust-proxy", defaults.TrustProxy, "Identify rate limited clients by X-Forwarded-For")

	cmd.Flags().Duration("read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", defaults.WriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", defaults.IdleTimeout, "HTTP idle timeout")
	cmd.Flags().Duration("shutdown-timeout", defaults.ShutdownTimeout, "Graceful shutdown timeout")

	cmd.Flags().Bool("metrics", defaults.MetricsEnabled, "Enable /metrics endpoint")
	cmd.Flags().Bool("docs", defaults.DocsEnabled, "Enable /openapi.json and /openapi.yaml")
}
