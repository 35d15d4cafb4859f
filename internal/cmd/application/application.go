// Package application defines what CLI subcommands need from the indusign
// application container. Commands depend on this interface rather than on
// cmd/indusign/app, which keeps them testable with Mock.
package application

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/indusign/indusign/internal/server"
	"github.com/indusign/indusign/pkg/service"
)

// Application is the dependency surface shared by all subcommands.
type Application interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// Metadata returns the service metadata the API reports.
	Metadata() service.Metadata

	// ServerConfig merges cmd's flags over the loaded configuration and
	// returns the validated server settings.
	ServerConfig(cmd *cobra.Command) (server.Config, error)

	// SetServer records the running API server so the process can stop its
	// background services on exit.
	SetServer(srv *server.Server)

	// TakeServer returns the running server and forgets it, so shutdown
	// happens once.
	TakeServer() *server.Server

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
