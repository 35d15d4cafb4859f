// Package app provides the application context and dependency management
// for the indusign CLI. It centralizes configuration, logging and the
// lifecycle of the API server.
package app

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/indusign/indusign/internal/server"
	"github.com/indusign/indusign/pkg/errors"
	"github.com/indusign/indusign/pkg/service"
)

// App represents the indusign application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	meta   service.Metadata
	config *Config
	viper  *viper.Viper
	logger *zerolog.Logger
	out    io.Writer

	// Running API server, set while serve is active
	mu     sync.Mutex
	server *server.Server
}

// New creates a new App instance with the given version information.
// Configuration is loaded from .env files, the environment and the default
// config file locations; flags are applied later by the root command.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		meta:    service.Default(),
	}

	loadEnvFiles()
	app.viper = newViper()

	config, err := LoadConfig(app.viper, "")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Metadata returns the service metadata the API reports.
func (a *App) Metadata() service.Metadata {
	return a.meta
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Shutdown stops the API server's background services if serve is running.
func (a *App) Shutdown(ctx context.Context) error {
	srv := a.TakeServer()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithMetadata replaces the default service metadata.
func WithMetadata(meta service.Metadata) Option {
	return func(a *App) error {
		if err := meta.Validate(); err != nil {
			return err
		}
		a.meta = meta
		return nil
	}
}

// WithOutput redirects command output, which defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}
