package app

import (
	"github.com/spf13/cobra"

	"github.com/indusign/indusign/cmd/indusign/cmd/serve"
	"github.com/indusign/indusign/cmd/indusign/cmd/version"
	"github.com/indusign/indusign/internal/cmd/application"
	"github.com/indusign/indusign/internal/server"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// CreateServeCommand creates the serve command with app dependencies.
func (a *App) CreateServeCommand() *cobra.Command {
	return serve.NewCommand(a)
}

// CreateVersionCommand creates the version command with app dependencies.
func (a *App) CreateVersionCommand() *cobra.Command {
	return version.NewCommand(a)
}

// ServerConfig merges cmd's serve flags into the configuration and validates it.
func (a *App) ServerConfig(cmd *cobra.Command) (server.Config, error) {
	if err := bindServeFlags(a.viper, cmd); err != nil {
		return server.Config{}, err
	}
	return serverConfig(a.viper)
}

// SetServer records the running API server.
func (a *App) SetServer(srv *server.Server) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.server = srv
}

// TakeServer hands the running server to the shutdown path exactly once.
func (a *App) TakeServer() *server.Server {
	a.mu.Lock()
	defer a.mu.Unlock()
	srv := a.server
	a.server = nil
	return srv
}
