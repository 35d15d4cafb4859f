package application

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/indusign/indusign/internal/server"
	"github.com/indusign/indusign/pkg/service"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    ServerConfigFunc: func(*cobra.Command) (server.Config, error) {
//	        cfg := server.DefaultConfig()
//	        cfg.Host = "127.0.0.1"
//	        return cfg, nil
//	    },
//	}
//	cmd := serve.NewCommand(mock)
type Mock struct {
	LoggerFunc       func() *zerolog.Logger
	MetadataFunc     func() service.Metadata
	ServerConfigFunc func(cmd *cobra.Command) (server.Config, error)
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string

	mu     sync.Mutex
	server *server.Server
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// Metadata returns metadata using the mock function or service.Default.
func (m *Mock) Metadata() service.Metadata {
	if m.MetadataFunc != nil {
		return m.MetadataFunc()
	}
	return service.Default()
}

// ServerConfig returns the mock function's config or server.DefaultConfig.
func (m *Mock) ServerConfig(cmd *cobra.Command) (server.Config, error) {
	if m.ServerConfigFunc != nil {
		return m.ServerConfigFunc(cmd)
	}
	return server.DefaultConfig(), nil
}

// SetServer records srv.
func (m *Mock) SetServer(srv *server.Server) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.server = srv
}

// TakeServer returns the recorded server once.
func (m *Mock) TakeServer() *server.Server {
	m.mu.Lock()
	defer m.mu.Unlock()
	srv := m.server
	m.server = nil
	return srv
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
