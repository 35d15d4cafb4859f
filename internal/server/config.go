package server

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/indusign/indusign/internal/server/middleware"
	"github.com/indusign/indusign/pkg/constants"
	"github.com/indusign/indusign/pkg/errors"
)

// Config holds server configuration.
type Config struct {
	// Listener settings
	Host string
	Port int

	// CORS settings
	CORSOrigins     []string
	CORSCredentials bool

	// Performance settings
	RateLimit  int  // Requests per minute per client (0 to disable)
	TrustProxy bool // Key rate limit clients on X-Forwarded-For

	// HTTP timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Features
	MetricsEnabled bool
	DocsEnabled    bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:            constants.DefaultHost,
		Port:            constants.DefaultPort,
		CORSOrigins:     []string{constants.Wildcard},
		CORSCredentials: true,
		RateLimit:       0,
		ReadTimeout:     constants.DefaultReadTimeout,
		WriteTimeout:    constants.DefaultWriteTimeout,
		IdleTimeout:     constants.DefaultIdleTimeout,
		ShutdownTimeout: constants.DefaultShutdownTimeout,
		MetricsEnabled:  true,
		DocsEnabled:     true,
	}
}

// Validate checks the listener and policy settings.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return errors.NewConfigError("server", "host cannot be empty", nil)
	}
	if c.Port < constants.MinPort || c.Port > constants.MaxPort {
		return errors.NewConfigError("server",
			"port "+strconv.Itoa(c.Port)+" out of range 1-65535", nil)
	}
	if len(c.CORSOrigins) == 0 {
		return errors.NewConfigError("cors", "at least one allowed origin is required", nil)
	}
	if c.RateLimit < 0 {
		return errors.NewConfigError("ratelimit", "rate limit cannot be negative", nil)
	}
	for name, d := range map[string]time.Duration{
		"read timeout":     c.ReadTimeout,
		"write timeout":    c.WriteTimeout,
		"idle timeout":     c.IdleTimeout,
		"shutdown timeout": c.ShutdownTimeout,
	} {
		if d < 0 {
			return errors.NewConfigError("server", name+" cannot be negative", nil)
		}
	}
	return nil
}

// Addr returns the host:port the listener binds to.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// CORS returns the cross-origin policy for this configuration.
func (c Config) CORS() middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	cors.AllowedOrigins = c.CORSOrigins
	cors.AllowCredentials = c.CORSCredentials
	return cors
}
