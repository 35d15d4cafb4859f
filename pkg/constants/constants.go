// Package constants provides shared constants used throughout the indusign codebase.
// This includes listener defaults, timeouts and limits that should be
// consistent across the application.
package constants

import "time"

// Listener defaults
const (
	// DefaultHost binds the API on all interfaces
	DefaultHost = "0.0.0.0"

	// DefaultPort is the port the API listens on when none is configured
	DefaultPort = 8000

	// MinPort and MaxPort bound a valid TCP port
	MinPort = 1
	MaxPort = 65535
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultReadTimeout is the HTTP server read timeout
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the HTTP server write timeout
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the HTTP server keep-alive idle timeout
	DefaultIdleTimeout = 120 * time.Second

	// DefaultShutdownTimeout bounds graceful connection draining
	DefaultShutdownTimeout = 30 * time.Second

	// ErrorShutdownTimeout bounds cleanup when the command itself failed
	ErrorShutdownTimeout = 5 * time.Second
)

// CORS defaults
const (
	// DefaultCORSMaxAge is how long browsers may cache a preflight result
	DefaultCORSMaxAge = 600 * time.Second

	// Wildcard matches any origin, method, or header
	Wildcard = "*"
)

// Limit constants
const (
	// RateLimitWindow is the window the per-client request budget refills over
	RateLimitWindow = time.Minute

	// RateLimitVisitorTTL is how long an idle client's limiter is retained
	RateLimitVisitorTTL = 10 * time.Minute

	// RateLimitCleanupInterval is how often idle limiters are evicted
	RateLimitCleanupInterval = 5 * time.Minute
)

// FilePermissions is the mode of log files created by the service (rw-r--r--)
const FilePermissions = 0644

// Header names used by the HTTP layer
const (
	// HeaderRequestID carries the per-request correlation id
	HeaderRequestID = "X-Request-ID"
)
