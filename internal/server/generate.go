// Package server provides HTTP server implementation for the InduSign API.
//
// The server package keeps a small layered architecture:
//
//   - Server: Core server struct with lifecycle management
//   - Config: Listener, CORS, rate limit and timeout settings
//   - Router: Route registration and middleware chain
//   - Handlers: HTTP request handlers (see the handlers package)
//
// The architecture follows the pattern: CLI → App → Server → Router → Handlers
//
// Usage:
//
//	cfg := server.DefaultConfig()
//	cfg.Port = 8000
//
//	srv, err := server.New(service.Default(), cfg, logger)
//	if err != nil {
//	    return err
//	}
//
//	srv.Start() // Start background services
//	http.ListenAndServe(cfg.Addr(), srv.Handler())
package server

//go:generate gomarkdoc --output README.md .
