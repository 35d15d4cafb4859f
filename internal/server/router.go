package server

import (
	"net/http"

	"github.com/indusign/indusign/internal/server/handlers"
	"github.com/indusign/indusign/internal/server/middleware"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	s.registerRoutes(mux, s.handlers)

	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes. Patterns carry no method so that
// wrong-method requests reach GetOnly and get a JSON 405.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	mux.HandleFunc("/{$}", handlers.GetOnly(h.HandleRoot))
	mux.HandleFunc("/health", handlers.GetOnly(h.HandleHealth))
	mux.HandleFunc("/api/health", handlers.GetOnly(h.HandleAPIHealth))

	// OpenAPI document endpoints
	if s.config.DocsEnabled {
		mux.HandleFunc("/openapi.json", handlers.GetOnly(h.HandleOpenAPIJSON))
		mux.HandleFunc("/openapi.yaml", handlers.GetOnly(h.HandleOpenAPIYAML))
	}

	// Metrics endpoint (optional)
	if s.metrics != nil {
		mux.Handle("/metrics", handlers.GetOnly(s.metrics.Handler().ServeHTTP))
	}

	// Everything else
	mux.HandleFunc("/", h.HandleNotFound)
}

// applyMiddleware wraps handler with the middleware chain, outermost first.
// Recovery sits inside Logger and Instrument so a panicking request is still
// logged and counted. Nothing below Instrument may replace the request: the
// outer layers read the matched pattern the mux stores on it.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(s.logger),
		middleware.Instrument(s.metrics),
		middleware.Recovery(s.logger),
		middleware.CORS(s.config.CORS()),
		middleware.RateLimit(s.limiter),
	)(handler)
}
