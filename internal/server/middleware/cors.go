package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/indusign/indusign/internal/server/response"
	"github.com/indusign/indusign/pkg/constants"
)

// preflightMethods is what a wildcard method list expands to on preflight.
var preflightMethods = []string{"DELETE", "GET", "HEAD", "OPTIONS", "PATCH", "POST", "PUT"}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// DefaultCORSConfig returns the permissive policy the API ships with:
// any origin, any method, any header, credentials allowed.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins:   []string{constants.Wildcard},
		AllowedMethods:   []string{constants.Wildcard},
		AllowedHeaders:   []string{constants.Wildcard},
		AllowCredentials: true,
		MaxAge:           constants.DefaultCORSMaxAge,
	}
}

// AllowsAnyOrigin reports whether the origin list is empty or contains "*".
func (c CORSConfig) AllowsAnyOrigin() bool {
	return len(c.AllowedOrigins) == 0 || slices.Contains(c.AllowedOrigins, constants.Wildcard)
}

// WildcardWithCredentials reports the any-origin plus credentials combination
// that browsers refuse to honor with a literal "*".
func (c CORSConfig) WildcardWithCredentials() bool {
	return c.AllowsAnyOrigin() && c.AllowCredentials
}

// CORS middleware adds CORS headers to every response and answers preflight
// requests without routing them.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	anyOrigin := config.AllowsAnyOrigin()
	anyMethod := len(config.AllowedMethods) == 0 || slices.Contains(config.AllowedMethods, constants.Wildcard)
	anyHeader := slices.Contains(config.AllowedHeaders, constants.Wildcard)

	simpleMethods := constants.Wildcard
	if !anyMethod {
		simpleMethods = strings.Join(config.AllowedMethods, ", ")
	}
	preflightAllowMethods := strings.Join(preflightMethods, ", ")
	if !anyMethod {
		preflightAllowMethods = simpleMethods
	}
	allowHeaders := strings.Join(config.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(int(config.MaxAge / time.Second))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			h := w.Header()

			if isPreflight(r) {
				var failures []string

				switch {
				case !anyOrigin && !isOriginAllowed(origin, config.AllowedOrigins):
					failures = append(failures, "origin")
				case anyOrigin && !config.AllowCredentials:
					h.Set("Access-Control-Allow-Origin", constants.Wildcard)
				default:
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
				if !anyMethod && !slices.Contains(config.AllowedMethods, r.Header.Get("Access-Control-Request-Method")) {
					failures = append(failures, "method")
				}

				if config.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				h.Set("Access-Control-Allow-Methods", preflightAllowMethods)
				requested := r.Header.Get("Access-Control-Request-Headers")
				if anyHeader {
					if requested != "" {
						h.Set("Access-Control-Allow-Headers", requested)
					}
				} else {
					if allowHeaders != "" {
						h.Set("Access-Control-Allow-Headers", allowHeaders)
					}
					if !headersAllowed(requested, config.AllowedHeaders) {
						failures = append(failures, "headers")
					}
				}
				if config.MaxAge > 0 {
					h.Set("Access-Control-Max-Age", maxAge)
				}

				if len(failures) > 0 {
					response.Text(w, http.StatusBadRequest, "Disallowed CORS "+strings.Join(failures, ", "))
					return
				}

				w.WriteHeader(http.StatusOK)
				return
			}

			switch {
			case anyOrigin && config.AllowCredentials && origin != "" && r.Header.Get("Cookie") != "":
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			case anyOrigin:
				h.Set("Access-Control-Allow-Origin", constants.Wildcard)
			case origin != "" && isOriginAllowed(origin, config.AllowedOrigins):
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			}

			if config.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
			h.Set("Access-Control-Allow-Methods", simpleMethods)
			if allowHeaders != "" {
				h.Set("Access-Control-Allow-Headers", allowHeaders)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isPreflight reports whether r is a CORS preflight request.
func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions &&
		r.Header.Get("Origin") != "" &&
		r.Header.Get("Access-Control-Request-Method") != ""
}

// safelistedHeaders may always be requested on preflight.
var safelistedHeaders = []string{"accept", "accept-language", "content-language", "content-type"}

// headersAllowed reports whether every header in the comma-separated
// requested list is safelisted or configured, ignoring case.
func headersAllowed(requested string, allowed []string) bool {
	for _, name := range strings.Split(requested, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || slices.Contains(safelistedHeaders, name) {
			continue
		}
		if !slices.ContainsFunc(allowed, func(a string) bool { return strings.EqualFold(a, name) }) {
			return false
		}
	}
	return true
}

// isOriginAllowed checks if an origin is in the allowed list.
func isOriginAllowed(origin string, allowed []string) bool {
	for _, o := range allowed {
		if o == constants.Wildcard || o == origin {
			return true
		}
	}
	return false
}
