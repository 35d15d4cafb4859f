// Package handlers provides HTTP request handlers for the InduSign API.
//
// Handlers are organized by concern:
//
//   - root.go: service banner
//   - health.go: service and API health checks
//   - openapi.go: OpenAPI 3.1 document endpoints
//
// Every handler is a pure function of the immutable service metadata. Routes
// accept GET only; any other method is answered with a JSON 405 through
// GetOnly.
package handlers

//go:generate gomarkdoc --output README.md .
