// Package response provides HTTP response helpers for the InduSign API server.
// Success bodies are written as compact JSON exactly as the handler shapes them;
// failures use a single-field {"detail": "..."} body. CORS preflight
// rejections are plain text.
package response

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
)

// Error is the body of every non-2xx response produced by the server itself.
type Error struct {
	Detail string `json:"detail"`
}

// JSON writes v as compact JSON with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"detail":"Internal Server Error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	// Write errors are ignored as headers are already sent (best effort)
	_, _ = w.Write(body)
}

// Text writes a plain-text body with the given status.
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// OK writes a successful response with 200 status.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Fail writes a detail error body using the status text as the message.
func Fail(w http.ResponseWriter, status int) {
	JSON(w, status, Error{Detail: http.StatusText(status)})
}

// NotFound writes a 404 error response.
func NotFound(w http.ResponseWriter) {
	Fail(w, http.StatusNotFound)
}

// MethodNotAllowed writes a 405 error response advertising the allowed methods.
func MethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		allow := allowed[0]
		for _, m := range allowed[1:] {
			allow += ", " + m
		}
		w.Header().Set("Allow", allow)
	}
	Fail(w, http.StatusMethodNotAllowed)
}

// RateLimited writes a 429 error response.
func RateLimited(w http.ResponseWriter, retryAfterSeconds int) {
	if retryAfterSeconds > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	}
	Fail(w, http.StatusTooManyRequests)
}

// InternalError writes a 500 error response without exposing the cause.
func InternalError(w http.ResponseWriter) {
	Fail(w, http.StatusInternalServerError)
}
