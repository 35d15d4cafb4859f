package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/indusign/indusign/pkg/constants"
	"github.com/indusign/indusign/pkg/logging"
)

// maxRequestIDLength caps client-supplied ids before they reach the logs.
const maxRequestIDLength = 128

// RequestID assigns every request a correlation id. A client-supplied
// X-Request-ID is kept when it is short enough; otherwise a UUIDv4 is used.
// The id is echoed on the response and stored in the request context.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(constants.HeaderRequestID)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.NewString()
			}

			w.Header().Set(constants.HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), id)))
		})
	}
}
