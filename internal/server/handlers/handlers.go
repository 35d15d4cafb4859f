package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/indusign/indusign/internal/server/openapi"
	"github.com/indusign/indusign/internal/server/response"
	"github.com/indusign/indusign/pkg/service"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	meta     service.Metadata
	specJSON []byte
	specYAML []byte
}

// New creates a new Handlers instance for meta. The OpenAPI document is
// rendered here once so requests only copy bytes.
func New(meta service.Metadata, logger *zerolog.Logger) (*Handlers, error) {
	doc := openapi.Build(meta)

	specJSON, err := doc.JSON()
	if err != nil {
		return nil, err
	}
	specYAML, err := doc.YAML()
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("openapi", openapi.Version).
		Int("json_bytes", len(specJSON)).
		Int("yaml_bytes", len(specYAML)).
		Msg("Rendered OpenAPI document")

	return &Handlers{
		meta:     meta,
		specJSON: specJSON,
		specYAML: specYAML,
	}, nil
}

// Metadata returns the metadata the handlers report.
func (h *Handlers) Metadata() service.Metadata {
	return h.meta
}

// GetOnly restricts handler to GET requests. Other methods, HEAD included,
// receive a JSON 405 with an Allow header.
func GetOnly(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, http.MethodGet)
			return
		}
		handler(w, r)
	}
}

// HandleNotFound answers any path without a registered route.
func (h *Handlers) HandleNotFound(w http.ResponseWriter, _ *http.Request) {
	response.NotFound(w)
}
