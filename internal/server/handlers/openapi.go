package handlers

import (
	"net/http"
	"strconv"
)

// HandleOpenAPIJSON serves the OpenAPI 3.1 document in JSON format.
// @Summary Get OpenAPI document (JSON)
// @Description Returns the OpenAPI 3.1 document for this API in JSON format
// @Tags meta
// @Produce json
// @Success 200 {object} object "OpenAPI 3.1 document"
// @Router /openapi.json [get].
func (h *Handlers) HandleOpenAPIJSON(w http.ResponseWriter, _ *http.Request) {
	writeDocument(w, "application/json", h.specJSON)
}

// HandleOpenAPIYAML serves the OpenAPI 3.1 document in YAML format.
// @Summary Get OpenAPI document (YAML)
// @Description Returns the OpenAPI 3.1 document for this API in YAML format
// @Tags meta
// @Produce application/x-yaml
// @Success 200 {string} string "OpenAPI 3.1 document"
// @Router /openapi.yaml [get].
func (h *Handlers) HandleOpenAPIYAML(w http.ResponseWriter, _ *http.Request) {
	writeDocument(w, "application/x-yaml", h.specYAML)
}

func writeDocument(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Cache-Control", "public, max-age=3600") // Cache for 1 hour
	_, _ = w.Write(body)
}
