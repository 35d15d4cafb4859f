package handlers

import (
	"net/http"

	"github.com/indusign/indusign/internal/server/response"
)

// RootResponse is the body of GET /.
type RootResponse struct {
	Message string `json:"message"`
}

// HandleRoot handles GET /.
// @Summary Service banner
// @Description Reports that the API process is up
// @Tags meta
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get].
func (h *Handlers) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, RootResponse{Message: h.meta.RunningMessage()})
}
