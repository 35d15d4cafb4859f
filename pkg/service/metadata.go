// Package service describes the identity of the running InduSign API process.
//
// Metadata is created once at startup and handed to the server by value, so
// every handler observes the same immutable record for the process lifetime.
package service

import (
	"strings"

	"github.com/indusign/indusign/pkg/errors"
)

// Metadata identifies the service.
type Metadata struct {
	// Name is the human-facing API title.
	Name string `json:"name" yaml:"name"`

	// Description is a one-line summary of the API.
	Description string `json:"description" yaml:"description"`

	// Version is the API version reported by health endpoints.
	Version string `json:"version" yaml:"version"`

	// ServiceID is the machine-facing service identifier reported by health endpoints.
	ServiceID string `json:"service_id" yaml:"service_id"`
}

// Default returns the metadata of the InduSign backend.
func Default() Metadata {
	return Metadata{
		Name:        "InduSign API",
		Description: "eSignature Application Backend API",
		Version:     "1.0.0",
		ServiceID:   "indusign-backend",
	}
}

// Validate reports the first required field that is blank.
func (m Metadata) Validate() error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return errors.NewValidationError("name", m.Name, "cannot be empty")
	case strings.TrimSpace(m.Version) == "":
		return errors.NewValidationError("version", m.Version, "cannot be empty")
	case strings.TrimSpace(m.ServiceID) == "":
		return errors.NewValidationError("service_id", m.ServiceID, "cannot be empty")
	}
	return nil
}

// RunningMessage is the banner returned by the API root.
func (m Metadata) RunningMessage() string {
	return m.Name + " is running"
}
