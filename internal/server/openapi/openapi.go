// Package openapi builds the OpenAPI 3.1 description of the InduSign HTTP API.
//
// The document is rendered once from the service metadata and served by the
// API server at:
//
//	GET /openapi.json
//	GET /openapi.yaml
package openapi

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/indusign/indusign/pkg/service"
)

// Version is the OpenAPI version of the generated document.
const Version = "3.1.0"

// Document is the root of an OpenAPI document.
type Document struct {
	OpenAPI    string              `json:"openapi" yaml:"openapi"`
	Info       Info                `json:"info" yaml:"info"`
	Paths      map[string]PathItem `json:"paths" yaml:"paths"`
	Components Components          `json:"components" yaml:"components"`
}

// Info carries the API title, description and version.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version" yaml:"version"`
}

// PathItem lists the operations available on a path.
type PathItem struct {
	Get *Operation `json:"get,omitempty" yaml:"get,omitempty"`
}

// Operation describes a single API operation.
type Operation struct {
	Summary     string              `json:"summary" yaml:"summary"`
	OperationID string              `json:"operationId" yaml:"operationId"`
	Tags        []string            `json:"tags,omitempty" yaml:"tags,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
}

// Response describes one response of an operation.
type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType binds a schema to a content type.
type MediaType struct {
	Schema Schema `json:"schema" yaml:"schema"`
}

// Schema is the subset of JSON Schema the document needs.
type Schema struct {
	Ref        string            `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type       string            `json:"type,omitempty" yaml:"type,omitempty"`
	Properties map[string]Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required   []string          `json:"required,omitempty" yaml:"required,omitempty"`
	Example    any               `json:"example,omitempty" yaml:"example,omitempty"`
}

// Components holds reusable schemas.
type Components struct {
	Schemas map[string]Schema `json:"schemas" yaml:"schemas"`
}

// Build returns the OpenAPI document for the service described by meta.
func Build(meta service.Metadata) Document {
	return Document{
		OpenAPI: Version,
		Info: Info{
			Title:       meta.Name,
			Description: meta.Description,
			Version:     meta.Version,
		},
		Paths: map[string]PathItem{
			"/": {Get: &Operation{
				Summary:     "Service banner",
				OperationID: "root",
				Tags:        []string{"meta"},
				Responses:   jsonResponse("Service is running", "RootResponse"),
			}},
			"/health": {Get: &Operation{
				Summary:     "Health check",
				OperationID: "health",
				Tags:        []string{"health"},
				Responses:   jsonResponse("Service is healthy", "HealthResponse"),
			}},
			"/api/health": {Get: &Operation{
				Summary:     "API health check",
				OperationID: "apiHealth",
				Tags:        []string{"health"},
				Responses:   jsonResponse("API is healthy", "APIHealthResponse"),
			}},
		},
		Components: Components{
			Schemas: map[string]Schema{
				"RootResponse": object(map[string]Schema{
					"message": {Type: "string", Example: meta.RunningMessage()},
				}),
				"HealthResponse": object(map[string]Schema{
					"status":  {Type: "string", Example: "healthy"},
					"service": {Type: "string", Example: meta.ServiceID},
					"version": {Type: "string", Example: meta.Version},
				}),
				"APIHealthResponse": object(map[string]Schema{
					"status":  {Type: "string", Example: "healthy"},
					"api":     {Type: "string", Example: meta.ServiceID},
					"version": {Type: "string", Example: meta.Version},
				}),
				"Error": object(map[string]Schema{
					"detail": {Type: "string", Example: "Not Found"},
				}),
			},
		},
	}
}

// JSON renders the document as indented JSON.
func (d Document) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling openapi json: %w", err)
	}
	return data, nil
}

// YAML renders the document as YAML.
func (d Document) YAML() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshaling openapi yaml: %w", err)
	}
	return data, nil
}

func jsonResponse(description, schema string) map[string]Response {
	return map[string]Response{
		"200": {
			Description: description,
			Content: map[string]MediaType{
				"application/json": {Schema: Schema{Ref: "#/components/schemas/" + schema}},
			},
		},
	}
}

func object(props map[string]Schema) Schema {
	required := make([]string, 0, len(props))
	for name := range props {
		required = append(required, name)
	}
	slices.Sort(required)
	return Schema{Type: "object", Properties: props, Required: required}
}
