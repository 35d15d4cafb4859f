// Package server provides HTTP server implementation for the InduSign API.
//
// This file contains general API documentation annotations for Swag/OpenAPI generation.
// The served document at /openapi.json is built from service metadata at
// startup; these annotations describe the same surface for tooling.
package server

// @title InduSign API
// @version 1.0.0
// @description eSignature Application Backend API
//
// @contact.name InduSign
//
// @host localhost:8000
// @BasePath /
