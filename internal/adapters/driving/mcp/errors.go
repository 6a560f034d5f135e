// Package mcp provides an MCP (Model Context Protocol) server adapter for namereg.
// It exposes greeting, registration and listing to AI assistants as tools, plus
// the full registry as a readable resource.
package mcp

import "errors"

var (
	// ErrMissingGreetingService is returned when the greeting service is not provided.
	ErrMissingGreetingService = errors.New("mcp: greeting service is required")

	// ErrMissingNameService is returned when the name service is not provided.
	ErrMissingNameService = errors.New("mcp: name service is required")
)
