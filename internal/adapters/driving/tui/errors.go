// Package tui provides an interactive terminal browser for the registry.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import "errors"

// ErrMissingGreetingService is returned when the greeting service is not provided.
var ErrMissingGreetingService = errors.New("tui: greeting service is required")

// ErrMissingNameService is returned when the name service is not provided.
var ErrMissingNameService = errors.New("tui: name service is required")
