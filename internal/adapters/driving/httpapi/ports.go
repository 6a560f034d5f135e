package httpapi

import (
	"errors"

	"github.com/custodia-labs/namereg/internal/core/ports/driving"
)

var (
	// ErrMissingGreetingService is returned when the greeting service is not provided.
	ErrMissingGreetingService = errors.New("httpapi: greeting service is required")

	// ErrMissingNameService is returned when the name service is not provided.
	ErrMissingNameService = errors.New("httpapi: name service is required")
)

// Ports aggregates the driving ports the router delegates to.
type Ports struct {
	Greeter driving.GreetingService
	Names   driving.NameService
}

// Validate ensures all required ports are set.
func (p Ports) Validate() error {
	if p.Greeter == nil {
		return ErrMissingGreetingService
	}
	if p.Names == nil {
		return ErrMissingNameService
	}
	return nil
}
