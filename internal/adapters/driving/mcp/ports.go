package mcp

import (
	"github.com/custodia-labs/namereg/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server delegates to.
type Ports struct {
	// Greeter formats greetings.
	Greeter driving.GreetingService

	// Names registers and lists names.
	Names driving.NameService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Greeter == nil {
		return ErrMissingGreetingService
	}
	if p.Names == nil {
		return ErrMissingNameService
	}
	return nil
}
