package tui

import (
	"github.com/custodia-labs/namereg/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Greeter formats the greeting shown after each registration.
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
