package services

import "github.com/custodia-labs/namereg/internal/core/ports/driving"

// Ensure GreetingService implements the interface.
var _ driving.GreetingService = (*GreetingService)(nil)

// Greet returns "Hello " followed by name, untouched.
func Greet(name string) string {
	return "Hello " + name
}

// GreetingService is the stateless greeting formatter.
type GreetingService struct{}

// NewGreetingService creates a new greeting service.
func NewGreetingService() *GreetingService {
	return &GreetingService{}
}

// Greet returns "Hello {name}".
func (*GreetingService) Greet(name string) string {
	return Greet(name)
}
