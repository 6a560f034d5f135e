package driving

// GreetingService formats salutations.
type GreetingService interface {
	// Greet returns "Hello {name}" with name substituted verbatim.
	Greet(name string) string
}
