// Package service defines the contracts of the collaborators the core consumes.
package service

// ListenerHandle is an owned registration with an event source.
type ListenerHandle interface {
	// Detach stops further deliveries. It is safe to call more than once.
	Detach()
}
