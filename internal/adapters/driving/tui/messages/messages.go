// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/namereg/internal/core/domain"
)

// NamesLoaded carries the current registry contents back to the model.
type NamesLoaded struct {
	Names []domain.StoredName
	Err   error
}

// NameAdded reports the outcome of a registration.
type NameAdded struct {
	Name     domain.StoredName
	Greeting string
	Err      error
}
