package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	// A required name parameter that is absent or empty is reported this way.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorageUnavailable indicates the persistence medium could not complete
	// a read or write. It is never retried by the core.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrNotImplemented indicates functionality is not yet available.
	// Services return it when they were wired without a store.
	ErrNotImplemented = errors.New("not implemented")
)
