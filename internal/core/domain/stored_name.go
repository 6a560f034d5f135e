package domain

import (
	"fmt"
	"strings"
)

// StoredName is the single entity persisted by the registry.
//
// The identifier is a surrogate key assigned by the storage layer when the
// record is inserted. Callers cannot set it: NewStoredName yields an
// unpersisted value and only storage adapters rehydrate identifiers through
// RestoreStoredName.
type StoredName struct {
	id   int64
	name string
}

// NewStoredName returns an unpersisted record carrying name.
func NewStoredName(name string) StoredName {
	return StoredName{name: name}
}

// RestoreStoredName rebuilds a persisted record from storage.
// It is meant for storage adapters; the id must come from the store itself.
func RestoreStoredName(id int64, name string) StoredName {
	return StoredName{id: id, name: name}
}

// ID returns the surrogate key, or 0 if the record has not been persisted.
func (s StoredName) ID() int64 {
	return s.id
}

// Name returns the stored name.
func (s StoredName) Name() string {
	return s.name
}

// IsPersisted reports whether the storage layer has assigned an identifier.
func (s StoredName) IsPersisted() bool {
	return s.id != 0
}

// SameRecord reports whether s and other are the same persisted record.
// Unpersisted values are never the same record as anything.
func (s StoredName) SameRecord(other StoredName) bool {
	return s.IsPersisted() && s.id == other.id
}

// SameName reports whether s and other carry equal names, ignoring ids.
// It is value equality only; the store does not deduplicate on it.
func (s StoredName) SameName(other StoredName) bool {
	return s.name == other.name
}

// String renders the record as StoredName{id=1, name='Ada'}.
func (s StoredName) String() string {
	return fmt.Sprintf("StoredName{id=%d, name='%s'}", s.id, s.name)
}

// FormatStoredNames renders records in the order given as
// [StoredName{id=1, name='Ada'}, StoredName{id=2, name='Grace'}].
func FormatStoredNames(names []StoredName) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(names[i].String())
	}
	b.WriteByte(']')
	return b.String()
}

// ValidateName checks a name parameter received at a service boundary.
// present is false when the caller omitted the parameter entirely.
func ValidateName(name string, present bool) error {
	if !present {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	return nil
}
