package registration

import "github.com/google/uuid"

// ID identifies one registrant within a store.
type ID string

// NewID returns a fresh time-ordered identifier (UUID version 7).
// Ids generated later compare greater, so sorting by ID follows activation
// order.
func NewID() ID {
	return ID(uuid.Must(uuid.NewV7()).String())
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}
