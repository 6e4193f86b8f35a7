// README: Identifier type shared by rides, drivers and riders.
package types

import "github.com/google/uuid"

type ID string

func NewID() ID {
	return ID(uuid.NewString())
}

// OrNew returns id unchanged, or a fresh ID when id is empty.
func (id ID) OrNew() ID {
	if id == "" {
		return NewID()
	}
	return id
}
