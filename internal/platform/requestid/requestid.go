package requestid

import "github.com/google/uuid"

// Generator creates opaque request identifiers for outgoing calls.
type Generator interface {
	New() string
}

type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}
