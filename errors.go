package centipede

import (
	"github.com/pkg/errors"
)

// Errors returned by the builder and solver. Returned errors wrap one of
// these with context; match them with errors.Is or errors.Cause.
var (
	// ErrInvalidArgument is returned when the number of rounds is not positive.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownActor is returned when a decision node has a missing or
	// malformed actor.
	ErrUnknownActor = errors.New("unknown actor")
	// ErrDivisionByZero is returned when the equilibrium payoffs sum to zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrStructuralViolation is returned when a node does not have the shape
	// the solver requires, e.g. a missing or unresolved child.
	ErrStructuralViolation = errors.New("structural violation")
)
