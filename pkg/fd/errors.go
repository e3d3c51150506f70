package fd

import (
	"errors"
	"fmt"
)

// ErrDomainEmpty is returned when a mutation would remove the last
// remaining value from a variable's domain.
var ErrDomainEmpty = errors.New("fd: domain would become empty")

// ErrValueNotInDomain is returned by Instantiate when the requested value
// is not currently a member of the domain.
var ErrValueNotInDomain = errors.New("fd: value not in domain")

// ErrPredicateViolated is returned by a Predicate propagator when every
// watched variable is ground but the combined assignment fails the
// predicate's check.
var ErrPredicateViolated = errors.New("fd: predicate violated")

// PropagationFailure is returned by the propagation engine when a
// propagator reports a contradiction while processing a triggering
// update. It wraps the propagator and update responsible so callers using
// errors.As can recover the context; the search driver itself only cares
// that propagation failed and discards the offending SearchState.
type PropagationFailure struct {
	Prop   PropID
	Update DomainUpdate
	Err    error
}

// Error implements the error interface.
func (f *PropagationFailure) Error() string {
	return fmt.Sprintf("fd: propagator %s failed on %s: %v", f.Prop, f.Update, f.Err)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (f *PropagationFailure) Unwrap() error {
	return f.Err
}
