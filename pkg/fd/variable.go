package fd

import "fmt"

// Variable is the capability contract a concrete domain representation
// must satisfy to participate in the engine. T is the user-supplied value
// type; it is constrained to comparable so that domain membership can be
// tested with a plain map or sorted-slice search, and so that Go's normal
// value-assignment semantics already give "deep copy" for free at the
// value level (only the container needs an explicit Clone).
type Variable[T comparable] interface {
	// ID returns the owning VarStore's handle for this variable.
	ID() VarID
	// SetID assigns the owning handle. Called once, by VarStore.CreateVar.
	SetID(VarID)

	// Size returns the number of values currently in the domain.
	Size() int
	// Contains reports whether v is currently a member of the domain.
	Contains(v T) bool
	// Value returns the variable's single value and true if the domain is
	// a singleton; otherwise the zero value and false.
	Value() (T, bool)
	// Possibilities returns the domain's values in the implementation's
	// deterministic iteration order. Callers must not mutate the returned
	// slice.
	Possibilities() []T

	// Remove removes v from the domain, classifying the result:
	//   - v not present:            Unchanged, nil
	//   - present, >1 left after:   Reduced, nil
	//   - present, 1 left after:    Fixed, nil
	//   - present, 0 left after:    zero value, ErrDomainEmpty
	Remove(v T) (DomainUpdate, error)

	// Instantiate collapses the domain to {v}, classifying the result:
	//   - v not present:            zero value, ErrValueNotInDomain
	//   - v present, already alone: Unchanged, nil
	//   - v present, others too:    Fixed, nil
	Instantiate(v T) (DomainUpdate, error)

	// Clone returns an independent deep copy of the variable: mutating
	// the clone must never affect the receiver or vice versa.
	Clone() Variable[T]

	fmt.Stringer
}
