package fd

import "fmt"

// DomainUpdateKind classifies the effect a mutation had on a variable's
// domain.
type DomainUpdateKind uint8

const (
	// Unchanged means the mutation was a no-op: the value was already
	// absent on a Remove, or the domain was already the requested
	// singleton on an Instantiate.
	Unchanged DomainUpdateKind = iota
	// Reduced means one or more values were removed and more than one
	// value remains.
	Reduced
	// Fixed means exactly one value remains; the variable is now ground.
	Fixed
)

// String renders the kind for diagnostics.
func (k DomainUpdateKind) String() string {
	switch k {
	case Unchanged:
		return "Unchanged"
	case Reduced:
		return "Reduced"
	case Fixed:
		return "Fixed"
	default:
		return fmt.Sprintf("DomainUpdateKind(%d)", uint8(k))
	}
}

// DomainUpdate describes the effect of one mutation on one variable. It is
// a plain comparable struct so it can be used as a map key (the
// propagation engine's worklist de-duplicates nothing, but propagators
// return sets of updates as map[DomainUpdate]struct{}, mirroring the
// Rust original's HashSet<DomainUpdate>).
//
// A mutation that would leave a domain empty is never represented as a
// DomainUpdate; it is reported as an error (see errors.go).
type DomainUpdate struct {
	Kind DomainUpdateKind
	ID   VarID
}

// VarID returns the variable the update concerns.
func (u DomainUpdate) VarID() VarID {
	return u.ID
}

// String renders the update for diagnostics, e.g. "Fixed(v3)".
func (u DomainUpdate) String() string {
	return fmt.Sprintf("%s(%s)", u.Kind, u.ID)
}
