package fd

// Propagator is the uniform constraint interface. Implementations hold
// whatever internal state they need (typically the set of VarIDs they
// watch) and mutate the VarStore via its variables' Remove/Instantiate,
// reporting every induced DomainUpdate back to the engine so it can be
// queued for further propagation.
type Propagator[T comparable] interface {
	// InitialPropagation is called once, at the start of search, in
	// registration order. It has two responsibilities: subscribe to
	// every variable the propagator cares about (via vars.Subscribe), and
	// perform any pruning deducible purely from the variables' current
	// domains, returning the induced updates.
	InitialPropagation(vars *VarStore[T]) (map[DomainUpdate]struct{}, error)

	// Propagate is called whenever a subscribed variable changed. It
	// returns the set of further updates caused by whatever pruning it
	// performs. It must be idempotent with respect to being re-invoked on
	// an Unchanged update: such a call must return an empty set (or a set
	// containing only Unchanged updates).
	Propagate(vars *VarStore[T], update DomainUpdate) (map[DomainUpdate]struct{}, error)

	// CloneProp returns a deep, independent copy of the propagator's
	// internal state, for use when a SearchState is cloned to branch.
	CloneProp() Propagator[T]

	// SetID is called by PropSet at registration time.
	SetID(PropID)
	// ID returns the handle assigned at registration.
	ID() PropID
}
