package fd

// PropSet is an append-only registry of propagators, keyed by the PropID
// assigned at registration.
type PropSet[T comparable] struct {
	propagators []Propagator[T]
}

// NewPropSet creates an empty registry.
func NewPropSet[T comparable]() *PropSet[T] {
	return &PropSet[T]{}
}

// AddPropagator assigns p a fresh PropID (by registration order), calls
// p.SetID with it, stores p, and returns the handle.
func (s *PropSet[T]) AddPropagator(p Propagator[T]) PropID {
	id := PropID(len(s.propagators))
	p.SetID(id)
	s.propagators = append(s.propagators, p)
	return id
}

// Propagator returns the registered propagator for id.
func (s *PropSet[T]) Propagator(id PropID) Propagator[T] {
	return s.propagators[int(id)]
}

// PropIDs returns every handle this registry has issued, in registration
// order.
func (s *PropSet[T]) PropIDs() []PropID {
	ids := make([]PropID, len(s.propagators))
	for i := range s.propagators {
		ids[i] = PropID(i)
	}
	return ids
}

// Clone returns a deep, independent copy: every propagator is duplicated
// via CloneProp, so mutating a clone's propagator state never affects the
// original.
func (s *PropSet[T]) Clone() *PropSet[T] {
	cp := make([]Propagator[T], len(s.propagators))
	for i, p := range s.propagators {
		cp[i] = p.CloneProp()
	}
	return &PropSet[T]{propagators: cp}
}
