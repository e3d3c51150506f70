package fd

// propagate drives the FIFO worklist to a fixed point, starting from a
// single seed update. Domains shrink monotonically and are finite, so
// this always terminates: every non-Unchanged enqueue corresponds to a
// strict shrink of some domain, bounding the number of enqueues by the
// sum of the initial domain sizes.
//
// Each subscribed variable's subscription list is snapshotted before
// iterating it, since a propagator that subscribes mid-Propagate must
// have that subscription take effect only on a later fixed-point round,
// not the current one.
func (s *SearchState[T]) propagate(seed DomainUpdate) error {
	queue := []DomainUpdate{seed}
	for len(queue) > 0 {
		update := queue[0]
		queue = queue[1:]

		subs := s.VarStore.Subscriptions(update.VarID())
		snapshot := make([]PropID, len(subs))
		copy(snapshot, subs)

		for _, propID := range snapshot {
			prop := s.PropSet.Propagator(propID)
			induced, err := prop.Propagate(s.VarStore, update)
			if err != nil {
				return &PropagationFailure{Prop: propID, Update: update, Err: err}
			}
			for d := range induced {
				if d.Kind == Unchanged {
					continue
				}
				queue = append(queue, d)
			}
		}
	}
	return nil
}

// initialPropagation runs every registered propagator's
// InitialPropagation in registration order, collects their emitted
// updates, then feeds each into propagate in collection order. On
// success, the store is quiescent with respect to every propagator.
func (s *SearchState[T]) initialPropagation() error {
	var collected []DomainUpdate
	for _, propID := range s.PropSet.PropIDs() {
		prop := s.PropSet.Propagator(propID)
		induced, err := prop.InitialPropagation(s.VarStore)
		if err != nil {
			return &PropagationFailure{Prop: propID, Err: err}
		}
		for d := range induced {
			collected = append(collected, d)
		}
	}
	for _, d := range collected {
		if err := s.propagate(d); err != nil {
			return err
		}
	}
	return nil
}
