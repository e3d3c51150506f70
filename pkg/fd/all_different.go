package fd

// AllDifferent is the specification's anchor example constraint: every
// watched variable must take a distinct value. It is a thin, general
// propagator — when one watched variable becomes ground, its value is
// removed from every other watched variable — and relies on the engine
// re-invoking Propagate for each resulting Fixed update to ripple to
// quiescence.
type AllDifferent[T comparable] struct {
	id     PropID
	varIDs []VarID
}

// NewAllDifferent builds an AllDifferent propagator over the given
// variables. Duplicate VarIDs are collapsed.
func NewAllDifferent[T comparable](varIDs ...VarID) *AllDifferent[T] {
	seen := make(map[VarID]struct{}, len(varIDs))
	out := make([]VarID, 0, len(varIDs))
	for _, id := range varIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return &AllDifferent[T]{varIDs: out}
}

// ID implements Propagator.
func (a *AllDifferent[T]) ID() PropID { return a.id }

// SetID implements Propagator.
func (a *AllDifferent[T]) SetID(id PropID) { a.id = id }

// InitialPropagation implements Propagator: subscribe to every watched
// variable, then for any variable already ground, remove its value from
// every other watched variable.
func (a *AllDifferent[T]) InitialPropagation(vars *VarStore[T]) (map[DomainUpdate]struct{}, error) {
	for _, id := range a.varIDs {
		vars.Subscribe(id, a.id)
	}

	updates := make(map[DomainUpdate]struct{})
	for _, id := range a.varIDs {
		value, ok := vars.Var(id).Value()
		if !ok {
			continue
		}
		for _, other := range a.varIDs {
			if other == id {
				continue
			}
			update, err := vars.Var(other).Remove(value)
			if err != nil {
				return nil, err
			}
			updates[update] = struct{}{}
		}
	}
	return updates, nil
}

// Propagate implements Propagator: when a watched variable becomes fixed,
// remove its value from every other watched variable.
func (a *AllDifferent[T]) Propagate(vars *VarStore[T], update DomainUpdate) (map[DomainUpdate]struct{}, error) {
	updates := make(map[DomainUpdate]struct{})
	if update.Kind != Fixed {
		return updates, nil
	}
	if !a.watches(update.ID) {
		return updates, nil
	}

	value, ok := vars.Var(update.ID).Value()
	if !ok {
		return updates, nil
	}
	for _, other := range a.varIDs {
		if other == update.ID {
			continue
		}
		result, err := vars.Var(other).Remove(value)
		if err != nil {
			return nil, err
		}
		updates[result] = struct{}{}
	}
	return updates, nil
}

func (a *AllDifferent[T]) watches(id VarID) bool {
	for _, v := range a.varIDs {
		if v == id {
			return true
		}
	}
	return false
}

// CloneProp implements Propagator.
func (a *AllDifferent[T]) CloneProp() Propagator[T] {
	cp := make([]VarID, len(a.varIDs))
	copy(cp, a.varIDs)
	return &AllDifferent[T]{id: a.id, varIDs: cp}
}
