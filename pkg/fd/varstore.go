package fd

// VarStore owns every variable in one model, indexed by the dense VarID
// handles it hands out, plus each variable's propagator subscription
// list. VarStore is value-typed in spirit: Clone produces an independent
// store such that mutating the clone never affects the original.
type VarStore[T comparable] struct {
	factory       func([]T) Variable[T]
	vars          []Variable[T]
	subscriptions [][]PropID
}

// NewVarStore creates an empty store. factory builds a concrete Variable
// implementation from a slice of candidate values (e.g.
// fd.NewOrderedVariable[int] or fd.NewHashVariable[string]) — Go generics
// have no way to call a type parameter's constructor directly, so the
// factory stands in for it, mirroring the role of Rust's
// Variable::with_domain associated function.
func NewVarStore[T comparable](factory func([]T) Variable[T]) *VarStore[T] {
	return &VarStore[T]{factory: factory}
}

// CreateVar appends a new variable with the given candidate values,
// assigns it a fresh VarID, and gives it an empty subscription list.
func (s *VarStore[T]) CreateVar(values []T) VarID {
	id := VarID(len(s.vars))
	v := s.factory(values)
	v.SetID(id)
	s.vars = append(s.vars, v)
	s.subscriptions = append(s.subscriptions, nil)
	return id
}

// Set hard-sets a variable's domain to {value}, regardless of the
// variable's prior contents. It does not emit a DomainUpdate and does not
// trigger propagation; it exists only to record a model's given facts
// before search starts. Initial propagation discovers the consequences.
func (s *VarStore[T]) Set(id VarID, value T) {
	v := s.factory([]T{value})
	v.SetID(id)
	s.vars[int(id)] = v
}

// Var returns the variable for id. The returned Variable is the store's
// live handle: callers may mutate it directly (Remove/Instantiate), which
// is what the propagation engine and search driver do. There is no
// separate read-only accessor, since Go does not distinguish mutable and
// immutable references the way the original Rust does with var/var_mut.
func (s *VarStore[T]) Var(id VarID) Variable[T] {
	return s.vars[int(id)]
}

// VarIDs returns every handle this store has issued, in creation order.
func (s *VarStore[T]) VarIDs() []VarID {
	ids := make([]VarID, len(s.vars))
	for i := range s.vars {
		ids[i] = VarID(i)
	}
	return ids
}

// Size returns the number of variables in the store.
func (s *VarStore[T]) Size() int {
	return len(s.vars)
}

// AllGround reports whether every variable in the store is a singleton.
func (s *VarStore[T]) AllGround() bool {
	for _, v := range s.vars {
		if v.Size() != 1 {
			return false
		}
	}
	return true
}

// Subscribe registers prop to be notified whenever id's domain changes.
// Duplicate subscriptions are tolerated (they just cost an extra re-fire)
// rather than rejected.
func (s *VarStore[T]) Subscribe(id VarID, prop PropID) {
	s.subscriptions[int(id)] = append(s.subscriptions[int(id)], prop)
}

// Subscriptions returns the ordered list of propagators watching id, in
// the order they registered interest.
func (s *VarStore[T]) Subscriptions(id VarID) []PropID {
	return s.subscriptions[int(id)]
}

// Clone returns a deep, independent copy: every variable is cloned and
// every subscription slice is copied.
func (s *VarStore[T]) Clone() *VarStore[T] {
	vars := make([]Variable[T], len(s.vars))
	for i, v := range s.vars {
		vars[i] = v.Clone()
	}
	subs := make([][]PropID, len(s.subscriptions))
	for i, sub := range s.subscriptions {
		cp := make([]PropID, len(sub))
		copy(cp, sub)
		subs[i] = cp
	}
	return &VarStore[T]{factory: s.factory, vars: vars, subscriptions: subs}
}
