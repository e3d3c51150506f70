package fd

// Solver is a lazy, pull-based depth-first search over the assignments of
// one VarStore under one PropSet. Calling Next repeatedly yields every
// solution in turn; the search is entirely single-threaded and holds no
// goroutines or channels, by design — each call to Next does exactly the
// work needed to produce (or rule out) the next solution and returns.
type Solver[T comparable] struct {
	stack       []*SearchState[T]
	initialized bool
	obs         Observer
}

// NewSolver builds a Solver over vs and ps. obs may be nil.
func NewSolver[T comparable](vs *VarStore[T], ps *PropSet[T], obs Observer) *Solver[T] {
	return &Solver[T]{
		stack: []*SearchState[T]{newSearchState(vs, ps)},
		obs:   obs,
	}
}

// Next advances the search to the next solution. It returns the solved
// VarStore and true on success, or nil and false once the search space is
// exhausted. The returned VarStore is owned by the caller; the Solver
// never reuses it.
func (s *Solver[T]) Next() (*VarStore[T], bool) {
	if !s.initialized {
		s.initialized = true
		root := s.stack[0]
		if err := root.initialPropagation(); err != nil {
			notify(s.obs, "solver.initial_propagation_failed", map[string]any{"error": err.Error()})
			s.stack = nil
			return nil, false
		}
	}

	for len(s.stack) > 0 {
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		id, ok := top.ChooseVar()
		if !ok {
			notify(s.obs, "solver.solution", map[string]any{"assigned": top.VarStore.Size()})
			return top.VarStore, true
		}

		value, ok := top.ChooseValue(id)
		if !ok {
			continue
		}

		assigning, excluding := top.Instantiate(id, value)
		if excluding != nil {
			s.stack = append(s.stack, excluding)
		}
		if assigning != nil {
			s.stack = append(s.stack, assigning)
		}
	}

	return nil, false
}
