package fd

// Model is a convenience façade over VarStore and PropSet: it owns both,
// assigns VarIDs and PropIDs as variables and propagators are added, and
// hands out a Solver once the model is fully built. Callers that want
// direct control over the store and propagator set can use VarStore and
// PropSet themselves; Model exists because most callers build a model in
// one straight-line pass and then solve it once.
type Model[T comparable] struct {
	vars  *VarStore[T]
	props *PropSet[T]
	obs   Observer
}

// NewModel builds an empty model whose variables are produced by factory.
func NewModel[T comparable](factory func([]T) Variable[T]) *Model[T] {
	return &Model[T]{
		vars:  NewVarStore(factory),
		props: NewPropSet[T](),
	}
}

// SetObserver attaches an Observer used by Solve's returned Solver. obs
// may be nil to detach.
func (m *Model[T]) SetObserver(obs Observer) {
	m.obs = obs
}

// CreateVar adds a new variable with the given candidate values and
// returns its handle.
func (m *Model[T]) CreateVar(values []T) VarID {
	return m.vars.CreateVar(values)
}

// CreateVarArray adds n variables, each with the given candidate values,
// and returns their handles in creation order.
func (m *Model[T]) CreateVarArray(n int, values []T) []VarID {
	ids := make([]VarID, n)
	for i := range ids {
		ids[i] = m.vars.CreateVar(values)
	}
	return ids
}

// CreateVarMatrix adds a rows*cols grid of variables, each with the given
// candidate values, returned row-major.
func (m *Model[T]) CreateVarMatrix(rows, cols int, values []T) [][]VarID {
	grid := make([][]VarID, rows)
	for r := range grid {
		grid[r] = m.CreateVarArray(cols, values)
	}
	return grid
}

// Set pins id to a single value, discarding every other candidate. Used to
// seed a model with givens (e.g. the clues of a puzzle) before solving.
func (m *Model[T]) Set(id VarID, value T) {
	m.vars.Set(id, value)
}

// AddPropagator registers prop against the model's variable store and
// returns its handle.
func (m *Model[T]) AddPropagator(prop Propagator[T]) PropID {
	return m.props.AddPropagator(prop)
}

// VarStore exposes the model's underlying store, e.g. for reading back a
// solved assignment's values by VarID.
func (m *Model[T]) VarStore() *VarStore[T] {
	return m.vars
}

// Solve returns a Solver ready to enumerate this model's solutions. The
// model's VarStore and PropSet are cloned into the solver's initial
// search state, so the model itself is left untouched and may be solved
// more than once.
func (m *Model[T]) Solve() *Solver[T] {
	return NewSolver(m.vars.Clone(), m.props.Clone(), m.obs)
}

// AllDifferentOn registers an AllDifferent propagator over ids on m and
// returns its handle. It is a thin convenience wrapper so callers don't
// need to import the propagator constructor directly.
func AllDifferentOn[T comparable](m *Model[T], ids ...VarID) PropID {
	return m.AddPropagator(NewAllDifferent[T](ids...))
}
