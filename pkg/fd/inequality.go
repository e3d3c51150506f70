package fd

// LessThan enforces x < y over two integer variables using bound
// consistency: whenever either domain shrinks, values of x that no value
// of y is larger than, and values of y that no value of x is smaller
// than, are removed. Grounded on the teacher's
// fd_ineq.go inequality-link propagation, rebuilt against the
// Propagator[T] contract instead of a bespoke constraint-store hook.
type LessThan struct {
	id      PropID
	x, y    VarID
	orEqual bool
}

// NewLessThan builds a propagator enforcing x < y.
func NewLessThan(x, y VarID) *LessThan {
	return &LessThan{x: x, y: y}
}

// NewLessOrEqual builds a propagator enforcing x <= y by relaxing the
// bound check by one; it is a thin convenience over the same mechanism.
func NewLessOrEqual(x, y VarID) *LessThan {
	return &LessThan{x: x, y: y, orEqual: true}
}

func (c *LessThan) ID() PropID     { return c.id }
func (c *LessThan) SetID(id PropID) { c.id = id }

// strictness reports the bound-tightening slack: 1 for strict <, 0 for
// <=. orEqual lives on LessThan itself (rather than a second type) since
// <= is just < with the strictness relaxed by one.
func (c *LessThan) strictness() int {
	if c.orEqual {
		return 0
	}
	return 1
}

func (c *LessThan) InitialPropagation(vars *VarStore[int]) (map[DomainUpdate]struct{}, error) {
	vars.Subscribe(c.x, c.id)
	vars.Subscribe(c.y, c.id)
	return c.tighten(vars)
}

func (c *LessThan) Propagate(vars *VarStore[int], update DomainUpdate) (map[DomainUpdate]struct{}, error) {
	if update.Kind == Unchanged || (update.ID != c.x && update.ID != c.y) {
		return map[DomainUpdate]struct{}{}, nil
	}
	return c.tighten(vars)
}

func (c *LessThan) tighten(vars *VarStore[int]) (map[DomainUpdate]struct{}, error) {
	updates := make(map[DomainUpdate]struct{})
	xVar := vars.Var(c.x)
	yVar := vars.Var(c.y)

	_, yMax := boundsOf(yVar.Possibilities())
	xMin, _ := boundsOf(xVar.Possibilities())
	slack := c.strictness()

	for _, v := range valuesWhere(xVar.Possibilities(), func(v int) bool { return v > yMax-slack }) {
		u, err := xVar.Remove(v)
		if err != nil {
			return nil, err
		}
		updates[u] = struct{}{}
	}
	for _, v := range valuesWhere(yVar.Possibilities(), func(v int) bool { return v < xMin+slack }) {
		u, err := yVar.Remove(v)
		if err != nil {
			return nil, err
		}
		updates[u] = struct{}{}
	}
	return updates, nil
}

func (c *LessThan) CloneProp() Propagator[int] {
	return &LessThan{id: c.id, x: c.x, y: c.y, orEqual: c.orEqual}
}

func boundsOf(values []int) (min, max int) {
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func valuesWhere(values []int, pred func(int) bool) []int {
	var out []int
	for _, v := range values {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}
