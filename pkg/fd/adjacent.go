package fd

// Adjacent enforces |x - y| = 1 over two integer variables: each survives
// only if the other variable's domain still contains a value exactly one
// away. It generalizes Offset to the two-sided case that "next to"
// constraints need (the zebra puzzle's defining shape), where k may hold
// either sign rather than one fixed direction.
type Adjacent struct {
	id   PropID
	x, y VarID
}

// NewAdjacent builds a propagator enforcing |x - y| = 1.
func NewAdjacent(x, y VarID) *Adjacent {
	return &Adjacent{x: x, y: y}
}

func (a *Adjacent) ID() PropID      { return a.id }
func (a *Adjacent) SetID(id PropID) { a.id = id }

func (a *Adjacent) InitialPropagation(vars *VarStore[int]) (map[DomainUpdate]struct{}, error) {
	vars.Subscribe(a.x, a.id)
	vars.Subscribe(a.y, a.id)
	return a.tighten(vars)
}

func (a *Adjacent) Propagate(vars *VarStore[int], update DomainUpdate) (map[DomainUpdate]struct{}, error) {
	if update.Kind == Unchanged || (update.ID != a.x && update.ID != a.y) {
		return map[DomainUpdate]struct{}{}, nil
	}
	return a.tighten(vars)
}

func (a *Adjacent) tighten(vars *VarStore[int]) (map[DomainUpdate]struct{}, error) {
	updates := make(map[DomainUpdate]struct{})
	xVar := vars.Var(a.x)
	yVar := vars.Var(a.y)

	hasNeighbor := func(v Variable[int], at int) bool {
		return v.Contains(at-1) || v.Contains(at+1)
	}

	for _, v := range valuesWhere(xVar.Possibilities(), func(v int) bool { return !hasNeighbor(yVar, v) }) {
		u, err := xVar.Remove(v)
		if err != nil {
			return nil, err
		}
		updates[u] = struct{}{}
	}
	for _, v := range valuesWhere(yVar.Possibilities(), func(v int) bool { return !hasNeighbor(xVar, v) }) {
		u, err := yVar.Remove(v)
		if err != nil {
			return nil, err
		}
		updates[u] = struct{}{}
	}
	return updates, nil
}

// CloneProp implements Propagator.
func (a *Adjacent) CloneProp() Propagator[int] {
	return &Adjacent{id: a.id, x: a.x, y: a.y}
}
