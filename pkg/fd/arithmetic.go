package fd

// Offset enforces x = y + k over two integer variables by full domain
// consistency: a value survives in x only if its corresponding y value
// (v-k) is still present in y, and vice versa. Domains in this engine are
// small and explicit, so full consistency costs no more than bound
// consistency would and is strictly stronger. Grounded on the teacher's
// fd_arith.go offset constraint, rebuilt against the Propagator[T]
// contract.
type Offset struct {
	id   PropID
	x, y VarID
	k    int
}

// NewOffset builds a propagator enforcing x = y + k.
func NewOffset(x, y VarID, k int) *Offset {
	return &Offset{x: x, y: y, k: k}
}

func (o *Offset) ID() PropID      { return o.id }
func (o *Offset) SetID(id PropID) { o.id = id }

func (o *Offset) InitialPropagation(vars *VarStore[int]) (map[DomainUpdate]struct{}, error) {
	vars.Subscribe(o.x, o.id)
	vars.Subscribe(o.y, o.id)
	return o.tighten(vars)
}

func (o *Offset) Propagate(vars *VarStore[int], update DomainUpdate) (map[DomainUpdate]struct{}, error) {
	if update.Kind == Unchanged || (update.ID != o.x && update.ID != o.y) {
		return map[DomainUpdate]struct{}{}, nil
	}
	return o.tighten(vars)
}

func (o *Offset) tighten(vars *VarStore[int]) (map[DomainUpdate]struct{}, error) {
	updates := make(map[DomainUpdate]struct{})
	xVar := vars.Var(o.x)
	yVar := vars.Var(o.y)

	for _, v := range valuesWhere(xVar.Possibilities(), func(v int) bool { return !yVar.Contains(v - o.k) }) {
		u, err := xVar.Remove(v)
		if err != nil {
			return nil, err
		}
		updates[u] = struct{}{}
	}
	for _, v := range valuesWhere(yVar.Possibilities(), func(v int) bool { return !xVar.Contains(v + o.k) }) {
		u, err := yVar.Remove(v)
		if err != nil {
			return nil, err
		}
		updates[u] = struct{}{}
	}
	return updates, nil
}

// CloneProp implements Propagator.
func (o *Offset) CloneProp() Propagator[int] {
	return &Offset{id: o.id, x: o.x, y: o.y, k: o.k}
}
