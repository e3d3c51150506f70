package fd

// Predicate is a propagator with no incremental pruning rule: it watches
// a set of variables and, once every one of them is ground, evaluates
// check against their values in watch order, failing the branch if check
// returns false. It complements propagators like AllDifferent and Offset
// for constraints — a cryptarithmetic column sum, say — that are cheap to
// verify once fully assigned but have no useful partial-domain rule.
type Predicate struct {
	id    PropID
	ids   []VarID
	check func(values []int) bool
}

// NewPredicate builds a Predicate watching ids, in the order their values
// are passed to check.
func NewPredicate(check func(values []int) bool, ids ...VarID) *Predicate {
	return &Predicate{ids: ids, check: check}
}

func (p *Predicate) ID() PropID      { return p.id }
func (p *Predicate) SetID(id PropID) { p.id = id }

func (p *Predicate) InitialPropagation(vars *VarStore[int]) (map[DomainUpdate]struct{}, error) {
	for _, id := range p.ids {
		vars.Subscribe(id, p.id)
	}
	return p.verify(vars)
}

func (p *Predicate) Propagate(vars *VarStore[int], update DomainUpdate) (map[DomainUpdate]struct{}, error) {
	if update.Kind != Fixed || !p.watches(update.ID) {
		return map[DomainUpdate]struct{}{}, nil
	}
	return p.verify(vars)
}

func (p *Predicate) verify(vars *VarStore[int]) (map[DomainUpdate]struct{}, error) {
	values := make([]int, len(p.ids))
	for i, id := range p.ids {
		v, ok := vars.Var(id).Value()
		if !ok {
			return map[DomainUpdate]struct{}{}, nil
		}
		values[i] = v
	}
	if !p.check(values) {
		return nil, ErrPredicateViolated
	}
	return map[DomainUpdate]struct{}{}, nil
}

func (p *Predicate) watches(id VarID) bool {
	for _, v := range p.ids {
		if v == id {
			return true
		}
	}
	return false
}

// CloneProp implements Propagator.
func (p *Predicate) CloneProp() Propagator[int] {
	cp := make([]VarID, len(p.ids))
	copy(cp, p.ids)
	return &Predicate{id: p.id, ids: cp, check: p.check}
}
