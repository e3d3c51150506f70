package fd

import "testing"

func TestPropagateDropsUnchangedUpdates(t *testing.T) {
	vs := NewVarStore(NewOrderedVariable[int])
	a := vs.CreateVar([]int{1, 2})
	b := vs.CreateVar([]int{1, 2})

	ps := NewPropSet[int]()
	ps.AddPropagator(NewAllDifferent[int](a, b))

	state := newSearchState(vs, ps)
	if err := state.initialPropagation(); err != nil {
		t.Fatalf("initialPropagation() returned error: %v", err)
	}
	// Neither variable is ground yet, so nothing should have propagated.
	if state.VarStore.Var(a).Size() != 2 || state.VarStore.Var(b).Size() != 2 {
		t.Fatalf("propagation pruned an unconstrained pair: a=%v b=%v",
			state.VarStore.Var(a).Possibilities(), state.VarStore.Var(b).Possibilities())
	}
}

func TestPropagateChainsThroughMultiplePropagators(t *testing.T) {
	// a = b + 1, b = c + 1, c fixed to 1 should ripple a=3, b=2.
	vs := NewVarStore(NewOrderedVariable[int])
	a := vs.CreateVar([]int{1, 2, 3, 4})
	b := vs.CreateVar([]int{1, 2, 3, 4})
	c := vs.CreateVar([]int{1, 2, 3, 4})
	vs.Set(c, 1)

	ps := NewPropSet[int]()
	ps.AddPropagator(NewOffset(a, b, 1))
	ps.AddPropagator(NewOffset(b, c, 1))

	state := newSearchState(vs, ps)
	if err := state.initialPropagation(); err != nil {
		t.Fatalf("initialPropagation() returned error: %v", err)
	}

	bVal, ok := state.VarStore.Var(b).Value()
	if !ok || bVal != 2 {
		t.Fatalf("b = (%v, %v), want (2, true)", bVal, ok)
	}
	aVal, ok := state.VarStore.Var(a).Value()
	if !ok || aVal != 3 {
		t.Fatalf("a = (%v, %v), want (3, true)", aVal, ok)
	}
}

func TestPropagateIsIdempotentOnAnUnchangedSeed(t *testing.T) {
	vs := NewVarStore(NewOrderedVariable[int])
	a := vs.CreateVar([]int{1, 2, 3})
	b := vs.CreateVar([]int{1, 2, 3})
	vs.Set(a, 1)

	ps := NewPropSet[int]()
	ps.AddPropagator(NewAllDifferent[int](a, b))

	state := newSearchState(vs, ps)
	if err := state.initialPropagation(); err != nil {
		t.Fatalf("initialPropagation() returned error: %v", err)
	}

	beforeA := append([]int(nil), state.VarStore.Var(a).Possibilities()...)
	beforeB := append([]int(nil), state.VarStore.Var(b).Possibilities()...)

	// The state is already quiescent; re-feeding an Unchanged seed for a
	// variable that did not actually change must leave every domain
	// exactly as it was, not just equally sized.
	if err := state.propagate(DomainUpdate{Kind: Unchanged, ID: a}); err != nil {
		t.Fatalf("propagate(Unchanged) returned error: %v", err)
	}

	afterA := state.VarStore.Var(a).Possibilities()
	afterB := state.VarStore.Var(b).Possibilities()
	if !equalInts(beforeA, afterA) {
		t.Fatalf("a changed after an Unchanged seed: before=%v after=%v", beforeA, afterA)
	}
	if !equalInts(beforeB, afterB) {
		t.Fatalf("b changed after an Unchanged seed: before=%v after=%v", beforeB, afterB)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPropagateAbortsOnFirstFailure(t *testing.T) {
	vs := NewVarStore(NewOrderedVariable[int])
	a := vs.CreateVar([]int{1})
	b := vs.CreateVar([]int{2})

	ps := NewPropSet[int]()
	ps.AddPropagator(NewOffset(a, b, 5)) // a = b + 5 is impossible: 1 != 7

	state := newSearchState(vs, ps)
	err := state.initialPropagation()
	if err == nil {
		t.Fatalf("initialPropagation() = nil, want a PropagationFailure")
	}
	var failure *PropagationFailure
	if pf, ok := err.(*PropagationFailure); ok {
		failure = pf
	}
	if failure == nil {
		t.Fatalf("expected a *PropagationFailure, got %T: %v", err, err)
	}
}
