package fd

import "testing"

func TestLessThanTightensBothBounds(t *testing.T) {
	vs := NewVarStore(NewOrderedVariable[int])
	x := vs.CreateVar([]int{1, 2, 3, 4, 5})
	y := vs.CreateVar([]int{1, 2, 3})

	ps := NewPropSet[int]()
	ps.AddPropagator(NewLessThan(x, y))

	state := newSearchState(vs, ps)
	if err := state.initialPropagation(); err != nil {
		t.Fatalf("initialPropagation() returned error: %v", err)
	}

	xPoss := state.VarStore.Var(x).Possibilities()
	for _, v := range xPoss {
		if v >= 3 {
			t.Fatalf("x still contains %d, but x < y with max(y)=3 rules out x>=3", v)
		}
	}
	yPoss := state.VarStore.Var(y).Possibilities()
	for _, v := range yPoss {
		if v <= 1 {
			t.Fatalf("y still contains %d, but x < y with min(x)=1 rules out y<=1", v)
		}
	}
}

func TestLessOrEqualAllowsEquality(t *testing.T) {
	vs := NewVarStore(NewOrderedVariable[int])
	x := vs.CreateVar([]int{1, 2, 3})
	y := vs.CreateVar([]int{1, 2, 3})
	vs.Set(x, 2)

	ps := NewPropSet[int]()
	ps.AddPropagator(NewLessOrEqual(x, y))

	state := newSearchState(vs, ps)
	if err := state.initialPropagation(); err != nil {
		t.Fatalf("initialPropagation() returned error: %v", err)
	}

	if !state.VarStore.Var(y).Contains(2) {
		t.Fatalf("y should still allow 2 under <=, got %v", state.VarStore.Var(y).Possibilities())
	}
	if state.VarStore.Var(y).Contains(1) {
		t.Fatalf("y should no longer allow 1 since x<=y and x=2")
	}
}

func TestLessThanDetectsFailure(t *testing.T) {
	vs := NewVarStore(NewOrderedVariable[int])
	x := vs.CreateVar([]int{5})
	y := vs.CreateVar([]int{5})

	ps := NewPropSet[int]()
	ps.AddPropagator(NewLessThan(x, y))

	state := newSearchState(vs, ps)
	if err := state.initialPropagation(); err == nil {
		t.Fatalf("initialPropagation() = nil, want failure when x < y is impossible")
	}
}
