package fd

import (
	"errors"
	"testing"
)

func TestOrderedVariableDedupesAndSorts(t *testing.T) {
	v := NewOrderedVariable([]int{3, 1, 2, 1, 3})
	got := v.Possibilities()
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Possibilities() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Possibilities() = %v, want %v", got, want)
		}
	}
}

func TestOrderedVariableRemoveKinds(t *testing.T) {
	v := NewOrderedVariable([]int{1, 2, 3})
	v.SetID(VarID(7))

	update, err := v.Remove(5)
	if err != nil {
		t.Fatalf("Remove(non-member) returned error: %v", err)
	}
	if update.Kind != Unchanged {
		t.Fatalf("Remove(non-member) = %v, want Unchanged", update.Kind)
	}

	update, err = v.Remove(2)
	if err != nil {
		t.Fatalf("Remove(member) returned error: %v", err)
	}
	if update.Kind != Reduced || update.ID != VarID(7) {
		t.Fatalf("Remove(member) = %+v, want Reduced on v7", update)
	}

	update, err = v.Remove(1)
	if err != nil {
		t.Fatalf("Remove(down to singleton) returned error: %v", err)
	}
	if update.Kind != Fixed {
		t.Fatalf("Remove(down to singleton) = %v, want Fixed", update.Kind)
	}

	_, err = v.Remove(3)
	if !errors.Is(err, ErrDomainEmpty) {
		t.Fatalf("Remove(last value) = %v, want ErrDomainEmpty", err)
	}
}

func TestOrderedVariableInstantiate(t *testing.T) {
	v := NewOrderedVariable([]int{1, 2, 3})
	v.SetID(VarID(1))

	if _, err := v.Instantiate(9); !errors.Is(err, ErrValueNotInDomain) {
		t.Fatalf("Instantiate(not in domain) = %v, want ErrValueNotInDomain", err)
	}

	update, err := v.Instantiate(2)
	if err != nil {
		t.Fatalf("Instantiate(member) returned error: %v", err)
	}
	if update.Kind != Fixed {
		t.Fatalf("Instantiate(member) = %v, want Fixed", update.Kind)
	}
	value, ok := v.Value()
	if !ok || value != 2 {
		t.Fatalf("Value() = (%v, %v), want (2, true)", value, ok)
	}

	update, err = v.Instantiate(2)
	if err != nil {
		t.Fatalf("re-Instantiate(already fixed value) returned error: %v", err)
	}
	if update.Kind != Unchanged {
		t.Fatalf("re-Instantiate(already fixed value) = %v, want Unchanged", update.Kind)
	}
}

func TestOrderedVariableCloneIsIndependent(t *testing.T) {
	v := NewOrderedVariable([]int{1, 2, 3})
	v.SetID(VarID(4))
	clone := v.Clone()

	if _, err := clone.Remove(2); err != nil {
		t.Fatalf("Remove on clone returned error: %v", err)
	}
	if !v.Contains(2) {
		t.Fatalf("mutating clone affected original: original lost value 2")
	}
	if clone.Contains(2) {
		t.Fatalf("clone still contains removed value 2")
	}
}

func TestHashVariableRemoveAndInstantiate(t *testing.T) {
	v := NewHashVariable([]string{"a", "b", "c"})
	v.SetID(VarID(2))

	update, err := v.Remove("z")
	if err != nil || update.Kind != Unchanged {
		t.Fatalf("Remove(non-member) = (%+v, %v), want (Unchanged, nil)", update, err)
	}

	update, err = v.Remove("a")
	if err != nil || update.Kind != Reduced {
		t.Fatalf("Remove(member) = (%+v, %v), want (Reduced, nil)", update, err)
	}

	if !v.Contains("b") || !v.Contains("c") {
		t.Fatalf("Remove(a) should leave b and c, got %v", v.Possibilities())
	}

	update, err = v.Instantiate("c")
	if err != nil || update.Kind != Fixed {
		t.Fatalf("Instantiate(member) = (%+v, %v), want (Fixed, nil)", update, err)
	}
	value, ok := v.Value()
	if !ok || value != "c" {
		t.Fatalf("Value() = (%v, %v), want (c, true)", value, ok)
	}
}

func TestHashVariableCloneIsIndependent(t *testing.T) {
	v := NewHashVariable([]string{"a", "b", "c"})
	v.SetID(VarID(0))
	clone := v.Clone()

	if _, err := clone.Remove("a"); err != nil {
		t.Fatalf("Remove on clone returned error: %v", err)
	}
	if !v.Contains("a") {
		t.Fatalf("mutating clone affected original")
	}
}
