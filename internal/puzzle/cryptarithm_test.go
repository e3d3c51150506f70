package puzzle

import "testing"

func TestBuildSendMoreMoneyModelFindsTheClassicSolution(t *testing.T) {
	cm := BuildSendMoreMoneyModel()
	solver := cm.Model.Solve()
	solution, ok := solver.Next()
	if !ok {
		t.Fatalf("expected a solution for SEND + MORE = MONEY")
	}

	values := make(map[byte]int, len(cm.Letters))
	for letter, id := range cm.Letters {
		v, ok := solution.Var(id).Value()
		if !ok {
			t.Fatalf("letter %c not ground in solution", letter)
		}
		values[letter] = v
	}

	send := values['S']*1000 + values['E']*100 + values['N']*10 + values['D']
	more := values['M']*1000 + values['O']*100 + values['R']*10 + values['E']
	money := values['M']*10000 + values['O']*1000 + values['N']*100 + values['E']*10 + values['Y']
	if send+more != money {
		t.Fatalf("%d + %d != %d, values=%v", send, more, money, values)
	}
	if values['M'] != 1 {
		t.Fatalf("M = %d, want 1 (the unique solution's leading digit)", values['M'])
	}
}
