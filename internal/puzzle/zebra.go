package puzzle

import "github.com/gitrdm/finitedomain/pkg/fd"

// ZebraCategory names one of the five attribute groups in the puzzle.
type ZebraCategory int

const (
	Nationality ZebraCategory = iota
	Color
	Pet
	Drink
	Smoke
)

// ZebraValues lists the five values each category takes, in the order
// their VarID appears within ZebraModel.Vars[category].
var ZebraValues = map[ZebraCategory][]string{
	Nationality: {"Englishman", "Swede", "Dane", "Norwegian", "German"},
	Color:       {"red", "green", "white", "yellow", "blue"},
	Pet:         {"dog", "bird", "cat", "horse", "zebra"},
	Drink:       {"tea", "coffee", "milk", "beer", "water"},
	Smoke:       {"Pall Mall", "Dunhill", "Blend", "Blue Master", "Prince"},
}

// ZebraModel holds one variable per (category, value) pair, each ranging
// over house positions 1..5: Vars[cat][i] is the house number where
// ZebraValues[cat][i] holds. This is the position-encoding the teacher's
// permutation-based puzzles (sudoku's digit grid, n-queens' column
// array) generalize to when the unknown is "which slot holds this
// label" rather than "which label sits in this slot".
type ZebraModel struct {
	Model *fd.Model[int]
	Vars  map[ZebraCategory][]fd.VarID
}

// eq pins x and y to the same house: an Offset of 0 is exactly an
// equality constraint, so no separate propagator is needed for it.
func eq(m *fd.Model[int], x, y fd.VarID) {
	m.AddPropagator(fd.NewOffset(x, y, 0))
}

func adjacent(m *fd.Model[int], x, y fd.VarID) {
	m.AddPropagator(fd.NewAdjacent(x, y))
}

// BuildZebraModel builds the 15-clue Einstein riddle as a finite-domain
// model. Clue numbering follows the classic statement.
func BuildZebraModel() *ZebraModel {
	houses := []int{1, 2, 3, 4, 5}
	m := fd.NewModel(fd.NewOrderedVariable[int])

	vars := make(map[ZebraCategory][]fd.VarID, 5)
	for cat, values := range ZebraValues {
		ids := m.CreateVarArray(len(values), houses)
		fd.AllDifferentOn(m, ids...)
		vars[cat] = ids
	}

	nat, col, pet, drink, smoke := vars[Nationality], vars[Color], vars[Pet], vars[Drink], vars[Smoke]

	eq(m, nat[0], col[0])                              // 1. Englishman lives in the red house.
	eq(m, nat[1], pet[0])                              // 2. Swede keeps dogs.
	eq(m, nat[2], drink[0])                             // 3. Dane drinks tea.
	m.AddPropagator(fd.NewOffset(col[2], col[1], 1))    // 4. white house = green house + 1.
	eq(m, col[1], drink[1])                             // 5. coffee is drunk in the green house.
	eq(m, smoke[0], pet[1])                             // 6. Pall Mall smoker keeps birds.
	eq(m, col[3], smoke[1])                             // 7. Dunhill is smoked in the yellow house.
	m.Set(drink[2], 3)                                  // 8. milk is drunk in the middle house.
	m.Set(nat[3], 1)                                    // 9. Norwegian lives in the first house.
	adjacent(m, smoke[2], pet[2])                       // 10. Blend smoker lives next to the cat owner.
	adjacent(m, smoke[1], pet[3])                       // 11. Dunhill is smoked next to the horse owner.
	eq(m, smoke[3], drink[3])                           // 12. Blue Master smoker drinks beer.
	eq(m, nat[4], smoke[4])                             // 13. German smokes Prince.
	adjacent(m, nat[3], col[4])                         // 14. Norwegian lives next to the blue house.
	adjacent(m, drink[4], smoke[2])                     // 15. water is drunk next to the Blend smoker.

	return &ZebraModel{Model: m, Vars: vars}
}
