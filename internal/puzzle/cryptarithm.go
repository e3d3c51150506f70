package puzzle

import "github.com/gitrdm/finitedomain/pkg/fd"

// SendMoreMoneyLetters lists the eight letters of SEND + MORE = MONEY in
// the order their variables are created and passed to the column-sum
// predicate. CryptarithmModel.Letters maps each letter to its VarID.
var SendMoreMoneyLetters = []byte{'S', 'E', 'N', 'D', 'M', 'O', 'R', 'Y'}

// CryptarithmModel is SEND + MORE = MONEY modeled with a digit variable
// per letter, AllDifferent, leading-digit-nonzero domains, and a single
// Predicate propagator checking the column arithmetic once every letter
// is assigned. The engine carries no linear-sum or table propagator, so
// this constraint has no partial pruning rule; it behaves as a
// generate-and-test check layered on top of search, same as the
// teacher's own worked examples do for any constraint outside the core
// propagator set.
type CryptarithmModel struct {
	Model   *fd.Model[int]
	Letters map[byte]fd.VarID
}

// BuildSendMoreMoneyModel builds the model described above.
func BuildSendMoreMoneyModel() *CryptarithmModel {
	digits := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	nonzero := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	m := fd.NewModel(fd.NewOrderedVariable[int])

	letters := make(map[byte]fd.VarID, len(SendMoreMoneyLetters))
	ids := make([]fd.VarID, len(SendMoreMoneyLetters))
	for i, ch := range SendMoreMoneyLetters {
		domain := digits
		if ch == 'S' || ch == 'M' {
			domain = nonzero
		}
		id := m.CreateVar(domain)
		letters[ch] = id
		ids[i] = id
	}

	fd.AllDifferentOn(m, ids...)

	m.AddPropagator(fd.NewPredicate(func(v []int) bool {
		s, e, n, d, mm, o, r, y := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]
		send := s*1000 + e*100 + n*10 + d
		more := mm*1000 + o*100 + r*10 + e
		money := mm*10000 + o*1000 + n*100 + e*10 + y
		return send+more == money
	}, ids...))

	return &CryptarithmModel{Model: m, Letters: letters}
}
