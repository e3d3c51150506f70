package puzzle

import "github.com/gitrdm/finitedomain/pkg/fd"

// BuildQueensModel builds the classic n-queens model: one variable per
// row holding the queen's column, AllDifferent over columns, and two
// more AllDifferent constraints over helper variables offset by row
// index, so that two queens sharing a diagonal collide in the same way
// two queens sharing a column would.
func BuildQueensModel(n int) (*fd.Model[int], []fd.VarID) {
	cols := make([]int, n)
	for i := range cols {
		cols[i] = i
	}

	m := fd.NewModel(fd.NewOrderedVariable[int])
	rows := m.CreateVarArray(n, cols)
	fd.AllDifferentOn(m, rows...)

	// diag[i] = column[i] + i must all differ (no two queens share a
	// "/" diagonal), and anti[i] = column[i] - i (its domain runs from -n
	// to n-1, so no shift is needed) must all differ likewise (no shared
	// "\" diagonal). Each helper variable
	// is linked to its row's column by Offset, then AllDifferent is
	// applied over the helpers, exactly as the column constraint is
	// applied over the raw row variables.
	diag := make([]fd.VarID, n)
	anti := make([]fd.VarID, n)
	for i := 0; i < n; i++ {
		diag[i] = m.CreateVar(rangeInts(0, 2*n))
		anti[i] = m.CreateVar(rangeInts(-n, n))
	}
	for i := 0; i < n; i++ {
		m.AddPropagator(fd.NewOffset(diag[i], rows[i], i)) // diag = col + i
		m.AddPropagator(fd.NewOffset(rows[i], anti[i], i)) // row = anti + i, i.e. anti = col - i
	}
	fd.AllDifferentOn(m, diag...)
	fd.AllDifferentOn(m, anti...)

	return m, rows
}

func rangeInts(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for v := lo; v < hi; v++ {
		out = append(out, v)
	}
	return out
}
