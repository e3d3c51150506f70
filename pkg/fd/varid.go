// Package fd implements a finite-domain constraint propagation and search
// engine: decision variables with finite candidate sets, propagators that
// prune infeasible candidates, and a depth-first backtracking search that
// enumerates satisfying assignments lazily.
package fd

import "fmt"

// VarID is an opaque, dense handle identifying a variable within one
// VarStore. Handles are assigned at creation time, are stable for the
// lifetime of the store, and are never recycled.
type VarID int

// String renders the handle for diagnostics and log lines.
func (id VarID) String() string {
	return fmt.Sprintf("v%d", int(id))
}
