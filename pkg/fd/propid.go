package fd

import "fmt"

// PropID is an opaque, dense handle identifying a propagator within one
// PropSet. It is assigned by the registry at registration time.
type PropID int

// String renders the handle for diagnostics and log lines.
func (id PropID) String() string {
	return fmt.Sprintf("p%d", int(id))
}
