package fd

// Observer receives lifecycle events from a Solver as it runs without
// influencing the search in any way: attaching or detaching an Observer
// never changes what a Solver yields, only what gets logged about it. A
// nil Observer is always safe to pass — every call site in this package
// guards with a nil check before invoking it, so pkg/fd never requires a
// logging dependency to function.
type Observer interface {
	Event(name string, fields map[string]any)
}

func notify(obs Observer, name string, fields map[string]any) {
	if obs == nil {
		return
	}
	obs.Event(name, fields)
}
