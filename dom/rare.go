package dom

import "github.com/oxhq/domkit/event"

// observerRegistration is one entry in rareData.observers.
type observerRegistration struct {
	observer MutationObserver
	config   ObserveConfig
}

// rareData is the lazily-allocated side table attached to a node on first
// need. Every field is optional; a node that never registers a
// listener, never takes part in an abort signal, and is never observed
// keeps rare == nil forever.
type rareData struct {
	listeners event.ListenerSet
	observers []observerRegistration

	// assignedSlot is a placeholder for shadow-DOM slot assignment;
	// domkit's shadow trees carry structure only, with rendering/slot
	// assignment left to a host, so this is never populated but is kept as
	// a named field so a future host integration has somewhere to put it
	// without another rare-data migration.
	assignedSlot *Node
}
