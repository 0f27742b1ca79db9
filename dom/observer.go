package dom

// RecordType identifies which algorithmic point produced a MutationRecord.
type RecordType int

const (
	RecordChildList RecordType = iota
	RecordAttributes
	RecordCharacterData
)

// MutationRecord is the value notified to registered observers. Producing
// this value and notifying observers in document order is as far as this
// package's contract goes; queuing it onto a host microtask is left to the
// host.
type MutationRecord struct {
	Type          RecordType
	Target        *Node
	AddedNodes    []*Node
	RemovedNodes  []*Node
	// PreviousSibling/NextSibling snapshot RemovedNodes[0]'s sibling context
	// as it was immediately before removal (mirroring WHATWG MutationRecord's
	// own previousSibling/nextSibling fields), since the node's own sibling
	// links are already cleared by the time observers are notified.
	// NodeIterator's removal fixup (traversal package) relies on this to
	// relocate its reference without re-deriving now-severed links.
	PreviousSibling *Node
	NextSibling     *Node
	AttributeName   string
	OldValue        string
}

// ObserveConfig mirrors MutationObserverInit.
type ObserveConfig struct {
	ChildList     bool
	Attributes    bool
	CharacterData bool
	Subtree       bool
}

// MutationObserver is the callback contract the core notifies; delivery
// scheduling (batching into a microtask) is a host concern.
type MutationObserver interface {
	Notify(records []MutationRecord)
}

// Observe registers obs on target with config.
func Observe(target *Node, obs MutationObserver, config ObserveConfig) {
	target.rareData().observers = append(target.rareData().observers, observerRegistration{observer: obs, config: config})
}

// Unobserve removes a previously registered observer from target.
func Unobserve(target *Node, obs MutationObserver) {
	if target.rare == nil {
		return
	}
	regs := target.rare.observers[:0]
	for _, r := range target.rare.observers {
		if r.observer != obs {
			regs = append(regs, r)
		}
	}
	target.rare.observers = regs
}

// notify collects target and its ancestors, then delivers rec to every
// registered observer whose config matches (target observers always match;
// ancestor observers match only if registered with Subtree), in document
// order: the root's observers first, target's last.
func notify(target *Node, rec MutationRecord) {
	var path []*Node
	for anc := target; anc != nil; anc = anc.parent {
		path = append(path, anc)
	}
	for i := len(path) - 1; i >= 0; i-- {
		anc := path[i]
		if anc.rare == nil {
			continue
		}
		for _, reg := range anc.rare.observers {
			if anc != target && !reg.config.Subtree {
				continue
			}
			if !observerWants(reg.config, rec.Type) {
				continue
			}
			reg.observer.Notify([]MutationRecord{rec})
		}
	}
}

func observerWants(c ObserveConfig, t RecordType) bool {
	switch t {
	case RecordChildList:
		return c.ChildList
	case RecordAttributes:
		return c.Attributes
	case RecordCharacterData:
		return c.CharacterData
	}
	return false
}

func emitInserted(parent, node *Node) {
	notify(parent, MutationRecord{Type: RecordChildList, Target: parent, AddedNodes: []*Node{node}})
}

// emitRemoved notifies parent's observers that node was removed. prev/next
// are node's sibling links as they stood immediately before detach.
func emitRemoved(parent, node, prev, next *Node) {
	notify(parent, MutationRecord{
		Type: RecordChildList, Target: parent, RemovedNodes: []*Node{node},
		PreviousSibling: prev, NextSibling: next,
	})
}

func emitMoved(parent, node *Node) {
	notify(parent, MutationRecord{Type: RecordChildList, Target: parent, AddedNodes: []*Node{node}, RemovedNodes: []*Node{node}})
}

func emitAttributeChanged(target *Node, name, oldValue string) {
	notify(target, MutationRecord{Type: RecordAttributes, Target: target, AttributeName: name, OldValue: oldValue})
}

func emitCharacterDataChanged(target *Node, oldValue string) {
	notify(target, MutationRecord{Type: RecordCharacterData, Target: target, OldValue: oldValue})
}
