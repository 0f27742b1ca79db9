// Package refheader implements the packed strong-count + has-parent header
// that every node carries. The header is a single atomic word so
// construction and teardown are safe under the platform's memory model; it
// is not a synchronization primitive for concurrent mutation (domkit assumes
// a single logical owner per tree, ).
package refheader

import "sync/atomic"

// hasParentBit is the low bit; the remaining bits hold the strong count.
const hasParentBit = 1

// Header is the packed word. Zero value is strong count 0, no parent; use
// New to get the count-1 starting state every node is born with.
type Header struct {
	word atomic.Uint64
}

// New returns a header for a freshly constructed, detached node: strong
// count 1, has-parent bit clear.
func New() *Header {
	h := &Header{}
	h.word.Store(1 << 1)
	return h
}

func (h *Header) load() (count uint64, hasParent bool) {
	v := h.word.Load()
	return v >> 1, v&hasParentBit != 0
}

// Count returns the current strong reference count.
func (h *Header) Count() uint64 {
	count, _ := h.load()
	return count
}

// HasParent reports whether the has-parent bit is set.
func (h *Header) HasParent() bool {
	_, hasParent := h.load()
	return hasParent
}

// Retain increments the strong count, representing a new owning reference
// (an API caller holding the node, or a dispatch path holding it live).
func (h *Header) Retain() {
	h.word.Add(1 << 1)
}

// Release decrements the strong count and reports whether the node should
// now be destroyed: count reached zero AND the has-parent bit is clear.
func (h *Header) Release() (shouldDestroy bool) {
	step := uint64(1 << 1)
	v := h.word.Add(0 - step)
	count, hasParent := v>>1, v&hasParentBit != 0
	return count == 0 && !hasParent
}

// SetHasParent sets or clears the has-parent bit. The parent never
// increments the strong count when acquiring a child: the bit
// itself stands in for that extra reference, which is why Release's
// destroy check requires both count==0 and !hasParent.
func (h *Header) SetHasParent(v bool) {
	for {
		old := h.word.Load()
		hadParent := old&hasParentBit != 0
		if hadParent == v {
			return
		}
		var next uint64
		if v {
			next = old | hasParentBit
		} else {
			next = old &^ hasParentBit
		}
		if h.word.CompareAndSwap(old, next) {
			return
		}
	}
}

// ReleaseParent clears the has-parent bit (a node being removed from its
// parent's child list) and reports whether the node should now be
// destroyed.
func (h *Header) ReleaseParent() (shouldDestroy bool) {
	for {
		old := h.word.Load()
		if old&hasParentBit == 0 {
			count := old >> 1
			return count == 0
		}
		next := old &^ hasParentBit
		if h.word.CompareAndSwap(old, next) {
			count := next >> 1
			return count == 0
		}
	}
}
