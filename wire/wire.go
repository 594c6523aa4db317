package wire

import (
	"github.com/hostwire/patchbay/node"
	"github.com/sirupsen/logrus"
)

// Wire is a directed edge between two node IDs. It has no identity beyond
// its endpoint pair.
type Wire struct {
	From int
	To   int
}

// LookupFunc resolves a node ID to its live node, or nil.
type LookupFunc func(id int) *node.Node

// Set holds the committed wires in insertion order.
type Set struct {
	wires  []Wire
	lookup LookupFunc
}

// NewSet creates an empty set using the given node lookup.
func NewSet(lookup LookupFunc) *Set {
	return &Set{lookup: lookup}
}

// CanConnect reports whether a wire from one node to another would be
// valid: no self-loop, both endpoints exist, the source has an output
// port and the destination has an input port.
func (s *Set) CanConnect(from, to int) bool {
	if from == to {
		return false
	}
	fr := s.lookup(from)
	dst := s.lookup(to)
	if fr == nil || dst == nil {
		return false
	}
	if !fr.HasOutputPort() || !dst.HasInputPort() {
		return false
	}
	return true
}

// Connect clears every wire into the destination, then inserts the new
// wire. The removed wires are returned so the caller can mirror their
// teardown into the engine. Connect does not validate; call CanConnect
// first.
func (s *Set) Connect(from, to int) []Wire {
	removed := s.ClearIncoming(to)
	s.wires = append(s.wires, Wire{From: from, To: to})

	logrus.WithFields(logrus.Fields{
		"function":   "Connect",
		"from":       from,
		"to":         to,
		"superseded": len(removed),
	}).Info("Wire recorded")

	return removed
}

// ClearIncoming removes and returns every wire whose destination is the
// given node.
func (s *Set) ClearIncoming(to int) []Wire {
	return s.removeIf(func(w Wire) bool { return w.To == to })
}

// DisconnectAll removes and returns every wire touching the node as
// either endpoint.
func (s *Set) DisconnectAll(id int) []Wire {
	return s.removeIf(func(w Wire) bool { return w.From == id || w.To == id })
}

// Remove deletes the exact (from, to) wire if present and reports whether
// it existed.
func (s *Set) Remove(from, to int) bool {
	removed := s.removeIf(func(w Wire) bool { return w.From == from && w.To == to })
	return len(removed) > 0
}

// WiresOf returns every wire touching the node as either endpoint.
func (s *Set) WiresOf(id int) []Wire {
	var out []Wire
	for _, w := range s.wires {
		if w.From == id || w.To == id {
			out = append(out, w)
		}
	}
	return out
}

// Incoming returns every wire into the node. Under the single-input rule
// the result holds at most one wire, but the set does not structurally
// depend on that.
func (s *Set) Incoming(to int) []Wire {
	var out []Wire
	for _, w := range s.wires {
		if w.To == to {
			out = append(out, w)
		}
	}
	return out
}

// Wires returns a snapshot of all wires in insertion order.
func (s *Set) Wires() []Wire {
	out := make([]Wire, len(s.wires))
	copy(out, s.wires)
	return out
}

// Len returns the number of committed wires.
func (s *Set) Len() int {
	return len(s.wires)
}

// Clear removes every wire. Used when restoring a persisted document.
func (s *Set) Clear() {
	s.wires = nil
}

func (s *Set) removeIf(match func(Wire) bool) []Wire {
	var removed []Wire
	kept := s.wires[:0]
	for _, w := range s.wires {
		if match(w) {
			removed = append(removed, w)
		} else {
			kept = append(kept, w)
		}
	}
	s.wires = kept
	return removed
}
