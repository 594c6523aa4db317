package node

import (
	"github.com/sirupsen/logrus"
)

// Registry owns the ordered node list and assigns node identities.
//
// All access happens on the single control thread; the registry performs
// no internal locking by contract.
type Registry struct {
	nodes  []*Node
	nextID int
}

// NewRegistry creates an empty registry with the ID counter seeded at 1.
func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

// Add places a node and returns it with a freshly assigned ID. The node
// is appended, making it topmost for hit-testing.
func (r *Registry) Add(n Node) *Node {
	n.ID = r.nextID
	r.nextID++

	placed := &n
	r.nodes = append(r.nodes, placed)

	logrus.WithFields(logrus.Fields{
		"function": "Add",
		"node_id":  placed.ID,
		"kind":     placed.Kind.String(),
		"name":     placed.Name,
	}).Info("Node added to registry")

	return placed
}

// AdvanceID moves the counter past the given ID if needed. Called for
// every node ID seen in a persisted document, including nodes that are
// subsequently dropped, so later Add calls never collide with any
// identity the document mentioned.
func (r *Registry) AdvanceID(id int) {
	if id >= r.nextID {
		r.nextID = id + 1
	}
}

// AddRestored places a node carrying an ID restored from a persisted
// document, advancing the counter past it so later Add calls never
// collide with restored identities.
func (r *Registry) AddRestored(n Node) *Node {
	r.AdvanceID(n.ID)

	placed := &n
	r.nodes = append(r.nodes, placed)

	logrus.WithFields(logrus.Fields{
		"function": "AddRestored",
		"node_id":  placed.ID,
		"kind":     placed.Kind.String(),
		"next_id":  r.nextID,
	}).Debug("Restored node added to registry")

	return placed
}

// Remove deletes the node with the given ID. Other nodes' positions are
// untouched. It reports whether a node was removed.
func (r *Registry) Remove(id int) bool {
	for i, n := range r.nodes {
		if n.ID != id {
			continue
		}
		r.nodes = append(r.nodes[:i], r.nodes[i+1:]...)

		logrus.WithFields(logrus.Fields{
			"function": "Remove",
			"node_id":  id,
			"kind":     n.Kind.String(),
		}).Info("Node removed from registry")
		return true
	}
	return false
}

// Lookup returns the node with the given ID, or nil.
func (r *Registry) Lookup(id int) *Node {
	for _, n := range r.nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Nodes returns the nodes in insertion order (z-order, topmost last).
// The returned slice is a snapshot; the pointed-to nodes are live.
func (r *Registry) Nodes() []*Node {
	out := make([]*Node, len(r.nodes))
	copy(out, r.nodes)
	return out
}

// Len returns the number of placed nodes.
func (r *Registry) Len() int {
	return len(r.nodes)
}

// CountKind returns how many placed nodes have the given kind. Lane
// layout uses this to stack same-kind nodes at fixed vertical increments.
func (r *Registry) CountKind(k Kind) int {
	cnt := 0
	for _, n := range r.nodes {
		if n.Kind == k {
			cnt++
		}
	}
	return cnt
}

// Clear removes every node. Used when a persisted document is about to
// be restored over the current canvas.
func (r *Registry) Clear() {
	r.nodes = nil
}

// NextID exposes the current counter value for diagnostics.
func (r *Registry) NextID() int {
	return r.nextID
}
