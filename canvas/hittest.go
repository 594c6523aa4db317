package canvas

import (
	"github.com/hostwire/patchbay/node"
)

// NodeAt returns the ID of the topmost node under the point, or -1.
// Nodes are tested in reverse insertion order, most-recently-added first.
func NodeAt(nodes []*node.Node, size Size, p node.Position) int {
	for i := len(nodes) - 1; i >= 0; i-- {
		if NodeBounds(nodes[i], size).Contains(p) {
			return nodes[i].ID
		}
	}
	return -1
}

// OutputPortAt returns the ID of the node whose output port lies within
// snap distance of the point.
func OutputPortAt(nodes []*node.Node, size Size, p node.Position) (int, bool) {
	for _, n := range nodes {
		pos, ok := OutputPortPos(n, size)
		if ok && withinSnap(pos, p) {
			return n.ID, true
		}
	}
	return -1, false
}

// InputPortAt returns the ID of the node whose input port lies within
// snap distance of the point.
func InputPortAt(nodes []*node.Node, size Size, p node.Position) (int, bool) {
	for _, n := range nodes {
		pos, ok := InputPortPos(n, size)
		if ok && withinSnap(pos, p) {
			return n.ID, true
		}
	}
	return -1, false
}

// WireDrag is an in-progress wire gesture anchored at one port. A drag
// may start from either end: from an output port toward an input port, or
// the reverse.
type WireDrag struct {
	// Origin is the node the drag started on.
	Origin int
	// FromInput is true when the drag started on an input port, so the
	// release point must land on an output port.
	FromInput bool
}

// Resolve maps the gesture's release point to a candidate (from, to)
// pair. ok is false when the release misses every compatible port; the
// caller then discards the gesture as a non-event.
func (d WireDrag) Resolve(nodes []*node.Node, size Size, p node.Position) (from, to int, ok bool) {
	if d.FromInput {
		src, hit := OutputPortAt(nodes, size, p)
		if !hit {
			return -1, -1, false
		}
		return src, d.Origin, true
	}
	dst, hit := InputPortAt(nodes, size, p)
	if !hit {
		return -1, -1, false
	}
	return d.Origin, dst, true
}

func withinSnap(a, b node.Position) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx+dy*dy <= SnapR*SnapR
}
