package canvas

import (
	"github.com/hostwire/patchbay/node"
)

// Canvas layout constants, in pixels.
const (
	// NodeW and NodeH are the body dimensions of a plugin node.
	NodeW = 140
	NodeH = 56
	// SideH is the row height of a lane (Input/Output) node.
	SideH = 40
	// PortR is the radius of a port dot.
	PortR = 7
	// ZoneW is the width of each side lane.
	ZoneW = 170
	// HdrH is the height of the lane header strip.
	HdrH = 34
	// SnapR is the pointer distance within which a port accepts a wire.
	SnapR = PortR + 6

	laneGap    = 6
	pluginGapY = 20
	pluginTopY = 60
)

// Size is the canvas extent.
type Size struct {
	W int
	H int
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p node.Position) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Zone identifies one of the three canvas regions.
type Zone uint8

const (
	ZoneLeft Zone = iota
	ZoneCenter
	ZoneRight
)

// ZoneAt returns the zone containing the point.
func ZoneAt(size Size, p node.Position) Zone {
	if p.X < ZoneW {
		return ZoneLeft
	}
	if p.X > size.W-ZoneW {
		return ZoneRight
	}
	return ZoneCenter
}

// LanePosition returns the fixed lane slot for the index-th node of a
// lane kind. Slots advance by fixed vertical increments; removing a node
// never re-slots the others.
func LanePosition(kind node.Kind, index int, size Size) node.Position {
	y := HdrH + laneGap + index*(SideH+laneGap)
	if kind == node.KindOutput {
		return node.Position{X: size.W - ZoneW, Y: y}
	}
	return node.Position{X: 0, Y: y}
}

// DefaultPluginPosition returns the placement for the index-th plugin
// node: horizontally centered in the free zone, stacked below prior
// plugin nodes.
func DefaultPluginPosition(index int, size Size) node.Position {
	cx := (size.W-ZoneW*2)/2 + ZoneW - NodeW/2
	return node.Position{X: cx, Y: pluginTopY + index*(NodeH+pluginGapY)}
}

// NodeBounds returns the hit rectangle of a node.
func NodeBounds(n *node.Node, size Size) Rect {
	switch n.Kind {
	case node.KindInput:
		return Rect{X: 0, Y: n.Pos.Y, W: ZoneW, H: SideH}
	case node.KindOutput:
		return Rect{X: size.W - ZoneW, Y: n.Pos.Y, W: ZoneW, H: SideH}
	default:
		return Rect{X: n.Pos.X, Y: n.Pos.Y, W: NodeW, H: NodeH}
	}
}

// InputPortPos returns the position of a node's input port. ok is false
// for Input nodes, which have no input port.
func InputPortPos(n *node.Node, size Size) (node.Position, bool) {
	switch n.Kind {
	case node.KindInput:
		return node.Position{}, false
	case node.KindOutput:
		return node.Position{X: size.W - ZoneW, Y: n.Pos.Y + SideH/2}, true
	default:
		return node.Position{X: n.Pos.X, Y: n.Pos.Y + NodeH/2}, true
	}
}

// OutputPortPos returns the position of a node's output port. ok is
// false for Output nodes, which have no output port.
func OutputPortPos(n *node.Node, size Size) (node.Position, bool) {
	switch n.Kind {
	case node.KindOutput:
		return node.Position{}, false
	case node.KindInput:
		return node.Position{X: ZoneW, Y: n.Pos.Y + SideH/2}, true
	default:
		return node.Position{X: n.Pos.X + NodeW, Y: n.Pos.Y + NodeH/2}, true
	}
}

// ClampPluginPos converts a drag cursor position into a plugin node
// position clamped to the free center zone, with the cursor at the node
// center.
func ClampPluginPos(size Size, cursor node.Position) node.Position {
	lo := ZoneW
	hi := size.W - ZoneW - NodeW
	x := clamp(cursor.X-NodeW/2, lo, hi)
	y := clamp(cursor.Y-NodeH/2, 0, size.H-NodeH)
	return node.Position{X: x, Y: y}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
