package canvas

import (
	"testing"

	"github.com/hostwire/patchbay/node"
)

var testSize = Size{W: 960, H: 540}

func TestZoneAt(t *testing.T) {
	cases := []struct {
		x    int
		want Zone
	}{
		{0, ZoneLeft},
		{ZoneW - 1, ZoneLeft},
		{ZoneW, ZoneCenter},
		{480, ZoneCenter},
		{testSize.W - ZoneW, ZoneCenter},
		{testSize.W - ZoneW + 1, ZoneRight},
		{959, ZoneRight},
	}
	for _, tc := range cases {
		if got := ZoneAt(testSize, node.Position{X: tc.x, Y: 100}); got != tc.want {
			t.Errorf("ZoneAt(x=%d) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestLanePositionStacking(t *testing.T) {
	p0 := LanePosition(node.KindInput, 0, testSize)
	p1 := LanePosition(node.KindInput, 1, testSize)

	if p0.X != 0 {
		t.Errorf("Input lane x = %d, want 0", p0.X)
	}
	if p0.Y != HdrH+6 {
		t.Errorf("First lane slot y = %d, want %d", p0.Y, HdrH+6)
	}
	if p1.Y-p0.Y != SideH+6 {
		t.Errorf("Lane increment = %d, want %d", p1.Y-p0.Y, SideH+6)
	}

	out := LanePosition(node.KindOutput, 0, testSize)
	if out.X != testSize.W-ZoneW {
		t.Errorf("Output lane x = %d, want %d", out.X, testSize.W-ZoneW)
	}
}

func TestDefaultPluginPositionStacking(t *testing.T) {
	p0 := DefaultPluginPosition(0, testSize)
	p1 := DefaultPluginPosition(1, testSize)

	wantX := (testSize.W-ZoneW*2)/2 + ZoneW - NodeW/2
	if p0.X != wantX {
		t.Errorf("Plugin default x = %d, want %d (centered)", p0.X, wantX)
	}
	if p1.Y-p0.Y != NodeH+20 {
		t.Errorf("Plugin stack increment = %d, want %d", p1.Y-p0.Y, NodeH+20)
	}
}

func TestPortPositionsPerKind(t *testing.T) {
	in := &node.Node{ID: 1, Kind: node.KindInput, Pos: node.Position{X: 0, Y: 100}}
	out := &node.Node{ID: 2, Kind: node.KindOutput, Pos: node.Position{X: testSize.W - ZoneW, Y: 100}}
	plg := &node.Node{ID: 3, Kind: node.KindPlugin, Pos: node.Position{X: 300, Y: 200}}

	if _, ok := InputPortPos(in, testSize); ok {
		t.Error("Input node must not expose an input port")
	}
	if _, ok := OutputPortPos(out, testSize); ok {
		t.Error("Output node must not expose an output port")
	}

	p, ok := OutputPortPos(in, testSize)
	if !ok || p.X != ZoneW {
		t.Errorf("Input node output port = %+v, want x=%d at lane inner edge", p, ZoneW)
	}

	p, ok = InputPortPos(out, testSize)
	if !ok || p.X != testSize.W-ZoneW {
		t.Errorf("Output node input port = %+v, want x=%d", p, testSize.W-ZoneW)
	}

	pin, _ := InputPortPos(plg, testSize)
	pout, _ := OutputPortPos(plg, testSize)
	if pin.X != plg.Pos.X || pout.X != plg.Pos.X+NodeW {
		t.Errorf("Plugin ports at x=%d/%d, want %d/%d", pin.X, pout.X, plg.Pos.X, plg.Pos.X+NodeW)
	}
	if pin.Y != plg.Pos.Y+NodeH/2 {
		t.Errorf("Plugin input port y = %d, want %d", pin.Y, plg.Pos.Y+NodeH/2)
	}
}

func TestNodeAtReverseZOrder(t *testing.T) {
	// Two overlapping plugin nodes; the later one must win the hit.
	a := &node.Node{ID: 1, Kind: node.KindPlugin, Pos: node.Position{X: 300, Y: 200}}
	b := &node.Node{ID: 2, Kind: node.KindPlugin, Pos: node.Position{X: 320, Y: 210}}
	nodes := []*node.Node{a, b}

	hit := NodeAt(nodes, testSize, node.Position{X: 330, Y: 220})
	if hit != 2 {
		t.Errorf("Overlap hit = %d, want topmost node 2", hit)
	}

	hit = NodeAt(nodes, testSize, node.Position{X: 301, Y: 201})
	if hit != 1 {
		t.Errorf("Non-overlapping corner hit = %d, want 1", hit)
	}

	hit = NodeAt(nodes, testSize, node.Position{X: 10, Y: 10})
	if hit != -1 {
		t.Errorf("Empty area hit = %d, want -1", hit)
	}
}

func TestPortSnapRadius(t *testing.T) {
	plg := &node.Node{ID: 1, Kind: node.KindPlugin, Pos: node.Position{X: 300, Y: 200}}
	nodes := []*node.Node{plg}

	port, _ := OutputPortPos(plg, testSize)

	if id, ok := OutputPortAt(nodes, testSize, node.Position{X: port.X + SnapR, Y: port.Y}); !ok || id != 1 {
		t.Errorf("Point at snap distance must hit the port, got id=%d ok=%v", id, ok)
	}
	if _, ok := OutputPortAt(nodes, testSize, node.Position{X: port.X + SnapR + 1, Y: port.Y}); ok {
		t.Error("Point beyond snap distance must miss the port")
	}
}

func TestClampPluginPos(t *testing.T) {
	// Cursor far left: clamped to the center zone's left edge.
	p := ClampPluginPos(testSize, node.Position{X: 0, Y: -50})
	if p.X != ZoneW || p.Y != 0 {
		t.Errorf("Clamp top-left = %+v, want {%d 0}", p, ZoneW)
	}

	// Cursor far right/bottom: clamped so the node stays on canvas.
	p = ClampPluginPos(testSize, node.Position{X: 5000, Y: 5000})
	if p.X != testSize.W-ZoneW-NodeW || p.Y != testSize.H-NodeH {
		t.Errorf("Clamp bottom-right = %+v", p)
	}

	// Interior cursor: node centered under it.
	p = ClampPluginPos(testSize, node.Position{X: 480, Y: 270})
	if p.X != 480-NodeW/2 || p.Y != 270-NodeH/2 {
		t.Errorf("Interior clamp = %+v", p)
	}
}

func TestWireDragResolve(t *testing.T) {
	src := &node.Node{ID: 1, Kind: node.KindInput, Pos: node.Position{X: 0, Y: 100}}
	dst := &node.Node{ID: 2, Kind: node.KindPlugin, Pos: node.Position{X: 300, Y: 200}}
	nodes := []*node.Node{src, dst}

	dstIn, _ := InputPortPos(dst, testSize)
	srcOut, _ := OutputPortPos(src, testSize)

	// Drag started on the source's output port, released on the
	// destination's input port.
	from, to, ok := WireDrag{Origin: 1}.Resolve(nodes, testSize, dstIn)
	if !ok || from != 1 || to != 2 {
		t.Errorf("Output-origin drag resolved (%d,%d,%v), want (1,2,true)", from, to, ok)
	}

	// Same wire drawn backwards: drag started on the destination's
	// input port, released on the source's output port.
	from, to, ok = WireDrag{Origin: 2, FromInput: true}.Resolve(nodes, testSize, srcOut)
	if !ok || from != 1 || to != 2 {
		t.Errorf("Input-origin drag resolved (%d,%d,%v), want (1,2,true)", from, to, ok)
	}

	// Release in empty space: non-event.
	if _, _, ok := (WireDrag{Origin: 1}).Resolve(nodes, testSize, node.Position{X: 500, Y: 500}); ok {
		t.Error("Release in empty space must not resolve")
	}
}
