package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostwire/patchbay/node"
)

func testSet() *Set {
	nodes := map[int]*node.Node{
		1: {ID: 1, Kind: node.KindInput, Name: "Mic"},
		2: {ID: 2, Kind: node.KindPlugin, Name: "Reverb"},
		3: {ID: 3, Kind: node.KindPlugin, Name: "Delay"},
		4: {ID: 4, Kind: node.KindOutput, Name: "Speakers"},
	}
	return NewSet(func(id int) *node.Node { return nodes[id] })
}

func TestCanConnectRules(t *testing.T) {
	s := testSet()

	assert.True(t, s.CanConnect(1, 2), "input -> plugin must be valid")
	assert.True(t, s.CanConnect(2, 3), "plugin -> plugin must be valid")
	assert.True(t, s.CanConnect(2, 4), "plugin -> output must be valid")
	assert.True(t, s.CanConnect(1, 4), "input -> output must be valid")

	assert.False(t, s.CanConnect(2, 2), "self-loop must be rejected")
	assert.False(t, s.CanConnect(4, 2), "output has no output port")
	assert.False(t, s.CanConnect(2, 1), "input has no input port")
	assert.False(t, s.CanConnect(1, 99), "nonexistent destination must be rejected")
	assert.False(t, s.CanConnect(99, 2), "nonexistent source must be rejected")
}

func TestConnectEnforcesSingleInput(t *testing.T) {
	s := testSet()

	removed := s.Connect(1, 2)
	assert.Empty(t, removed)

	// A second source into the same destination supersedes the first.
	removed = s.Connect(3, 2)
	require.Len(t, removed, 1)
	assert.Equal(t, Wire{From: 1, To: 2}, removed[0])

	wires := s.Wires()
	require.Len(t, wires, 1)
	assert.Equal(t, Wire{From: 3, To: 2}, wires[0])
}

func TestConnectDuplicateGesture(t *testing.T) {
	s := testSet()

	s.Connect(1, 2)
	removed := s.Connect(1, 2)

	// The duplicate supersedes itself: still exactly one wire.
	require.Len(t, removed, 1)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, Wire{From: 1, To: 2}, s.Wires()[0])
}

func TestSingleIncomingInvariant(t *testing.T) {
	s := testSet()

	s.Connect(1, 2)
	s.Connect(1, 3)
	s.Connect(3, 2)
	s.Connect(2, 4)
	s.Connect(3, 4)

	for _, id := range []int{2, 3, 4} {
		assert.LessOrEqual(t, len(s.Incoming(id)), 1,
			"node %d must have at most one incoming wire", id)
	}
}

func TestFanOutAllowed(t *testing.T) {
	s := testSet()

	s.Connect(1, 2)
	s.Connect(1, 3)

	assert.Equal(t, 2, s.Len(), "a source may feed many destinations")
	assert.Len(t, s.WiresOf(1), 2)
}

func TestDisconnectAll(t *testing.T) {
	s := testSet()

	s.Connect(1, 2)
	s.Connect(2, 3)
	s.Connect(3, 4)

	removed := s.DisconnectAll(2)
	require.Len(t, removed, 2)

	for _, w := range s.Wires() {
		assert.NotEqual(t, 2, w.From)
		assert.NotEqual(t, 2, w.To)
	}
	assert.Equal(t, 1, s.Len())
}

func TestRemoveExactWire(t *testing.T) {
	s := testSet()

	s.Connect(1, 2)
	s.Connect(2, 4)

	assert.True(t, s.Remove(1, 2))
	assert.False(t, s.Remove(1, 2), "second removal must report false")
	assert.Equal(t, 1, s.Len())
}

func TestClearIncoming(t *testing.T) {
	s := testSet()

	s.Connect(1, 2)
	s.Connect(2, 4)

	removed := s.ClearIncoming(2)
	require.Len(t, removed, 1)
	assert.Equal(t, Wire{From: 1, To: 2}, removed[0])
	assert.Empty(t, s.Incoming(2))

	// Unrelated wires are untouched.
	assert.Len(t, s.Incoming(4), 1)
}
