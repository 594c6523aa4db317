package node

import (
	"github.com/hostwire/patchbay/engine"
	"github.com/hostwire/patchbay/plugin"
)

// Kind discriminates the three node variants.
type Kind uint8

const (
	// KindInput is a hardware/virtual input device node, constrained to
	// the left lane.
	KindInput Kind = iota
	// KindOutput is an output device node, constrained to the right lane.
	KindOutput
	// KindPlugin is a hosted plugin instance, freely positioned.
	KindPlugin
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	case KindPlugin:
		return "plugin"
	}
	return "unknown"
}

// Position is a 2D canvas coordinate. It is persisted for UI restore and
// ignored for all engine purposes.
type Position struct {
	X int
	Y int
}

// Node is a placed graph element.
//
// EngineID links the node to its counterpart in the real-time engine.
// Input and Output kinds bind to the two well-known fixed identities
// created once at process startup; Plugin kind receives a fresh identity
// every time its processor is instantiated, so it is not stable across
// save/reload.
type Node struct {
	ID       int
	Kind     Kind
	Name     string
	Pos      Position
	EngineID engine.NodeID

	// Plugin is the persisted plugin identity. Nil unless Kind is
	// KindPlugin.
	Plugin *plugin.Description
}

// HasInputPort reports whether wires may terminate at this node.
func (n *Node) HasInputPort() bool {
	return n.Kind != KindInput
}

// HasOutputPort reports whether wires may originate from this node.
func (n *Node) HasOutputPort() bool {
	return n.Kind != KindOutput
}
