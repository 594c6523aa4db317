package patchbay

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hostwire/patchbay/canvas"
	"github.com/hostwire/patchbay/engine"
	"github.com/hostwire/patchbay/node"
	"github.com/hostwire/patchbay/plugin"
	"github.com/hostwire/patchbay/wire"
)

// Default canvas extent before the host reports a real window size.
const (
	DefaultWidth  = 960
	DefaultHeight = 540
)

// Config carries the external collaborators a Graph needs. All
// dependencies are explicit; the core holds no process-wide state.
type Config struct {
	// Engine is the real-time processing engine handle.
	Engine engine.Engine

	// Plugins is the known-plugin descriptor source.
	Plugins plugin.Catalog

	// Host instantiates plugin processors from descriptors.
	Host plugin.Host

	// InputNodeID and OutputNodeID are the two fixed engine identities
	// representing the graph's single input and output point. They are
	// created once at process startup, outside this core, and are never
	// created or removed by it.
	InputNodeID  engine.NodeID
	OutputNodeID engine.NodeID

	// Width and Height set the initial canvas extent. Zero values fall
	// back to DefaultWidth/DefaultHeight.
	Width  int
	Height int
}

// Graph is the mutation engine tying together the node registry, the
// wire set, and the live engine adapter.
//
// A Graph is owned by a single control thread: all mutation, persistence,
// and gesture dispatch must happen on that thread. The engine's own
// mutation API is the sole thread-safe boundary toward the audio
// callback.
type Graph struct {
	registry *node.Registry
	wires    *wire.Set
	adapter  *engine.Adapter

	eng     engine.Engine
	plugins plugin.Catalog
	host    plugin.Host

	inputID  engine.NodeID
	outputID engine.NodeID

	size     canvas.Size
	selected int

	// Callbacks
	graphChangedCallback     func()
	managePluginsCallback    func()
	editNodeCallback         func(nodeID int, kind node.Kind)
	doubleClickLeftCallback  func()
	doubleClickRightCallback func()
}

// New creates a Graph over the given collaborators.
func New(cfg Config) (*Graph, error) {
	if cfg.Engine == nil {
		return nil, errors.New("engine cannot be nil")
	}
	if cfg.Plugins == nil {
		return nil, errors.New("plugin catalog cannot be nil")
	}
	if cfg.Host == nil {
		return nil, errors.New("plugin host cannot be nil")
	}
	if cfg.InputNodeID == 0 || cfg.OutputNodeID == 0 {
		return nil, errors.New("fixed input/output engine identities must be supplied")
	}

	adapter, err := engine.NewAdapter(cfg.Engine)
	if err != nil {
		return nil, err
	}

	size := canvas.Size{W: cfg.Width, H: cfg.Height}
	if size.W <= 0 {
		size.W = DefaultWidth
	}
	if size.H <= 0 {
		size.H = DefaultHeight
	}

	g := &Graph{
		registry: node.NewRegistry(),
		adapter:  adapter,
		eng:      cfg.Engine,
		plugins:  cfg.Plugins,
		host:     cfg.Host,
		inputID:  cfg.InputNodeID,
		outputID: cfg.OutputNodeID,
		size:     size,
		selected: -1,
	}
	g.wires = wire.NewSet(g.registry.Lookup)

	logrus.WithFields(logrus.Fields{
		"function":  "New",
		"input_id":  cfg.InputNodeID,
		"output_id": cfg.OutputNodeID,
		"width":     size.W,
		"height":    size.H,
	}).Info("Graph created")

	return g, nil
}

// OnGraphChanged registers the notification fired after every committed
// mutation. The host uses it to persist the current state.
func (g *Graph) OnGraphChanged(cb func()) {
	g.graphChangedCallback = cb
}

// OnManagePlugins registers the hook forwarded when the user asks for the
// plugin-management window.
func (g *Graph) OnManagePlugins(cb func()) {
	g.managePluginsCallback = cb
}

// OnEditNode registers the hook forwarded when a node is double-clicked,
// so the host can open a device-selection dialog or plugin editor.
func (g *Graph) OnEditNode(cb func(nodeID int, kind node.Kind)) {
	g.editNodeCallback = cb
}

// OnDoubleClickLeft registers the hook forwarded when the empty input
// lane is double-clicked.
func (g *Graph) OnDoubleClickLeft(cb func()) {
	g.doubleClickLeftCallback = cb
}

// OnDoubleClickRight registers the hook forwarded when the empty output
// lane is double-clicked.
func (g *Graph) OnDoubleClickRight(cb func()) {
	g.doubleClickRightCallback = cb
}

// SetCanvasSize updates the canvas extent used for lane and default
// plugin placement. Existing node positions are untouched.
func (g *Graph) SetCanvasSize(w, h int) {
	if w > 0 {
		g.size.W = w
	}
	if h > 0 {
		g.size.H = h
	}
}

// CanvasSize returns the current canvas extent.
func (g *Graph) CanvasSize() canvas.Size {
	return g.size
}

// Nodes returns the placed nodes in insertion order (z-order).
func (g *Graph) Nodes() []*node.Node {
	return g.registry.Nodes()
}

// Wires returns the committed wires in insertion order.
func (g *Graph) Wires() []wire.Wire {
	return g.wires.Wires()
}

// Lookup returns the node with the given ID, or nil.
func (g *Graph) Lookup(id int) *node.Node {
	return g.registry.Lookup(id)
}

// AddDeviceNode places an Input or Output lane node bound to the fixed
// engine identity for its lane. No plugin instantiation is involved; the
// call succeeds whenever a device name is supplied.
func (g *Graph) AddDeviceNode(kind node.Kind, name string) (*node.Node, error) {
	if kind != node.KindInput && kind != node.KindOutput {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}
	if name == "" {
		return nil, ErrEmptyDeviceName
	}

	engineID := g.inputID
	if kind == node.KindOutput {
		engineID = g.outputID
	}

	n := g.registry.Add(node.Node{
		Kind:     kind,
		Name:     name,
		Pos:      canvas.LanePosition(kind, g.registry.CountKind(kind), g.size),
		EngineID: engineID,
	})

	g.notifyChanged()
	return n, nil
}

// AddPluginNode instantiates a plugin at the engine's current sample rate
// and block size, inserts its processor into the engine, and places the
// node at the default stacked center position. On any failure nothing is
// added: the operation is all-or-nothing.
func (g *Graph) AddPluginNode(desc plugin.Description) (*node.Node, error) {
	sampleRate := g.eng.CurrentSampleRate()
	blockSize := g.eng.CurrentBlockSize()

	logrus.WithFields(logrus.Fields{
		"function":    "AddPluginNode",
		"plugin_name": desc.Name,
		"format":      desc.Format,
		"sample_rate": sampleRate,
		"block_size":  blockSize,
	}).Info("Instantiating plugin")

	proc, err := g.host.CreateInstance(desc, sampleRate, blockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPluginInstantiation, desc.Name, err)
	}
	proc.Prepare(sampleRate, blockSize)

	engineID, err := g.adapter.CreateNode(proc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPluginInstantiation, desc.Name, err)
	}

	n := g.registry.Add(node.Node{
		Kind:     node.KindPlugin,
		Name:     desc.Name,
		Pos:      canvas.DefaultPluginPosition(g.registry.CountKind(node.KindPlugin), g.size),
		EngineID: engineID,
		Plugin:   &desc,
	})

	g.notifyChanged()
	return n, nil
}

// CanConnect reports whether a wire from one node to another would be
// valid. Exposed so a host can render transient drag feedback; an invalid
// gesture remains a silent non-event either way.
func (g *Graph) CanConnect(from, to int) bool {
	return g.wires.CanConnect(from, to)
}

// Connect validates and commits a wire. Any existing wire into the
// destination is superseded: its engine routes and its set entry are
// removed before the new link is established (single upstream source per
// sink). An invalid pair is discarded without error, since the gesture
// originates from a drag that may legitimately miss its target. It
// reports whether a wire was committed.
func (g *Graph) Connect(from, to int) bool {
	if !g.wires.CanConnect(from, to) {
		logrus.WithFields(logrus.Fields{
			"function": "Connect",
			"from":     from,
			"to":       to,
		}).Debug("Invalid connection gesture discarded")
		return false
	}

	g.commitWire(from, to)
	g.adapter.Rebuild()
	g.notifyChanged()
	return true
}

// commitWire clears the destination's incoming routes and establishes the
// new one, in both the engine and the wire set. Validation, rebuild, and
// notification are the caller's concern; state restore replays persisted
// wires through this same path.
func (g *Graph) commitWire(from, to int) {
	dst := g.registry.Lookup(to)
	for _, old := range g.wires.ClearIncoming(to) {
		if fr := g.registry.Lookup(old.From); fr != nil {
			g.adapter.DisconnectStereo(fr.EngineID, dst.EngineID)
		}
	}

	fr := g.registry.Lookup(from)
	g.adapter.ConnectStereo(fr.EngineID, dst.EngineID)
	g.wires.Connect(from, to)
}

// DisconnectWire removes a single wire and its engine routes. It reports
// whether the wire existed.
func (g *Graph) DisconnectWire(from, to int) bool {
	if !g.wires.Remove(from, to) {
		return false
	}

	fr := g.registry.Lookup(from)
	dst := g.registry.Lookup(to)
	if fr != nil && dst != nil {
		g.adapter.DisconnectStereo(fr.EngineID, dst.EngineID)
	}

	g.adapter.Rebuild()
	g.notifyChanged()
	return true
}

// DisconnectNode removes every wire touching the node, in both the wire
// set and the engine.
func (g *Graph) DisconnectNode(id int) {
	removed := g.wires.DisconnectAll(id)
	for _, w := range removed {
		fr := g.registry.Lookup(w.From)
		dst := g.registry.Lookup(w.To)
		if fr != nil && dst != nil {
			g.adapter.DisconnectStereo(fr.EngineID, dst.EngineID)
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":      "DisconnectNode",
		"node_id":       id,
		"wires_removed": len(removed),
	}).Info("Node disconnected")

	g.adapter.Rebuild()
	g.notifyChanged()
}

// RemoveNode deletes a node: every wire touching it is torn down, its
// engine node is removed (Plugin kind only; the fixed lane identities
// outlive all mutation cycles), and the selection is cleared if it
// pointed at the node. It reports whether the node existed.
func (g *Graph) RemoveNode(id int) bool {
	n := g.registry.Lookup(id)
	if n == nil {
		return false
	}

	for _, w := range g.wires.DisconnectAll(id) {
		fr := g.registry.Lookup(w.From)
		dst := g.registry.Lookup(w.To)
		if fr != nil && dst != nil {
			g.adapter.DisconnectStereo(fr.EngineID, dst.EngineID)
		}
	}

	if n.Kind == node.KindPlugin {
		g.adapter.RemoveNode(n.EngineID)
	}

	g.registry.Remove(id)
	if g.selected == id {
		g.selected = -1
	}

	g.adapter.Rebuild()
	g.notifyChanged()
	return true
}

// Reposition moves a node to the given canvas position. No engine
// interaction takes place; the change notification still fires so
// persisted state stays current.
func (g *Graph) Reposition(id int, pos node.Position) bool {
	n := g.registry.Lookup(id)
	if n == nil || n.Pos == pos {
		return false
	}
	n.Pos = pos
	g.notifyChanged()
	return true
}

// RepositionClamped moves a plugin node so its center follows the drag
// cursor, clamped to the free center zone. Lane nodes are fixed and
// ignore drags.
func (g *Graph) RepositionClamped(id int, cursor node.Position) bool {
	n := g.registry.Lookup(id)
	if n == nil || n.Kind != node.KindPlugin {
		return false
	}
	return g.Reposition(id, canvas.ClampPluginPos(g.size, cursor))
}

// Select marks a node as selected. An unknown ID clears the selection.
func (g *Graph) Select(id int) {
	if g.registry.Lookup(id) == nil {
		g.selected = -1
		return
	}
	g.selected = id
}

// ClearSelection clears the selection.
func (g *Graph) ClearSelection() {
	g.selected = -1
}

// Selected returns the selected node ID, or -1.
func (g *Graph) Selected() int {
	return g.selected
}

// RemoveSelected deletes the selected node (the Delete key path). It
// reports whether a node was removed.
func (g *Graph) RemoveSelected() bool {
	if g.selected < 0 {
		return false
	}
	return g.RemoveNode(g.selected)
}

// DoubleClick resolves a double-click gesture and forwards it upward: a
// hit node goes to the edit-node hook, an empty lane to its add-device
// hook, and the empty center area to the plugin-management hook. The
// core performs no mutation itself here.
func (g *Graph) DoubleClick(p node.Position) {
	if hit := canvas.NodeAt(g.registry.Nodes(), g.size, p); hit >= 0 {
		if n := g.registry.Lookup(hit); n != nil && g.editNodeCallback != nil {
			g.editNodeCallback(n.ID, n.Kind)
		}
		return
	}

	switch canvas.ZoneAt(g.size, p) {
	case canvas.ZoneLeft:
		if g.doubleClickLeftCallback != nil {
			g.doubleClickLeftCallback()
		}
	case canvas.ZoneRight:
		if g.doubleClickRightCallback != nil {
			g.doubleClickRightCallback()
		}
	case canvas.ZoneCenter:
		if g.managePluginsCallback != nil {
			g.managePluginsCallback()
		}
	}
}

// KnownPlugins returns the catalog's current descriptors, for building a
// plugin picker.
func (g *Graph) KnownPlugins() []plugin.Description {
	return g.plugins.Types()
}

func (g *Graph) notifyChanged() {
	if g.graphChangedCallback != nil {
		g.graphChangedCallback()
	}
}
