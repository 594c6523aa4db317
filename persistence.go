package patchbay

import (
	"encoding/base64"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"

	"github.com/hostwire/patchbay/node"
	"github.com/hostwire/patchbay/plugin"
)

// graphDocument is the persisted shape of the whole graph. Node and wire
// order is insertion order; it carries no reload semantics beyond
// reproducing the z-order.
type graphDocument struct {
	Nodes []documentNode `json:"nodes"`
	Wires []documentWire `json:"wires"`
}

// documentNode is one persisted node. The plugin fields are present for
// Plugin kind only.
type documentNode struct {
	ID   int    `json:"id"`
	Type int    `json:"type"`
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`

	PluginName             string `json:"pluginName,omitempty"`
	PluginFormat           string `json:"pluginFormat,omitempty"`
	PluginFileOrIdentifier string `json:"pluginFileOrIdentifier,omitempty"`

	// PluginState is the processor's opaque state blob, base64-encoded.
	PluginState string `json:"pluginState,omitempty"`
}

type documentWire struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// SaveState serializes the full graph: every node (with the plugin
// identity triple and the state blob captured from the live processor for
// Plugin kind) and every wire. Numeric IDs are stored verbatim.
func (g *Graph) SaveState() ([]byte, error) {
	doc := graphDocument{
		Nodes: make([]documentNode, 0, g.registry.Len()),
		Wires: make([]documentWire, 0, g.wires.Len()),
	}

	for _, n := range g.registry.Nodes() {
		dn := documentNode{
			ID:   n.ID,
			Type: int(n.Kind),
			Name: n.Name,
			X:    n.Pos.X,
			Y:    n.Pos.Y,
		}

		if n.Kind == node.KindPlugin && n.Plugin != nil {
			dn.PluginName = n.Plugin.Name
			dn.PluginFormat = n.Plugin.Format
			dn.PluginFileOrIdentifier = n.Plugin.FileOrIdentifier

			if proc, ok := g.eng.NodeProcessor(n.EngineID); ok {
				dn.PluginState = base64.StdEncoding.EncodeToString(proc.StateInformation())
			} else {
				logrus.WithFields(logrus.Fields{
					"function":  "SaveState",
					"node_id":   n.ID,
					"engine_id": n.EngineID,
				}).Warn("Engine has no processor for plugin node, saving without state blob")
			}
		}

		doc.Nodes = append(doc.Nodes, dn)
	}

	for _, w := range g.wires.Wires() {
		doc.Wires = append(doc.Wires, documentWire{From: w.From, To: w.To})
	}

	data, err := sonic.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize graph: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "SaveState",
		"nodes":    len(doc.Nodes),
		"wires":    len(doc.Wires),
		"bytes":    len(data),
	}).Debug("Graph state serialized")

	return data, nil
}

// LoadState rebuilds the graph from a persisted document. It is meant to
// run once at startup, over an engine already seeded with the two fixed
// lane identities; those are never created or cleared here.
//
// Nodes are restored first, advancing the ID counter past every ID the
// document mentions, even for nodes that end up dropped, so fresh nodes
// never reuse a persisted identity. Input/Output kinds re-bind to the
// fixed identities; Plugin kinds
// resolve a descriptor from the known-plugin catalog, instantiate a fresh
// processor, and restore its state blob. A plugin that can no longer be
// instantiated is dropped with a warning, and wires referencing it are
// dropped with it; the rest of the document loads normally. Surviving
// wires are replayed through the same connect path used at runtime, and a
// final engine rebuild runs before returning.
func (g *Graph) LoadState(data []byte) error {
	var doc graphDocument
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse graph document: %w", err)
	}

	g.registry.Clear()
	g.wires.Clear()
	g.selected = -1

	for _, dn := range doc.Nodes {
		g.registry.AdvanceID(dn.ID)
		g.restoreNode(dn)
	}

	replayed := 0
	for _, dw := range doc.Wires {
		if !g.wires.CanConnect(dw.From, dw.To) {
			logrus.WithFields(logrus.Fields{
				"function": "LoadState",
				"from":     dw.From,
				"to":       dw.To,
			}).Warn("Dropping persisted wire with missing or invalid endpoint")
			continue
		}
		g.commitWire(dw.From, dw.To)
		replayed++
	}

	g.adapter.Rebuild()

	logrus.WithFields(logrus.Fields{
		"function":       "LoadState",
		"restored_nodes": g.registry.Len(),
		"restored_wires": replayed,
		"dropped_wires":  len(doc.Wires) - replayed,
	}).Info("Graph state restored")

	return nil
}

// restoreNode rebuilds one persisted node. Device kinds always restore;
// a plugin that fails to resolve or instantiate is skipped so the rest of
// the document can load.
func (g *Graph) restoreNode(dn documentNode) {
	n := node.Node{
		ID:   dn.ID,
		Kind: node.Kind(dn.Type),
		Name: dn.Name,
		Pos:  node.Position{X: dn.X, Y: dn.Y},
	}

	switch n.Kind {
	case node.KindInput:
		n.EngineID = g.inputID
	case node.KindOutput:
		n.EngineID = g.outputID
	case node.KindPlugin:
		desc := plugin.Resolve(g.plugins.Types(), plugin.Description{
			Name:             dn.PluginName,
			Format:           dn.PluginFormat,
			FileOrIdentifier: dn.PluginFileOrIdentifier,
		})

		sampleRate := g.eng.CurrentSampleRate()
		blockSize := g.eng.CurrentBlockSize()

		proc, err := g.host.CreateInstance(desc, sampleRate, blockSize)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"function":    "restoreNode",
				"node_id":     dn.ID,
				"plugin_name": desc.Name,
				"error":       err.Error(),
			}).Warn("Dropping persisted plugin node, instantiation failed")
			return
		}

		if dn.PluginState != "" {
			blob, err := base64.StdEncoding.DecodeString(dn.PluginState)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"function": "restoreNode",
					"node_id":  dn.ID,
					"error":    err.Error(),
				}).Warn("Persisted plugin state blob is not valid base64, skipping restore")
			} else if err := proc.SetStateInformation(blob); err != nil {
				logrus.WithFields(logrus.Fields{
					"function":    "restoreNode",
					"node_id":     dn.ID,
					"plugin_name": desc.Name,
					"error":       err.Error(),
				}).Warn("Plugin rejected persisted state blob")
			}
		}
		proc.Prepare(sampleRate, blockSize)

		engineID, err := g.adapter.CreateNode(proc)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"function":    "restoreNode",
				"node_id":     dn.ID,
				"plugin_name": desc.Name,
				"error":       err.Error(),
			}).Warn("Dropping persisted plugin node, engine rejected processor")
			return
		}

		n.EngineID = engineID
		n.Plugin = &desc
	default:
		logrus.WithFields(logrus.Fields{
			"function": "restoreNode",
			"node_id":  dn.ID,
			"type":     dn.Type,
		}).Warn("Dropping persisted node with unknown type")
		return
	}

	g.registry.AddRestored(n)
}
