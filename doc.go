// Package patchbay implements the node-graph audio routing core of a
// tray plugin host: a mutable directed graph of device and plugin nodes
// joined by wires, mirrored into a live real-time processing engine and
// persisted across restarts.
//
// Example:
//
//	g, err := patchbay.New(patchbay.Config{
//	    Engine:       eng,
//	    Plugins:      catalog,
//	    Host:         host,
//	    InputNodeID:  fixedInputID,
//	    OutputNodeID: fixedOutputID,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	g.OnGraphChanged(func() {
//	    data, _ := g.SaveState()
//	    persist(data)
//	})
//
//	mic, _ := g.AddDeviceNode(node.KindInput, "Microphone")
//	spk, _ := g.AddDeviceNode(node.KindOutput, "Speakers")
//	rev, err := g.AddPluginNode(reverbDescription)
//	if err != nil {
//	    // surface to the user; the graph is unchanged
//	}
//
//	g.Connect(mic.ID, rev.ID)
//	g.Connect(rev.ID, spk.ID)
//
// All mutation happens on a single control thread; the only boundary to
// the audio callback is the engine's own thread-safe mutation API.
package patchbay
