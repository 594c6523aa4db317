package enginetest

import (
	"fmt"

	"github.com/hostwire/patchbay/engine"
	"github.com/hostwire/patchbay/plugin"
)

// Route identifies a single-channel engine connection.
type Route struct {
	From   engine.NodeID
	FromCh int
	To     engine.NodeID
	ToCh   int
}

// FakeEngine is an in-memory engine.Engine that records every topology
// mutation for test verification.
type FakeEngine struct {
	nodes  map[engine.NodeID]engine.Processor
	routes map[Route]bool
	nextID engine.NodeID

	// RebuildCount tallies Rebuild calls.
	RebuildCount int

	// FailChannel, when >= 0, makes Connect reject that channel so tests
	// can exercise best-effort degraded connections.
	FailChannel int

	// SampleRate and BlockSize are reported as the current device
	// settings.
	SampleRate float64
	BlockSize  int
}

// NewFakeEngine creates an empty fake engine with typical device
// settings. Plugin node identities are allocated from 1 upward.
func NewFakeEngine() *FakeEngine {
	return &FakeEngine{
		nodes:       make(map[engine.NodeID]engine.Processor),
		routes:      make(map[Route]bool),
		nextID:      1,
		FailChannel: -1,
		SampleRate:  44100,
		BlockSize:   512,
	}
}

// SeedFixedNode pre-registers a well-known identity, standing in for the
// fixed input/output nodes the host application creates at startup.
func (e *FakeEngine) SeedFixedNode(id engine.NodeID) {
	e.nodes[id] = nil
	if id >= e.nextID {
		e.nextID = id + 1
	}
}

// AddNode implements engine.Engine.
func (e *FakeEngine) AddNode(p engine.Processor) (engine.NodeID, error) {
	if p == nil {
		return 0, fmt.Errorf("nil processor")
	}
	id := e.nextID
	e.nextID++
	e.nodes[id] = p
	return id, nil
}

// RemoveNode implements engine.Engine. All routes touching the node are
// torn down with it.
func (e *FakeEngine) RemoveNode(id engine.NodeID) error {
	if _, ok := e.nodes[id]; !ok {
		return fmt.Errorf("node %d not found", id)
	}
	delete(e.nodes, id)
	for r := range e.routes {
		if r.From == id || r.To == id {
			delete(e.routes, r)
		}
	}
	return nil
}

// Connect implements engine.Engine.
func (e *FakeEngine) Connect(from engine.NodeID, fromCh int, to engine.NodeID, toCh int) bool {
	if fromCh == e.FailChannel || toCh == e.FailChannel {
		return false
	}
	if _, ok := e.nodes[from]; !ok {
		return false
	}
	if _, ok := e.nodes[to]; !ok {
		return false
	}
	e.routes[Route{From: from, FromCh: fromCh, To: to, ToCh: toCh}] = true
	return true
}

// Disconnect implements engine.Engine. A missing route reports false.
func (e *FakeEngine) Disconnect(from engine.NodeID, fromCh int, to engine.NodeID, toCh int) bool {
	r := Route{From: from, FromCh: fromCh, To: to, ToCh: toCh}
	if !e.routes[r] {
		return false
	}
	delete(e.routes, r)
	return true
}

// HasNode implements engine.Engine.
func (e *FakeEngine) HasNode(id engine.NodeID) bool {
	_, ok := e.nodes[id]
	return ok
}

// NodeProcessor implements engine.Engine.
func (e *FakeEngine) NodeProcessor(id engine.NodeID) (engine.Processor, bool) {
	p, ok := e.nodes[id]
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

// Rebuild implements engine.Engine.
func (e *FakeEngine) Rebuild() {
	e.RebuildCount++
}

// CurrentSampleRate implements engine.Engine.
func (e *FakeEngine) CurrentSampleRate() float64 {
	return e.SampleRate
}

// CurrentBlockSize implements engine.Engine.
func (e *FakeEngine) CurrentBlockSize() int {
	return e.BlockSize
}

// RouteCount returns the number of live single-channel routes.
func (e *FakeEngine) RouteCount() int {
	return len(e.routes)
}

// HasStereoRoute reports whether both channel routes exist between two
// nodes.
func (e *FakeEngine) HasStereoRoute(from, to engine.NodeID) bool {
	return e.routes[Route{From: from, FromCh: 0, To: to, ToCh: 0}] &&
		e.routes[Route{From: from, FromCh: 1, To: to, ToCh: 1}]
}

// RoutesTouching returns how many routes reference the node as either
// endpoint.
func (e *FakeEngine) RoutesTouching(id engine.NodeID) int {
	cnt := 0
	for r := range e.routes {
		if r.From == id || r.To == id {
			cnt++
		}
	}
	return cnt
}

// NodeCount returns the number of live engine nodes, fixed identities
// included.
func (e *FakeEngine) NodeCount() int {
	return len(e.nodes)
}

// FakeProcessor is a stateful engine.Processor that records Prepare
// calls.
type FakeProcessor struct {
	Desc  plugin.Description
	State []byte

	PreparedRate  float64
	PreparedBlock int
	PrepareCalls  int
}

// StateInformation implements engine.Processor.
func (p *FakeProcessor) StateInformation() []byte {
	out := make([]byte, len(p.State))
	copy(out, p.State)
	return out
}

// SetStateInformation implements engine.Processor.
func (p *FakeProcessor) SetStateInformation(data []byte) error {
	p.State = make([]byte, len(data))
	copy(p.State, data)
	return nil
}

// Prepare implements engine.Processor.
func (p *FakeProcessor) Prepare(sampleRate float64, blockSize int) {
	p.PreparedRate = sampleRate
	p.PreparedBlock = blockSize
	p.PrepareCalls++
}

// FakeCatalog is a static plugin.Catalog.
type FakeCatalog struct {
	Plugins []plugin.Description
}

// Types implements plugin.Catalog.
func (c *FakeCatalog) Types() []plugin.Description {
	return c.Plugins
}

// FakeHost is a plugin.Host producing FakeProcessors, with per-plugin
// failure injection keyed on FileOrIdentifier.
type FakeHost struct {
	// FailFor makes CreateInstance fail for the listed identifiers.
	FailFor map[string]bool

	// InitialState, when set for an identifier, seeds the processor's
	// state blob at instantiation.
	InitialState map[string][]byte

	// Created collects every processor handed out, in order.
	Created []*FakeProcessor
}

// CreateInstance implements plugin.Host.
func (h *FakeHost) CreateInstance(desc plugin.Description, sampleRate float64, blockSize int) (engine.Processor, error) {
	if h.FailFor[desc.FileOrIdentifier] {
		return nil, fmt.Errorf("cannot load plugin %q", desc.Name)
	}
	p := &FakeProcessor{Desc: desc}
	if h.InitialState != nil {
		if st, ok := h.InitialState[desc.FileOrIdentifier]; ok {
			p.State = append([]byte(nil), st...)
		}
	}
	h.Created = append(h.Created, p)
	return p, nil
}
