package engine

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Adapter mirrors canvas-level graph mutations into the real-time engine.
//
// Every audible link between two nodes is a stereo pair: channel 0 and
// channel 1 are routed together. The adapter is deliberately forgiving:
// engine-side failure is advisory, never fatal, because the audio thread
// must keep running with the last valid topology.
type Adapter struct {
	engine Engine
}

// NewAdapter creates an Adapter over the given engine.
func NewAdapter(e Engine) (*Adapter, error) {
	if e == nil {
		return nil, errors.New("engine cannot be nil")
	}
	return &Adapter{engine: e}, nil
}

// CreateNode inserts a plugin processor into the engine and returns its
// fresh engine identity. Input/Output lane nodes never pass through here;
// they bind to the two fixed identities created at process startup.
func (a *Adapter) CreateNode(p Processor) (NodeID, error) {
	if p == nil {
		return 0, errors.New("processor cannot be nil")
	}

	id, err := a.engine.AddNode(p)
	if err != nil {
		return 0, fmt.Errorf("failed to add engine node: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":  "CreateNode",
		"engine_id": id,
	}).Debug("Engine node created")

	return id, nil
}

// RemoveNode tears down an engine node and all its engine-side
// connections. A node the engine no longer recognizes is skipped with a
// diagnostic.
func (a *Adapter) RemoveNode(id NodeID) {
	if !a.engine.HasNode(id) {
		logrus.WithFields(logrus.Fields{
			"function":  "RemoveNode",
			"engine_id": id,
		}).Warn("Engine does not recognize node, skipping removal")
		return
	}

	if err := a.engine.RemoveNode(id); err != nil {
		logrus.WithFields(logrus.Fields{
			"function":  "RemoveNode",
			"engine_id": id,
			"error":     err.Error(),
		}).Warn("Engine node removal failed")
	}
}

// ConnectStereo establishes the channel-0 and channel-1 routes between two
// engine nodes. If one channel fails the other is kept: a mono link is
// acceptable degraded behavior, not a reason to tear the gesture down.
// The whole operation is skipped when either endpoint is unknown to the
// engine (stale reference).
func (a *Adapter) ConnectStereo(from, to NodeID) {
	if !a.engine.HasNode(from) {
		logrus.WithFields(logrus.Fields{
			"function":  "ConnectStereo",
			"engine_id": from,
		}).Warn("Source node not found in engine, skipping connection")
		return
	}
	if !a.engine.HasNode(to) {
		logrus.WithFields(logrus.Fields{
			"function":  "ConnectStereo",
			"engine_id": to,
		}).Warn("Target node not found in engine, skipping connection")
		return
	}

	for ch := 0; ch < 2; ch++ {
		if !a.engine.Connect(from, ch, to, ch) {
			logrus.WithFields(logrus.Fields{
				"function": "ConnectStereo",
				"from":     from,
				"to":       to,
				"channel":  ch,
			}).Warn("Engine rejected channel connection")
		}
	}

	logrus.WithFields(logrus.Fields{
		"function": "ConnectStereo",
		"from":     from,
		"to":       to,
	}).Debug("Stereo connection established")
}

// DisconnectStereo removes the channel-0 and channel-1 routes between two
// engine nodes. A route that does not exist is a no-op.
func (a *Adapter) DisconnectStereo(from, to NodeID) {
	for ch := 0; ch < 2; ch++ {
		a.engine.Disconnect(from, ch, to, ch)
	}
}

// Rebuild recomputes the engine's processing schedule. Called after every
// topology-affecting batch so the next audio callback observes the change.
func (a *Adapter) Rebuild() {
	a.engine.Rebuild()
}
