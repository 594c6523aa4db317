// Package engine defines the boundary to the real-time audio processing
// engine and the adapter that mirrors canvas graph mutations into it.
//
// # Overview
//
// The package provides two things:
//
//   - Engine and Processor: the minimal interfaces the core needs from a
//     real-time processing engine and from an opaque plugin processor.
//     The engine owns all processing-thread-visible state; the core only
//     issues topology mutations through the engine's own thread-safe API.
//   - Adapter: the translation layer that turns canvas-level operations
//     (connect two nodes, remove a node) into engine calls, handling
//     stereo channel pairing, stale node identities, and topology
//     rebuild scheduling.
//
// # Failure policy
//
// The audio callback must keep running with the last valid topology no
// matter what the control thread does, so the Adapter never propagates
// engine-reported failure as an error. A connection that only lands on
// one of the two stereo channels is logged and kept; a reference to a
// node the engine no longer knows is logged and skipped.
package engine
