package engine

// NodeID identifies a node inside the real-time processing engine.
// The zero value means "not present in the engine".
type NodeID uint32

// Processor is an opaque audio processor hosted inside the engine.
// Sample-level processing is entirely the processor's concern; the core
// only moves its serialized state in and out.
type Processor interface {
	// StateInformation returns the processor's opaque state blob.
	StateInformation() []byte

	// SetStateInformation restores a previously captured state blob.
	SetStateInformation(data []byte) error

	// Prepare readies the processor for playback at the given sample
	// rate and block size. Called before the processor is added to the
	// engine and again after state restoration on load.
	Prepare(sampleRate float64, blockSize int)
}

// Engine is the thread-safe mutation surface of the real-time processing
// engine. Every method may be called from the control thread; the engine
// is responsible for publishing changes to its audio callback.
type Engine interface {
	// AddNode inserts a processor into the engine and returns its
	// engine-local identity.
	AddNode(p Processor) (NodeID, error)

	// RemoveNode tears down a node and every connection touching it.
	RemoveNode(id NodeID) error

	// Connect establishes a single-channel route between two nodes.
	// It reports whether the route was established.
	Connect(from NodeID, fromCh int, to NodeID, toCh int) bool

	// Disconnect removes a single-channel route. A missing route
	// reports false.
	Disconnect(from NodeID, fromCh int, to NodeID, toCh int) bool

	// HasNode reports whether the engine currently knows the node.
	HasNode(id NodeID) bool

	// NodeProcessor returns the processor hosted by a node, if any.
	NodeProcessor(id NodeID) (Processor, bool)

	// Rebuild recomputes the processing schedule for the current
	// topology. Must never run on the audio thread; the engine
	// publishes the new schedule to the next audio callback.
	Rebuild()

	// CurrentSampleRate returns the active device sample rate.
	CurrentSampleRate() float64

	// CurrentBlockSize returns the active device buffer size in samples.
	CurrentBlockSize() int
}
