// Package wire implements the connection set: the directed edges drawn
// between nodes on the routing canvas.
//
// # Single-input rule
//
// Every destination node accepts at most one incoming wire at a time,
// modelling a single upstream source per sink. Connect enforces this by
// clearing all existing wires into the destination before inserting the
// new one; a source may still fan out to any number of destinations.
// Duplicate (from, to) pairs are unreachable for the same reason.
//
// Validity checks need node existence and port capability, so the Set is
// constructed with a lookup function instead of owning node state itself.
package wire
