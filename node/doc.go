// Package node implements the processing-node registry: identity and
// metadata for every element placed on the routing canvas.
//
// # Overview
//
// A Node is a tagged variant over three kinds (Input device, Output
// device, and Plugin) with kind-specific behavior handled by exhaustive
// switches rather than a type hierarchy, which keeps the registry flat
// and trivially serializable.
//
// The Registry owns the node list. Insertion order is significant: it is
// the z-order used for hit-testing, most-recently-added on top. IDs come
// from a strictly increasing counter seeded at 1 and advanced past the
// highest restored ID on deserialization, so freshly created and restored
// nodes can never collide.
package node
