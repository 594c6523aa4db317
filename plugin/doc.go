// Package plugin defines plugin identity and the collaborator interfaces
// through which the core discovers and instantiates third-party plugins.
//
// Plugin scanning, binary loading, and validation all live outside this
// module; the core only sees a Catalog of descriptors and a Host that can
// turn a descriptor into a live engine.Processor. A Description is also
// the persisted identity used to re-resolve a plugin across restarts.
package plugin
