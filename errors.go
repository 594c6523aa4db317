package patchbay

import "errors"

var (
	// ErrPluginInstantiation wraps a plugin host failure while creating a
	// processor. The graph is left unchanged when it is returned.
	ErrPluginInstantiation = errors.New("plugin instantiation failed")

	// ErrInvalidKind is returned when a device operation is given a
	// non-device kind.
	ErrInvalidKind = errors.New("invalid node kind")

	// ErrEmptyDeviceName is returned when a device node is added without
	// a display name.
	ErrEmptyDeviceName = errors.New("device name cannot be empty")
)
