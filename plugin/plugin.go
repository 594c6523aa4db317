package plugin

import (
	"github.com/hostwire/patchbay/engine"
	"github.com/sirupsen/logrus"
)

// Description identifies a plugin independently of any live instance.
// It is the triple persisted with a plugin node and matched against the
// known-plugin catalog on load.
type Description struct {
	Name             string
	Format           string
	FileOrIdentifier string
}

// Catalog is an externally maintained list of discoverable plugins.
type Catalog interface {
	// Types returns the currently known plugin descriptors.
	Types() []Description
}

// Host instantiates plugin processors from descriptors. Instantiation may
// load a plugin binary and is treated as a blocking synchronous call on
// the control thread.
type Host interface {
	CreateInstance(desc Description, sampleRate float64, blockSize int) (engine.Processor, error)
}

// Resolve returns the best-matching descriptor for a persisted identity.
// An exact FileOrIdentifier match in the known list wins; otherwise the
// bare persisted triple is returned so instantiation can still be
// attempted against it.
func Resolve(known []Description, want Description) Description {
	for _, d := range known {
		if d.FileOrIdentifier == want.FileOrIdentifier {
			return d
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":           "Resolve",
		"plugin_name":        want.Name,
		"file_or_identifier": want.FileOrIdentifier,
	}).Debug("No catalog match for persisted plugin identity, using persisted triple")

	return want
}
