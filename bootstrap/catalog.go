package bootstrap

import (
	"github.com/cockroachdb/errors"
)

// Catalog is a snapshot of the instance extensions and layers the installed
// driver offers.
type Catalog struct {
	Extensions CapabilitySet
	Layers     CapabilitySet
}

// Snapshot queries the driver for its instance extensions and layers. Nothing
// is cached; each call asks the driver again. With diagnostics enabled the
// result is also logged.
func Snapshot(driver GlobalDriver, opts Options) (*Catalog, error) {
	extensions, err := driver.AvailableExtensions()
	if err != nil {
		return nil, errors.Wrap(err, "enumerate instance extensions")
	}

	layers, err := driver.AvailableLayers()
	if err != nil {
		return nil, errors.Wrap(err, "enumerate instance layers")
	}

	catalog := &Catalog{
		Extensions: NewCapabilitySet(extensions...),
		Layers:     NewCapabilitySet(layers...),
	}

	if opts.Diagnostics {
		log := opts.logger()
		log.Infof("available extensions: %d", len(catalog.Extensions))
		for _, name := range catalog.Extensions.Names() {
			log.WithField("extension", name).Info("available")
		}
		log.Infof("available layers: %d", len(catalog.Layers))
		for _, name := range catalog.Layers.Names() {
			log.WithField("layer", name).Info("available")
		}
	}

	return catalog, nil
}
