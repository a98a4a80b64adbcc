package bootstrap

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// SelectPhysicalDevice returns the first device, in driver order, that has a
// graphics queue family. Devices after the chosen one are not inspected.
//
// Properties and features of each candidate are read and logged, but they
// play no part in the choice.
func SelectPhysicalDevice(ctx *Context) (PhysicalDevice, error) {
	physicalDevices, err := ctx.Driver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, errors.Wrap(err, "enumerate physical devices")
	}

	if len(physicalDevices) == 0 {
		return nil, errors.Mark(errors.WithStack(ErrNoPhysicalDevices), ErrNoSuitableDevice)
	}

	for deviceIdx, device := range physicalDevices {
		log := ctx.log.WithField("device", deviceIdx)
		describeDevice(log, ctx.Driver, device)

		if isDeviceSuitable(ctx.Driver, device) {
			log.Debug("physical device selected")
			return device, nil
		}
		log.Debug("physical device rejected: no graphics queue family")
	}

	return nil, errors.Wrapf(ErrNoSuitableDevice, "none of %d physical device(s) has a graphics queue family", len(physicalDevices))
}

func isDeviceSuitable(driver InstanceDriver, device PhysicalDevice) bool {
	indices := findQueueFamilies(driver, device)
	return indices.IsComplete()
}

func describeDevice(log logrus.FieldLogger, driver InstanceDriver, device PhysicalDevice) {
	properties, err := driver.Properties(device)
	if err != nil {
		log.WithError(err).Debug("could not get physical device properties")
		return
	}
	features := driver.Features(device)

	entry := log.WithFields(logrus.Fields{
		"name":     properties.Name,
		"type":     properties.Type,
		"vendorID": properties.VendorID,
		"deviceID": properties.DeviceID,
		"cacheID":  properties.PipelineCacheUUID.String(),
	})
	if features != nil {
		entry = entry.WithField("geometryShader", features.GeometryShader)
	}
	entry.Debug("inspecting physical device")
}
