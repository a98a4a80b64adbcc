package bootstrap

import (
	"github.com/cockroachdb/errors"
)

// DeviceReport describes one physical device as the driver enumerated it.
type DeviceReport struct {
	Index          int
	Properties     *DeviceProperties
	Features       *DeviceFeatures
	QueueFamilies  []QueueFamily
	GraphicsFamily *int
	// Err is set when the device's properties could not be read. Properties
	// is nil then; the queue families are still reported.
	Err error
}

// Report is a read-only view of what the driver offers: the catalog, every
// physical device and the device first-fit selection would pick.
type Report struct {
	Catalog *Catalog
	Devices []DeviceReport
	// Selected indexes Devices, or is -1 if no device has a graphics family.
	Selected int
}

// Inspect builds a throwaway context and reports on every physical device
// without creating a logical device. Unlike SelectPhysicalDevice it inspects
// all devices.
func Inspect(driver GlobalDriver, windowing Windowing, opts Options) (*Report, error) {
	catalog, err := Snapshot(driver, opts)
	if err != nil {
		return nil, err
	}

	ctx, err := BuildContext(driver, catalog, windowing.RequiredInstanceExtensions(), opts)
	if err != nil {
		return nil, err
	}
	defer ctx.Destroy()

	physicalDevices, err := ctx.Driver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, errors.Wrap(err, "enumerate physical devices")
	}

	report := &Report{Catalog: catalog, Selected: -1}
	for deviceIdx, device := range physicalDevices {
		properties, err := ctx.Driver.Properties(device)
		if err != nil {
			err = errors.Wrapf(err, "get properties of physical device %d", deviceIdx)
			ctx.log.WithField("device", deviceIdx).WithError(err).Warn("could not get physical device properties")
		}

		families := ctx.Driver.QueueFamilies(device)
		graphics := findFamily(families, QueueGraphics)
		if graphics != nil && report.Selected < 0 {
			report.Selected = deviceIdx
		}

		report.Devices = append(report.Devices, DeviceReport{
			Index:          deviceIdx,
			Properties:     properties,
			Features:       ctx.Driver.Features(device),
			QueueFamilies:  families,
			GraphicsFamily: graphics,
			Err:            err,
		})
	}

	return report, nil
}
