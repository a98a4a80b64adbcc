package bootstrap

import (
	"github.com/cockroachdb/errors"
)

// Device is a logical device with the single graphics queue it was created with.
type Device struct {
	Driver           DeviceDriver
	PhysicalDevice   PhysicalDevice
	QueueFamilyIndex int
	GraphicsQueue    Queue
}

// BuildDevice creates a logical device on physicalDevice with one graphics
// queue at priority 1.0 and no device extensions. When the context has
// diagnostics enabled its layers are declared on the device too, for
// implementations older than 1.0.13 that still read device layers.
func BuildDevice(ctx *Context, physicalDevice PhysicalDevice) (*Device, error) {
	indices := findQueueFamilies(ctx.Driver, physicalDevice)
	if !indices.IsComplete() {
		return nil, errors.Wrap(ErrNoSuitableDevice, "physical device has no graphics queue family")
	}
	queueFamilyIndex := *indices.GraphicsFamily

	info := DeviceCreateInfo{
		QueueCreateInfos: []DeviceQueueCreateInfo{
			{
				QueueFamilyIndex: queueFamilyIndex,
				QueuePriorities:  []float32{1.0},
			},
		},
	}
	if ctx.diagnostics {
		info.EnabledLayerNames = ctx.Layers
	}

	deviceDriver, err := ctx.Driver.CreateDevice(physicalDevice, info)
	if err != nil {
		return nil, driverCreationError(err, "create logical device")
	}

	return &Device{
		Driver:           deviceDriver,
		PhysicalDevice:   physicalDevice,
		QueueFamilyIndex: queueFamilyIndex,
		GraphicsQueue:    deviceDriver.GetQueue(queueFamilyIndex, 0),
	}, nil
}

// Destroy destroys the logical device. The queue goes with it.
func (d *Device) Destroy() {
	if d == nil || d.Driver == nil {
		return
	}
	d.Driver.DestroyDevice()
	d.Driver = nil
	d.GraphicsQueue = nil
}
