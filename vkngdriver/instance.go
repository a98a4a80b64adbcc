package vkngdriver

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/vkboot/bootstrap"
)

// InstanceDriver wraps a created vkngwrapper instance.
type InstanceDriver struct {
	driver     core1_0.CoreInstanceDriver
	extensions bootstrap.CapabilitySet
}

// Core exposes the underlying vkngwrapper instance driver, for collaborators
// such as surface creation that need it directly.
func (i *InstanceDriver) Core() core1_0.CoreInstanceDriver {
	return i.driver
}

func (i *InstanceDriver) EnumeratePhysicalDevices() ([]bootstrap.PhysicalDevice, error) {
	physicalDevices, _, err := i.driver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, err
	}

	devices := make([]bootstrap.PhysicalDevice, 0, len(physicalDevices))
	for _, device := range physicalDevices {
		devices = append(devices, device)
	}
	return devices, nil
}

func (i *InstanceDriver) QueueFamilies(device bootstrap.PhysicalDevice) []bootstrap.QueueFamily {
	queueFamilies := i.driver.GetPhysicalDeviceQueueFamilyProperties(device.(core1_0.PhysicalDevice))

	families := make([]bootstrap.QueueFamily, 0, len(queueFamilies))
	for _, queueFamily := range queueFamilies {
		families = append(families, bootstrap.QueueFamily{
			QueueFlags: queueFlags(queueFamily.QueueFlags),
			QueueCount: queueFamily.QueueCount,
		})
	}
	return families
}

func (i *InstanceDriver) Properties(device bootstrap.PhysicalDevice) (*bootstrap.DeviceProperties, error) {
	properties, err := i.driver.GetPhysicalDeviceProperties(device.(core1_0.PhysicalDevice))
	if err != nil {
		return nil, err
	}

	return &bootstrap.DeviceProperties{
		Name:              properties.DriverName,
		Type:              deviceType(properties.DriverType),
		VendorID:          properties.VendorID,
		DeviceID:          properties.DeviceID,
		PipelineCacheUUID: properties.PipelineCacheUUID,
	}, nil
}

func (i *InstanceDriver) Features(device bootstrap.PhysicalDevice) *bootstrap.DeviceFeatures {
	features := i.driver.GetPhysicalDeviceFeatures(device.(core1_0.PhysicalDevice))
	if features == nil {
		return nil
	}

	return &bootstrap.DeviceFeatures{
		GeometryShader:    features.GeometryShader,
		SamplerAnisotropy: features.SamplerAnisotropy,
	}
}

func (i *InstanceDriver) CreateDevice(device bootstrap.PhysicalDevice, info bootstrap.DeviceCreateInfo) (bootstrap.DeviceDriver, error) {
	var queueFamilyOptions []core1_0.DeviceQueueCreateInfo
	for _, queueInfo := range info.QueueCreateInfos {
		queueFamilyOptions = append(queueFamilyOptions, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: queueInfo.QueueFamilyIndex,
			QueuePriorities:  queueInfo.QueuePriorities,
		})
	}

	deviceDriver, _, err := i.driver.CreateDevice(device.(core1_0.PhysicalDevice), nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueFamilyOptions,
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
		EnabledExtensionNames: info.EnabledExtensionNames,
		EnabledLayerNames:     info.EnabledLayerNames,
	})
	if err != nil {
		return nil, err
	}

	return &DeviceDriver{driver: deviceDriver}, nil
}

func (i *InstanceDriver) Diagnostics() (bootstrap.DiagnosticsProvider, error) {
	if !i.extensions.Has(ext_debug_utils.ExtensionName) {
		return nil, errors.Wrapf(bootstrap.ErrDiagnosticsUnsupported, "%s not enabled on instance", ext_debug_utils.ExtensionName)
	}

	debugDriver := ext_debug_utils.CreateExtensionDriverFromCoreDriver(i.driver)
	if debugDriver == nil {
		return nil, errors.Wrapf(bootstrap.ErrDiagnosticsUnsupported, "%s entry points not found", ext_debug_utils.ExtensionName)
	}

	return &diagnostics{driver: debugDriver}, nil
}

func (i *InstanceDriver) DestroyInstance() {
	i.driver.DestroyInstance(nil)
}

// DeviceDriver wraps a created vkngwrapper logical device.
type DeviceDriver struct {
	driver core1_0.CoreDeviceDriver
}

// Core exposes the underlying vkngwrapper device driver.
func (d *DeviceDriver) Core() core1_0.CoreDeviceDriver {
	return d.driver
}

func (d *DeviceDriver) GetQueue(queueFamilyIndex int, queueIndex int) bootstrap.Queue {
	return d.driver.GetQueue(queueFamilyIndex, queueIndex)
}

func (d *DeviceDriver) DestroyDevice() {
	d.driver.DestroyDevice(nil)
}
