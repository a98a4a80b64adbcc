// Package vkngdriver implements the bootstrap driver interfaces on top of
// vkngwrapper.
package vkngdriver

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/vkboot/bootstrap"
)

// OptionalExtensions are instance extensions worth enabling when present.
// Portability enumeration is needed to see MoltenVK devices on macOS.
var OptionalExtensions = []string{khr_portability_enumeration.ExtensionName}

// GlobalDriver wraps a vkngwrapper global driver.
type GlobalDriver struct {
	driver core1_0.GlobalDriver
}

// NewFromProcAddr loads the driver through a vkGetInstanceProcAddr pointer,
// such as the one SDL hands out.
func NewFromProcAddr(procAddr unsafe.Pointer) (*GlobalDriver, error) {
	driver, err := core.CreateDriverFromProcAddr(procAddr)
	if err != nil {
		return nil, errors.Wrap(err, "load vulkan driver")
	}
	return &GlobalDriver{driver: driver}, nil
}

// NewSystemDriver loads the system vulkan loader directly, for headless use.
func NewSystemDriver() (*GlobalDriver, error) {
	driver, err := core.CreateSystemDriver()
	if err != nil {
		return nil, errors.Wrap(err, "load system vulkan driver")
	}
	return &GlobalDriver{driver: driver}, nil
}

func (g *GlobalDriver) AvailableExtensions() ([]string, error) {
	extensions, _, err := g.driver.AvailableExtensions()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	return names, nil
}

func (g *GlobalDriver) AvailableLayers() ([]string, error) {
	layers, _, err := g.driver.AvailableLayers()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(layers))
	for name := range layers {
		names = append(names, name)
	}
	return names, nil
}

func (g *GlobalDriver) CreateInstance(info bootstrap.InstanceCreateInfo) (bootstrap.InstanceDriver, error) {
	instanceDriver, _, err := g.driver.CreateInstance(nil, instanceCreateInfo(info))
	if err != nil {
		return nil, err
	}

	return &InstanceDriver{
		driver:     instanceDriver,
		extensions: bootstrap.NewCapabilitySet(info.EnabledExtensionNames...),
	}, nil
}

func instanceCreateInfo(info bootstrap.InstanceCreateInfo) core1_0.InstanceCreateInfo {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:       info.ApplicationName,
		ApplicationVersion:    createVersion(info.ApplicationVersion),
		EngineName:            info.EngineName,
		EngineVersion:         createVersion(info.EngineVersion),
		APIVersion:            common.Vulkan1_2,
		EnabledExtensionNames: info.EnabledExtensionNames,
		EnabledLayerNames:     info.EnabledLayerNames,
	}

	enabled := bootstrap.NewCapabilitySet(info.EnabledExtensionNames...)
	if enabled.Has(khr_portability_enumeration.ExtensionName) {
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	// Chained so that instance creation and destruction are validated too.
	if info.Diagnostics != nil {
		instanceOptions.Next = messengerCreateInfo(*info.Diagnostics)
	}
	return instanceOptions
}

func createVersion(v bootstrap.Version) common.Version {
	return common.CreateVersion(v.Major, v.Minor, v.Patch)
}
