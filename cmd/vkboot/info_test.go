package main

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/vkboot/bootstrap"
)

func TestWriteReport(t *testing.T) {
	graphics := 0
	report := &bootstrap.Report{
		Catalog: &bootstrap.Catalog{
			Extensions: bootstrap.NewCapabilitySet("VK_KHR_surface", "VK_EXT_debug_utils"),
			Layers:     bootstrap.NewCapabilitySet(),
		},
		Devices: []bootstrap.DeviceReport{
			{
				Index:         0,
				Properties:    &bootstrap.DeviceProperties{Name: "llvmpipe", Type: bootstrap.DeviceTypeCPU, VendorID: 0x10005},
				QueueFamilies: []bootstrap.QueueFamily{{QueueFlags: bootstrap.QueueTransfer, QueueCount: 1}},
			},
			{
				Index:          1,
				Properties:     &bootstrap.DeviceProperties{Name: "GeForce", Type: bootstrap.DeviceTypeDiscreteGPU, VendorID: 0x10de, DeviceID: 0x2684},
				QueueFamilies:  []bootstrap.QueueFamily{{QueueFlags: bootstrap.QueueGraphics | bootstrap.QueueCompute, QueueCount: 16}},
				GraphicsFamily: &graphics,
			},
		},
		Selected: 1,
	}

	var out bytes.Buffer
	require.NoError(t, writeReport(&out, report))

	text := out.String()
	assert.Contains(t, text, "Instance extensions (2):\n  VK_EXT_debug_utils\n  VK_KHR_surface\n")
	assert.Contains(t, text, "Instance layers (0):\n")
	assert.Contains(t, text, "  [0] llvmpipe (cpu)")
	assert.Contains(t, text, "* [1] GeForce (discrete) vendor=0x10de device=0x2684\n")
	assert.Contains(t, text, "queue family 0: graphics|compute x16\n")
	assert.NotContains(t, text, "No device has a graphics queue family")
}

func TestWriteReport_NoneSelected(t *testing.T) {
	report := &bootstrap.Report{
		Catalog:  &bootstrap.Catalog{Extensions: bootstrap.NewCapabilitySet(), Layers: bootstrap.NewCapabilitySet()},
		Selected: -1,
	}

	var out bytes.Buffer
	require.NoError(t, writeReport(&out, report))
	assert.Contains(t, out.String(), "Physical devices (0):\nNo device has a graphics queue family\n")
}

func TestWriteReport_MissingProperties(t *testing.T) {
	report := &bootstrap.Report{
		Catalog: &bootstrap.Catalog{Extensions: bootstrap.NewCapabilitySet(), Layers: bootstrap.NewCapabilitySet()},
		Devices: []bootstrap.DeviceReport{
			{Index: 0, Err: errors.New("VK_ERROR_DEVICE_LOST")},
		},
		Selected: -1,
	}

	var out bytes.Buffer
	require.NoError(t, writeReport(&out, report))
	assert.Contains(t, out.String(), "  [0] properties unavailable: VK_ERROR_DEVICE_LOST\n")
}
