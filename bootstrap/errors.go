package bootstrap

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrConfiguration marks a required extension or layer that the driver
	// does not offer. It is raised before any creation call is made.
	ErrConfiguration = errors.New("bootstrap: required capability not available")

	// ErrDriverCreation marks a creation request (instance, device or diagnostic
	// sink) that the driver rejected.
	ErrDriverCreation = errors.New("bootstrap: driver rejected creation")

	// ErrNoSuitableDevice marks a failure to pick a physical device, either
	// because there are none or because none has a graphics queue family.
	ErrNoSuitableDevice = errors.New("bootstrap: no suitable physical device")

	// ErrNoPhysicalDevices is the empty-enumeration case. Errors returned for
	// it also match ErrNoSuitableDevice; the reverse does not hold.
	ErrNoPhysicalDevices = errors.New("bootstrap: driver reported no physical devices")

	// ErrDiagnosticsUnsupported is returned by InstanceDriver.Diagnostics when
	// the debug messenger entry points cannot be loaded.
	ErrDiagnosticsUnsupported = errors.New("bootstrap: diagnostics provider unsupported")
)

// CapabilityKind says whether a capability name is an extension or a layer.
type CapabilityKind string

const (
	KindExtension CapabilityKind = "extension"
	KindLayer     CapabilityKind = "layer"
)

func missingCapabilityError(kind CapabilityKind, missing []string) error {
	err := errors.Newf("missing required %s(s): %s", kind, strings.Join(missing, ", "))
	if kind == KindLayer {
		err = errors.WithHint(err, "validation layers ship with the Vulkan SDK; install it or disable diagnostics")
	}
	return errors.Mark(err, ErrConfiguration)
}

func driverCreationError(err error, format string, args ...interface{}) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrDriverCreation)
}
