package bootstrap

import "github.com/google/uuid"

// GlobalDriver is the part of the driver that exists before any instance does:
// capability enumeration and instance creation.
type GlobalDriver interface {
	AvailableExtensions() ([]string, error)
	AvailableLayers() ([]string, error)
	CreateInstance(info InstanceCreateInfo) (InstanceDriver, error)
}

// InstanceDriver is a created instance and everything that hangs off it.
type InstanceDriver interface {
	EnumeratePhysicalDevices() ([]PhysicalDevice, error)

	// QueueFamilies returns the queue family records of a device in driver order.
	// They are static for the lifetime of the physical device.
	QueueFamilies(device PhysicalDevice) []QueueFamily

	Properties(device PhysicalDevice) (*DeviceProperties, error)
	Features(device PhysicalDevice) *DeviceFeatures

	CreateDevice(device PhysicalDevice, info DeviceCreateInfo) (DeviceDriver, error)

	// Diagnostics returns the debug messenger provider for this instance, or
	// ErrDiagnosticsUnsupported when the driver does not expose one.
	Diagnostics() (DiagnosticsProvider, error)

	DestroyInstance()
}

// DiagnosticsProvider creates and destroys diagnostic sinks bound to one instance.
type DiagnosticsProvider interface {
	CreateSink(options SinkOptions) (Sink, error)
	DestroySink(sink Sink)
}

// DeviceDriver is a created logical device.
type DeviceDriver interface {
	GetQueue(queueFamilyIndex int, queueIndex int) Queue
	DestroyDevice()
}

// PhysicalDevice is an opaque handle owned by the driver.
type PhysicalDevice interface {
	Initialized() bool
}

// Queue is a command submission endpoint. It lives as long as its device.
type Queue interface {
	Initialized() bool
}

// Sink is an active diagnostic messenger.
type Sink interface {
	Initialized() bool
}

type InstanceCreateInfo struct {
	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version

	EnabledExtensionNames []string
	EnabledLayerNames     []string

	// Diagnostics, when non-nil, asks the driver to also capture messages
	// emitted while the instance itself is being created.
	Diagnostics *SinkOptions
}

type DeviceQueueCreateInfo struct {
	QueueFamilyIndex int
	QueuePriorities  []float32
}

type DeviceCreateInfo struct {
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledExtensionNames []string
	EnabledLayerNames     []string
}

// Version is a major.minor.patch triple.
type Version struct {
	Major, Minor, Patch uint32
}

// QueueFlags is the bitmask of operations a queue family supports.
type QueueFlags uint32

const (
	QueueGraphics QueueFlags = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

func (f QueueFlags) String() string {
	if f == 0 {
		return "none"
	}

	var out string
	for _, flag := range []struct {
		bit  QueueFlags
		name string
	}{
		{QueueGraphics, "graphics"},
		{QueueCompute, "compute"},
		{QueueTransfer, "transfer"},
		{QueueSparseBinding, "sparse"},
	} {
		if f&flag.bit == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += flag.name
	}
	return out
}

type QueueFamily struct {
	QueueFlags QueueFlags
	QueueCount int
}

type DeviceType int

const (
	DeviceTypeOther DeviceType = iota
	DeviceTypeIntegratedGPU
	DeviceTypeDiscreteGPU
	DeviceTypeVirtualGPU
	DeviceTypeCPU
)

var deviceTypeNames = map[DeviceType]string{
	DeviceTypeOther:         "other",
	DeviceTypeIntegratedGPU: "integrated",
	DeviceTypeDiscreteGPU:   "discrete",
	DeviceTypeVirtualGPU:    "virtual",
	DeviceTypeCPU:           "cpu",
}

func (t DeviceType) String() string {
	if name, ok := deviceTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

type DeviceProperties struct {
	Name              string
	Type              DeviceType
	VendorID          uint32
	DeviceID          uint32
	PipelineCacheUUID uuid.UUID
}

type DeviceFeatures struct {
	GeometryShader    bool
	SamplerAnisotropy bool
}
