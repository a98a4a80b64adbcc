package bootstrap

import (
	"github.com/cockroachdb/errors"
)

// fakeDriver is an in-memory GlobalDriver. It records every call that
// creates or destroys something in calls, in order.
type fakeDriver struct {
	extensions []string
	layers     []string
	devices    []*fakeGPU

	instanceErr      error
	deviceErr        error
	sinkErr          error
	noDiagnostics    bool
	enumerateErr     error
	extensionsErr    error
	instanceInfo     *InstanceCreateInfo
	deviceInfo       *DeviceCreateInfo
	sinkOptions      *SinkOptions
	queueFamilyCalls map[int]int

	calls []string
}

type fakeGPU struct {
	id            int
	name          string
	families      []QueueFamily
	propertiesErr error
}

func (g *fakeGPU) Initialized() bool { return g != nil }

type fakeHandle struct{}

func (fakeHandle) Initialized() bool { return true }

func graphicsGPU(id int) *fakeGPU {
	return &fakeGPU{id: id, families: []QueueFamily{{QueueFlags: QueueGraphics | QueueCompute, QueueCount: 1}}}
}

func computeGPU(id int) *fakeGPU {
	return &fakeGPU{id: id, families: []QueueFamily{{QueueFlags: QueueCompute | QueueTransfer, QueueCount: 2}}}
}

func (d *fakeDriver) AvailableExtensions() ([]string, error) {
	if d.extensionsErr != nil {
		return nil, d.extensionsErr
	}
	return d.extensions, nil
}

func (d *fakeDriver) AvailableLayers() ([]string, error) {
	return d.layers, nil
}

func (d *fakeDriver) CreateInstance(info InstanceCreateInfo) (InstanceDriver, error) {
	d.calls = append(d.calls, "create instance")
	d.instanceInfo = &info
	if d.instanceErr != nil {
		return nil, d.instanceErr
	}
	return &fakeInstance{driver: d}, nil
}

type fakeInstance struct {
	driver *fakeDriver
}

func (i *fakeInstance) EnumeratePhysicalDevices() ([]PhysicalDevice, error) {
	i.driver.calls = append(i.driver.calls, "enumerate devices")
	if i.driver.enumerateErr != nil {
		return nil, i.driver.enumerateErr
	}
	devices := make([]PhysicalDevice, 0, len(i.driver.devices))
	for _, gpu := range i.driver.devices {
		devices = append(devices, gpu)
	}
	return devices, nil
}

func (i *fakeInstance) QueueFamilies(device PhysicalDevice) []QueueFamily {
	gpu := device.(*fakeGPU)
	if i.driver.queueFamilyCalls == nil {
		i.driver.queueFamilyCalls = map[int]int{}
	}
	i.driver.queueFamilyCalls[gpu.id]++
	return gpu.families
}

func (i *fakeInstance) Properties(device PhysicalDevice) (*DeviceProperties, error) {
	gpu := device.(*fakeGPU)
	if gpu.propertiesErr != nil {
		return nil, gpu.propertiesErr
	}
	return &DeviceProperties{Name: gpu.name, Type: DeviceTypeDiscreteGPU, DeviceID: uint32(gpu.id)}, nil
}

func (i *fakeInstance) Features(device PhysicalDevice) *DeviceFeatures {
	return &DeviceFeatures{GeometryShader: true}
}

func (i *fakeInstance) CreateDevice(device PhysicalDevice, info DeviceCreateInfo) (DeviceDriver, error) {
	i.driver.calls = append(i.driver.calls, "create device")
	i.driver.deviceInfo = &info
	if i.driver.deviceErr != nil {
		return nil, i.driver.deviceErr
	}
	return &fakeDevice{driver: i.driver}, nil
}

func (i *fakeInstance) Diagnostics() (DiagnosticsProvider, error) {
	if i.driver.noDiagnostics {
		return nil, errors.WithStack(ErrDiagnosticsUnsupported)
	}
	return &fakeDiagnostics{driver: i.driver}, nil
}

func (i *fakeInstance) DestroyInstance() {
	i.driver.calls = append(i.driver.calls, "destroy instance")
}

type fakeDiagnostics struct {
	driver *fakeDriver
}

func (p *fakeDiagnostics) CreateSink(options SinkOptions) (Sink, error) {
	p.driver.calls = append(p.driver.calls, "create sink")
	p.driver.sinkOptions = &options
	if p.driver.sinkErr != nil {
		return nil, p.driver.sinkErr
	}
	return fakeHandle{}, nil
}

func (p *fakeDiagnostics) DestroySink(sink Sink) {
	p.driver.calls = append(p.driver.calls, "destroy sink")
}

type fakeDevice struct {
	driver *fakeDriver
	family int
}

func (d *fakeDevice) GetQueue(queueFamilyIndex int, queueIndex int) Queue {
	d.family = queueFamilyIndex
	return fakeHandle{}
}

func (d *fakeDevice) DestroyDevice() {
	d.driver.calls = append(d.driver.calls, "destroy device")
}

type fakeWindowing struct {
	extensions []string
}

func (w fakeWindowing) RequiredInstanceExtensions() []string {
	return w.extensions
}

type fakeSurfaceWindowing struct {
	fakeWindowing
	driver *fakeDriver
	err    error
}

func (w fakeSurfaceWindowing) CreateSurface(ctx *Context) (func(), error) {
	w.driver.calls = append(w.driver.calls, "create surface")
	if w.err != nil {
		return nil, w.err
	}
	return func() {
		w.driver.calls = append(w.driver.calls, "destroy surface")
	}, nil
}
