package bootstrap

import (
	"github.com/sirupsen/logrus"
)

// Context is a created instance together with the diagnostic sink attached
// to it, if any. It must outlive every Device built from it.
type Context struct {
	Driver InstanceDriver

	// Extensions and Layers are what the instance was actually created with.
	Extensions []string
	Layers     []string

	diagnostics bool
	provider    DiagnosticsProvider
	sink        Sink
	log         logrus.FieldLogger
}

// BuildContext negotiates extensions and layers against catalog and creates
// the instance. windowing is the extension list the windowing layer needs.
//
// All capability checks happen before the driver is asked to create
// anything. If creating the diagnostic sink fails the instance is destroyed
// again before returning.
func BuildContext(driver GlobalDriver, catalog *Catalog, windowing []string, opts Options) (*Context, error) {
	log := opts.logger()

	layers := ResolveLayers(opts.Diagnostics)
	if opts.Diagnostics {
		if err := checkSubset(log, true, KindLayer, catalog.Layers, layers); err != nil {
			return nil, err
		}
	}

	extensions := ResolveExtensions(opts.Diagnostics, windowing)
	if err := checkSubset(log, opts.Diagnostics, KindExtension, catalog.Extensions, extensions); err != nil {
		return nil, err
	}

	enabled := NewCapabilitySet(extensions...)
	for _, ext := range opts.OptionalExtensions {
		if catalog.Extensions.Has(ext) && !enabled.Has(ext) {
			extensions = append(extensions, ext)
			enabled[ext] = struct{}{}
			log.WithField("extension", ext).Debug("enabling optional extension")
		}
	}

	info := InstanceCreateInfo{
		ApplicationName:       opts.ApplicationName,
		ApplicationVersion:    opts.ApplicationVersion,
		EngineName:            opts.EngineName,
		EngineVersion:         opts.EngineVersion,
		EnabledExtensionNames: extensions,
		EnabledLayerNames:     layers,
	}

	var sinkOptions SinkOptions
	if opts.Diagnostics {
		sinkOptions = loggingSink(log.WithField("source", "driver"))
		info.Diagnostics = &sinkOptions
	}

	instance, err := driver.CreateInstance(info)
	if err != nil {
		return nil, driverCreationError(err, "create instance")
	}

	ctx := &Context{
		Driver:      instance,
		Extensions:  extensions,
		Layers:      layers,
		diagnostics: opts.Diagnostics,
		log:         log,
	}

	if opts.Diagnostics {
		if err := ctx.attachSink(sinkOptions); err != nil {
			ctx.Destroy()
			return nil, err
		}
	}

	return ctx, nil
}

func (c *Context) attachSink(options SinkOptions) error {
	provider, err := c.Driver.Diagnostics()
	if err != nil {
		return driverCreationError(err, "load diagnostics provider")
	}

	sink, err := provider.CreateSink(options)
	if err != nil {
		return driverCreationError(err, "create diagnostic sink")
	}

	c.provider = provider
	c.sink = sink
	return nil
}

// Diagnostics reports whether the context was built with diagnostics enabled.
func (c *Context) Diagnostics() bool {
	return c.diagnostics
}

// HasSink reports whether a diagnostic sink is attached.
func (c *Context) HasSink() bool {
	return c.sink != nil
}

// Destroy destroys the diagnostic sink, if one was created, and then the
// instance. It is safe to call more than once.
func (c *Context) Destroy() {
	if c == nil || c.Driver == nil {
		return
	}

	if c.sink != nil {
		c.provider.DestroySink(c.sink)
		c.sink = nil
		c.provider = nil
	}

	c.Driver.DestroyInstance()
	c.Driver = nil
}
