// Package sdlwindow is the SDL2 windowing layer: it opens a vulkan-capable
// window, reports the instance extensions the window needs and attaches a
// presentation surface to a bootstrap context.
package sdlwindow

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
	"github.com/vkngwrapper/vkboot/bootstrap"
	"github.com/vkngwrapper/vkboot/vkngdriver"
)

type Config struct {
	Title  string
	Width  int32
	Height int32
}

type Window struct {
	window *sdl.Window
	log    logrus.FieldLogger
}

// Open initializes SDL video and creates the window. The caller must Destroy
// the window after the bootstrap session has been closed.
func Open(config Config, log logrus.FieldLogger) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "init sdl video")
	}

	window, err := sdl.CreateWindow(config.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, config.Width, config.Height, sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrapf(err, "create window %q", config.Title)
	}

	log.WithFields(logrus.Fields{
		"width":  config.Width,
		"height": config.Height,
	}).Debug("window opened")
	return &Window{window: window, log: log}, nil
}

// ProcAddr is the vkGetInstanceProcAddr pointer SDL loaded the vulkan
// library with.
func (w *Window) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *Window) CreateSurface(ctx *bootstrap.Context) (func(), error) {
	instanceDriver, ok := ctx.Driver.(*vkngdriver.InstanceDriver)
	if !ok {
		return nil, errors.Newf("surface needs a vkngwrapper instance, got %T", ctx.Driver)
	}

	surfaceExtension := khr_surface.CreateExtensionDriverFromCoreDriver(instanceDriver.Core())
	if surfaceExtension == nil {
		return nil, errors.Newf("%s entry points not found", khr_surface.ExtensionName)
	}

	surface, err := vkng_sdl2.CreateSurface(instanceDriver.Core().Instance(), surfaceExtension, w.window)
	if err != nil {
		return nil, err
	}

	return func() {
		if surface.Initialized() {
			surfaceExtension.DestroySurface(surface, nil)
		}
	}, nil
}

// Loop blocks on window events until the window is closed.
func (w *Window) Loop() {
	for event := sdl.WaitEvent(); event != nil; event = sdl.WaitEvent() {
		if w.handleEvent(event) {
			return
		}
	}
}

func (w *Window) handleEvent(event sdl.Event) (quit bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		w.log.Debug("quit requested")
		return true
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_MINIMIZED:
			w.log.Debug("window minimized")
		case sdl.WINDOWEVENT_RESTORED:
			w.log.Debug("window restored")
		case sdl.WINDOWEVENT_CLOSE:
			return true
		}
	}
	return false
}

func (w *Window) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	sdl.Quit()
}

// Headless is the windowing layer for runs without a window. It needs no
// instance extensions and creates no surface.
type Headless struct{}

func (Headless) RequiredInstanceExtensions() []string {
	return nil
}
