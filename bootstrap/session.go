package bootstrap

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"
)

// Windowing is the windowing layer as far as bootstrap is concerned: the
// instance extensions it needs to present.
type Windowing interface {
	RequiredInstanceExtensions() []string
}

// SurfaceCreator is implemented by windowing layers that attach a
// presentation surface to the context. The returned release func is called
// after the logical device is destroyed and before the context is.
type SurfaceCreator interface {
	CreateSurface(ctx *Context) (release func(), err error)
}

// Session owns everything a successful Setup created.
type Session struct {
	ID             uuid.UUID
	Catalog        *Catalog
	Context        *Context
	PhysicalDevice PhysicalDevice
	Device         *Device

	releaser
}

// Setup runs the whole bootstrap: snapshot the catalog, build the context,
// select a physical device and build the logical device. On failure every
// resource acquired so far is released, newest first, before the error is
// returned.
func Setup(driver GlobalDriver, windowing Windowing, opts Options) (session *Session, err error) {
	session = &Session{ID: uuid.New()}
	log := opts.logger().WithField("session", session.ID.String())
	opts.Logger = log

	defer func() {
		if err != nil {
			session.Close()
			session = nil
		}
	}()

	err = stage(log, "catalog", func() error {
		session.Catalog, err = Snapshot(driver, opts)
		return err
	})
	if err != nil {
		return session, err
	}

	err = stage(log, "context", func() error {
		session.Context, err = BuildContext(driver, session.Catalog, windowing.RequiredInstanceExtensions(), opts)
		return err
	})
	if err != nil {
		return session, err
	}
	session.push("context", session.Context.Destroy)

	if creator, ok := windowing.(SurfaceCreator); ok {
		err = stage(log, "surface", func() error {
			release, err := creator.CreateSurface(session.Context)
			if err != nil {
				return errors.Wrap(err, "create surface")
			}
			session.push("surface", release)
			return nil
		})
		if err != nil {
			return session, err
		}
	}

	err = stage(log, "physical device", func() error {
		session.PhysicalDevice, err = SelectPhysicalDevice(session.Context)
		return err
	})
	if err != nil {
		return session, err
	}

	err = stage(log, "logical device", func() error {
		session.Device, err = BuildDevice(session.Context, session.PhysicalDevice)
		return err
	})
	if err != nil {
		return session, err
	}
	session.push("logical device", session.Device.Destroy)

	return session, nil
}

func stage(log logrus.FieldLogger, name string, fn func() error) error {
	start := hrtime.Now()
	err := fn()
	log.WithFields(logrus.Fields{
		"stage":   name,
		"elapsed": (hrtime.Now() - start).Round(time.Microsecond),
	}).Debug("setup stage finished")
	return err
}

// releaser is a stack of release funcs run newest first.
type releaser struct {
	names    []string
	releases []func()
}

func (r *releaser) push(name string, release func()) {
	r.names = append(r.names, name)
	r.releases = append(r.releases, release)
}

// Held returns the names of the resources still held, newest first.
func (r *releaser) Held() []string {
	held := make([]string, 0, len(r.names))
	for i := len(r.names) - 1; i >= 0; i-- {
		held = append(held, r.names[i])
	}
	return held
}

// Close releases every held resource in reverse order of acquisition. It is
// safe to call more than once.
func (r *releaser) Close() {
	for i := len(r.releases) - 1; i >= 0; i-- {
		r.releases[i]()
	}
	r.names = nil
	r.releases = nil
}
