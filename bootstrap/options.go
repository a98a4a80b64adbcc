package bootstrap

import (
	"github.com/sirupsen/logrus"
)

// Options configures a bootstrap run. The zero value bootstraps without
// diagnostics and logs to the logrus standard logger.
type Options struct {
	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version

	// Diagnostics enables the validation layer, the debug utils extension, the
	// diagnostic sink and capability logging.
	Diagnostics bool

	// OptionalExtensions are enabled when the catalog has them and silently
	// skipped otherwise.
	OptionalExtensions []string

	Logger logrus.FieldLogger
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger == nil {
		return logrus.StandardLogger()
	}
	return o.Logger
}
