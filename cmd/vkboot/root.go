package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/vkboot/bootstrap"
	"github.com/vkngwrapper/vkboot/sdlwindow"
	"github.com/vkngwrapper/vkboot/vkngdriver"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vkboot",
		Short:         "Bring up a vulkan instance and logical device",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.Bool("diagnostics", true, "enable validation layers and the debug messenger")
	flags.Bool("headless", false, "bootstrap without a window or surface")
	flags.Int32("width", 800, "window width")
	flags.Int32("height", 600, "window height")
	flags.String("title", "Vulkan", "window title")
	flags.String("app-name", "Hello Triangle", "application name reported to the driver")
	flags.BoolP("verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newRunCmd(), newInfoCmd())
	return rootCmd
}

func setupLogging(cfg *Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func bootstrapOptions(cfg *Config, log logrus.FieldLogger) bootstrap.Options {
	return bootstrap.Options{
		ApplicationName:    cfg.AppName,
		ApplicationVersion: bootstrap.Version{Major: 1},
		EngineName:         "No Engine",
		EngineVersion:      bootstrap.Version{Major: 1},
		Diagnostics:        cfg.Diagnostics,
		OptionalExtensions: vkngdriver.OptionalExtensions,
		Logger:             log,
	}
}

// environment is the driver and windowing layer a command bootstraps with.
type environment struct {
	driver    bootstrap.GlobalDriver
	windowing bootstrap.Windowing
	window    *sdlwindow.Window
}

func openEnvironment(cfg *Config, log logrus.FieldLogger) (*environment, error) {
	if cfg.Headless {
		driver, err := vkngdriver.NewSystemDriver()
		if err != nil {
			return nil, err
		}
		return &environment{driver: driver, windowing: sdlwindow.Headless{}}, nil
	}

	window, err := sdlwindow.Open(sdlwindow.Config{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, log)
	if err != nil {
		return nil, err
	}

	driver, err := vkngdriver.NewFromProcAddr(window.ProcAddr())
	if err != nil {
		window.Destroy()
		return nil, err
	}
	return &environment{driver: driver, windowing: window, window: window}, nil
}

func (e *environment) Close() {
	if e.window != nil {
		e.window.Destroy()
	}
}
