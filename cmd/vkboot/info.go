package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vkngwrapper/vkboot/bootstrap"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print available extensions, layers and physical devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			log := setupLogging(cfg)

			env, err := openEnvironment(cfg, log)
			if err != nil {
				return err
			}
			defer env.Close()

			report, err := bootstrap.Inspect(env.driver, env.windowing, bootstrapOptions(cfg, log))
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), report)
		},
	}
}

func writeReport(w io.Writer, report *bootstrap.Report) error {
	ew := &errWriter{w: w}

	extensions := report.Catalog.Extensions.Names()
	ew.printf("Instance extensions (%d):\n", len(extensions))
	for _, name := range extensions {
		ew.printf("  %s\n", name)
	}

	layers := report.Catalog.Layers.Names()
	ew.printf("Instance layers (%d):\n", len(layers))
	for _, name := range layers {
		ew.printf("  %s\n", name)
	}

	ew.printf("Physical devices (%d):\n", len(report.Devices))
	for _, device := range report.Devices {
		marker := " "
		if device.Index == report.Selected {
			marker = "*"
		}
		if device.Properties != nil {
			ew.printf("%s [%d] %s (%s) vendor=0x%04x device=0x%04x\n", marker, device.Index,
				device.Properties.Name, device.Properties.Type, device.Properties.VendorID, device.Properties.DeviceID)
		} else {
			ew.printf("%s [%d] properties unavailable: %v\n", marker, device.Index, device.Err)
		}
		for familyIdx, family := range device.QueueFamilies {
			ew.printf("      queue family %d: %s x%d\n", familyIdx, family.QueueFlags, family.QueueCount)
		}
	}

	if report.Selected < 0 {
		ew.printf("No device has a graphics queue family\n")
	}
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
