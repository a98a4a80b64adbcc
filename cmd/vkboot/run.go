package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/vkboot/bootstrap"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Bootstrap vulkan and keep the window open until it is closed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg, setupLogging(cfg))
		},
	}
}

func run(cfg *Config, log *logrus.Logger) error {
	env, err := openEnvironment(cfg, log)
	if err != nil {
		return err
	}
	defer env.Close()

	session, err := bootstrap.Setup(env.driver, env.windowing, bootstrapOptions(cfg, log))
	if err != nil {
		return err
	}
	defer session.Close()

	log.WithFields(logrus.Fields{
		"session":     session.ID.String(),
		"queueFamily": session.Device.QueueFamilyIndex,
		"extensions":  session.Context.Extensions,
		"layers":      session.Context.Layers,
	}).Info("vulkan ready")

	if env.window != nil {
		env.window.Loop()
	}
	return nil
}
