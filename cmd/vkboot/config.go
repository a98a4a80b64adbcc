package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the CLI configuration. Values come from, in increasing priority,
// defaults, the YAML config file, VKBOOT_ environment variables and flags.
type Config struct {
	Diagnostics bool   `mapstructure:"diagnostics"`
	Headless    bool   `mapstructure:"headless"`
	Width       int32  `mapstructure:"width"`
	Height      int32  `mapstructure:"height"`
	Title       string `mapstructure:"title"`
	AppName     string `mapstructure:"app-name"`
	Verbose     bool   `mapstructure:"verbose"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("diagnostics", true)
	v.SetDefault("headless", false)
	v.SetDefault("width", 800)
	v.SetDefault("height", 600)
	v.SetDefault("title", "Vulkan")
	v.SetDefault("app-name", "Hello Triangle")
	v.SetDefault("verbose", false)
}

func loadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", cfgFile)
		}
	}

	v.SetEnvPrefix("VKBOOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "bind flags")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !c.Headless && (c.Width <= 0 || c.Height <= 0) {
		return errors.Newf("window size %dx%d must be positive", c.Width, c.Height)
	}
	return nil
}
