// Package config loads nescore's runtime configuration from flags,
// environment variables, and an optional config file, using the usual
// cobra+viper pairing for CLI configuration.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds everything the nescore CLI needs to run a cartridge.
type Config struct {
	ROMPath       string `mapstructure:"rom"`
	LogLevel      string `mapstructure:"log_level"`
	Trace         bool   `mapstructure:"trace"`
	TraceOutput   string `mapstructure:"trace_output"`
	DmaAlignForce string `mapstructure:"dma_align"` // "", "align", "noalign" — overrides the parity rule for deterministic tests
}

// Load binds flags to viper keys, layers in NESCORE_-prefixed
// environment variables and an optional config file, and decodes the
// result into a Config.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NESCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	v.SetConfigName("nescore")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/nescore")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		ROMPath:       v.GetString("rom"),
		LogLevel:      v.GetString("log-level"),
		Trace:         v.GetBool("trace"),
		TraceOutput:   v.GetString("trace-output"),
		DmaAlignForce: v.GetString("dma-align"),
	}
	return cfg, nil
}
