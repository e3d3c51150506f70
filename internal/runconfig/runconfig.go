// Package runconfig loads fdsolve's CLI configuration from flags,
// environment variables, and an optional config file, using viper as the
// layering mechanism the rest of the example pack's manifests depend on
// for exactly this purpose.
package runconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the settings that every fdsolve subcommand reads.
type Config struct {
	// Verbose raises the CLI logger to debug level.
	Verbose bool `mapstructure:"verbose"`
	// SearchLimit is the configured solution limit, 0 meaning unbounded.
	// No solve subcommand reads it: each prints only the first solution
	// it finds.
	SearchLimit int `mapstructure:"search-limit"`
	// BatchConcurrency bounds how many independent models `solve batch`
	// runs at once, 0 meaning one per available CPU.
	BatchConcurrency int `mapstructure:"batch-concurrency"`
}

// Load builds a viper instance layered as: defaults, optional config file
// (./fdsolve.yaml or $HOME/fdsolve.yaml), FDSOLVE_-prefixed environment
// variables, then bound cobra flags, and decodes the result into a
// Config.
func Load(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetDefault("verbose", false)
	v.SetDefault("search-limit", 0)
	v.SetDefault("batch-concurrency", 0)

	v.SetConfigName("fdsolve")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("runconfig: reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("fdsolve")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("runconfig: binding flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("runconfig: decoding config: %w", err)
	}
	return cfg, nil
}
