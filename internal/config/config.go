// Package config loads runtime configuration from the environment and an
// optional config file.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime knobs of the extractor.
type Config struct {
	// Tolerance is the per-component tolerance used when comparing facet
	// normals during validation.
	Tolerance float64 `mapstructure:"tolerance"`

	// ChecksumAlgorithm selects the content hash: sha1, sha256 or sha512.
	ChecksumAlgorithm string `mapstructure:"checksum_algorithm"`

	// LogLevel controls diagnostic verbosity: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Tolerance:         1e-9,
		ChecksumAlgorithm: "sha256",
		LogLevel:          "info",
	}
}

// Load reads configuration from STLMETA_* environment variables and, when
// present, a stlmeta.yaml file in the working directory or
// $HOME/.config/stlmeta. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("tolerance", 1e-9)
	v.SetDefault("checksum_algorithm", "sha256")
	v.SetDefault("log_level", "info")

	v.SetConfigName("stlmeta")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/stlmeta")

	v.SetEnvPrefix("STLMETA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
