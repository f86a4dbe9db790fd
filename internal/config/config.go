// Package config loads hwystat settings from defaults, an optional config
// file, HWYSTAT_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajroetker/hwystat/hwy"
)

// Config holds the settings shared by every hwystat command.
type Config struct {
	LogLevel  string `mapstructure:"log-level"`
	LogFile   string `mapstructure:"log-file"`
	Bias      bool   `mapstructure:"bias"`
	Width     int    `mapstructure:"width"`
	Precision int    `mapstructure:"precision"`
	Format    string `mapstructure:"format"`
	Workers   int    `mapstructure:"workers"`
}

// Keys lists every configuration key. Each is also a flag name and, upper
// cased with "-" replaced by "_", an HWYSTAT_ environment variable.
var Keys = []string{"log-level", "log-file", "bias", "width", "precision", "format", "workers"}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"text", "json"}
)

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		Bias:      false,
		Width:     0,
		Precision: 10,
		Format:    "text",
		Workers:   0,
	}
}

// Load reads configuration into a Config. Flags must already be bound to v.
// A missing config file is not an error unless cfgFile names it.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "hwystat"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("hwystat")
	}

	v.SetEnvPrefix("HWYSTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// BindFlags binds every flag in fs named by Keys to v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range Keys {
		f := fs.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", key, err)
		}
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Width != 0 && !hwy.ValidWidth(c.Width) {
		return fmt.Errorf("width must be 0 or a power of two between %d and %d bytes, got %d",
			hwy.ScalarWidth, hwy.DefaultWidth, c.Width)
	}
	if c.Precision < 1 || c.Precision > 17 {
		return errors.New("precision must be between 1 and 17")
	}
	if !slices.Contains(validLevels, c.LogLevel) {
		return fmt.Errorf("log-level must be one of: %v", validLevels)
	}
	if !slices.Contains(validFormats, c.Format) {
		return fmt.Errorf("format must be one of: %v", validFormats)
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	return nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log-level", cfg.LogLevel)
	v.SetDefault("log-file", cfg.LogFile)
	v.SetDefault("bias", cfg.Bias)
	v.SetDefault("width", cfg.Width)
	v.SetDefault("precision", cfg.Precision)
	v.SetDefault("format", cfg.Format)
	v.SetDefault("workers", cfg.Workers)
}
