// Package config loads jpeg-forensics settings from defaults, an optional
// YAML file, JPEG_FORENSICS_* environment variables and command flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"greg-hacke/jpeg-forensics/logging"
	"greg-hacke/jpeg-forensics/report"
)

// Config represents the jpeg-forensics configuration
type Config struct {
	Output    OutputConfig    `mapstructure:"output"`
	Log       logging.Config  `mapstructure:"log"`
	Detectors DetectorsConfig `mapstructure:"detectors"`
}

// OutputConfig represents report output configuration
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
	Dump   bool   `mapstructure:"dump"`
}

// DetectorsConfig holds the parameters of the pixel-domain detectors
type DetectorsConfig struct {
	Quality   int `mapstructure:"quality"`
	BlockSize int `mapstructure:"block_size"`
}

// Name of the config file, without extension
const Name = "jpeg-forensics"

// EnvPrefix prefixes every environment override
const EnvPrefix = "JPEG_FORENSICS"

// Flag names bound to configuration keys
const (
	FlagConfig    = "config"
	FlagFormat    = "format"
	FlagNoColor   = "no-color"
	FlagNoDump    = "no-dump"
	FlagVerbose   = "verbose"
	FlagQuality   = "quality"
	FlagBlockSize = "blocksize"
)

var flagKeys = map[string]string{
	FlagFormat:    "output.format",
	FlagQuality:   "detectors.quality",
	FlagBlockSize: "detectors.block_size",
}

// Load resolves the configuration. An explicit path must exist; otherwise
// jpeg-forensics.yaml is looked up in the working directory and in
// $HOME/.config/jpeg-forensics, and a missing file means defaults. Flags
// set on fs take precedence over everything else.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("output.format", string(report.FormatText))
	v.SetDefault("output.color", true)
	v.SetDefault("output.dump", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", logging.FormatConsole)
	v.SetDefault("detectors.quality", 75)
	v.SetDefault("detectors.block_size", 8)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/" + Name)
	}

	// Enable environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindFlags binds value flags directly and applies the negated switches
// only when they were given on the command line.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	if fs.Changed(FlagNoColor) {
		if off, err := fs.GetBool(FlagNoColor); err == nil && off {
			v.Set("output.color", false)
		}
	}
	if fs.Changed(FlagNoDump) {
		if off, err := fs.GetBool(FlagNoDump); err == nil && off {
			v.Set("output.dump", false)
		}
	}
	if fs.Changed(FlagVerbose) {
		if on, err := fs.GetBool(FlagVerbose); err == nil && on {
			v.Set("log.level", "debug")
		}
	}
	return nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if _, err := report.ParseFormat(cfg.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("log.format must be %s or %s, got: %s", logging.FormatConsole, logging.FormatJSON, cfg.Log.Format)
	}
	if cfg.Detectors.Quality < 1 || cfg.Detectors.Quality > 100 {
		return fmt.Errorf("detectors.quality must be between 1 and 100, got: %d", cfg.Detectors.Quality)
	}
	if cfg.Detectors.BlockSize <= 0 {
		return fmt.Errorf("detectors.block_size must be positive, got: %d", cfg.Detectors.BlockSize)
	}
	return nil
}
