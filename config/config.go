// Package config loads harness settings from a YAML file and TIMESKEW_*
// environment variables and turns them into a clock and a logger.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config describes a skewed-clock harness: which raw source to read, the
// offset to apply, whether to patch time.Now, and how to log.
//
// Sources in order of precedence: environment variables (TIMESKEW_*), the
// configuration file, defaults.
type Config struct {
	// Offset shifts real-time readings, given as a Go duration string,
	// for example "-10m30s". Mutually exclusive with the pair below.
	Offset time.Duration `mapstructure:"offset"`

	// OffsetSec and OffsetNSec give the shift as an explicit pair, the
	// form the kernel interface uses. OffsetNSec may exceed one second
	// in magnitude.
	OffsetSec  int64 `mapstructure:"offset_sec"`
	OffsetNSec int64 `mapstructure:"offset_nsec"`

	// Source selects the raw clock: "syscall" (linux) or "runtime".
	Source string `mapstructure:"source" validate:"omitempty,oneof=syscall runtime"`

	// Patch replaces time.Now process-wide once the clock is built.
	Patch bool `mapstructure:"patch"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the minimum level to output: debug, info, warn or error.
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`

	Stdout       bool   `mapstructure:"stdout"`
	StdoutFormat string `mapstructure:"stdout_format" validate:"omitempty,oneof=console json"`

	FileEnabled bool   `mapstructure:"file_enabled"`
	FileDir     string `mapstructure:"file_dir"`
	FileAsync   bool   `mapstructure:"file_async"`

	AppName string `mapstructure:"app_name"`
}

// Load reads configuration from file, environment and defaults. An empty
// configPath searches the working directory and the user config directory;
// a named file must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	return &cfg, nil
}

func setupViper(v *viper.Viper, configPath string) {
	// TIMESKEW_LOGGING_LEVEL=debug overrides logging.level, and so on.
	v.SetEnvPrefix("TIMESKEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a registered default for environment-only
	// overrides to reach Unmarshal.
	v.SetDefault("offset", "0s")
	v.SetDefault("offset_sec", 0)
	v.SetDefault("offset_nsec", 0)
	v.SetDefault("source", "")
	v.SetDefault("patch", false)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.stdout", true)
	v.SetDefault("logging.stdout_format", "")
	v.SetDefault("logging.file_enabled", false)
	v.SetDefault("logging.file_dir", "")
	v.SetDefault("logging.file_async", false)
	v.SetDefault("logging.app_name", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("timeskew")
		v.SetConfigType("yaml")
	}
}

func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		// No file in the search paths is acceptable; a named file that
		// cannot be read is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return errors.Wrap(err, "read config file")
	}
	return nil
}

func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "timeskew")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "timeskew")
}
