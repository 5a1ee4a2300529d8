package config

import "runtime"

// ApplyDefaults fills unset fields after file and environment loading.
func ApplyDefaults(cfg *Config) {
	if cfg.Source == "" {
		if runtime.GOOS == "linux" {
			cfg.Source = "syscall"
		} else {
			cfg.Source = "runtime"
		}
	}
	applyLoggingDefaults(&cfg.Logging)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.StdoutFormat == "" {
		cfg.StdoutFormat = "console"
	}
	if cfg.AppName == "" {
		cfg.AppName = "timeskew"
	}
}

// GetDefaultConfig returns a Config with every default applied.
func GetDefaultConfig() *Config {
	cfg := &Config{
		Logging: LoggingConfig{
			Stdout: true,
		},
	}
	ApplyDefaults(cfg)
	return cfg
}
