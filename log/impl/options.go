package impl

import "go.uber.org/zap/zapcore"

type Option func(*config)

// WithStdout toggles console output; format is "console" or "json".
func WithStdout(enable bool, format string) Option {
	return func(c *config) {
		c.stdout = enable
		if format != "" {
			c.stdoutType = format
		}
	}
}

// WithFileOut toggles per-level rotated file output under dir.
func WithFileOut(enable bool, dir string) Option {
	return func(c *config) {
		c.toFile = enable
		c.fileDir = dir
	}
}

// WithFileAsync buffers file writes and flushes them once a second.
func WithFileAsync(async bool) Option {
	return func(c *config) {
		c.fileAsync = async
	}
}

func WithAppName(name string) Option {
	return func(c *config) {
		c.appName = name
	}
}

func WithLevel(level zapcore.Level) Option {
	return func(c *config) {
		c.Level.SetLevel(level)
	}
}

// WithClock drives entry timestamps and file rotation from clock, typically
// a shifted clock wrapped by ZapClock.
func WithClock(clock zapcore.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}
