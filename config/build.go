package config

import (
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"github.com/LLLLLLs/timeskew/fakeclock"
	"github.com/LLLLLLs/timeskew/log"
	"github.com/LLLLLLs/timeskew/log/field"
	"github.com/LLLLLLs/timeskew/log/impl"
	patchtime "github.com/LLLLLLs/timeskew/patch_time"
)

// ResolvedOffset folds the two offset forms into one. A non-zero duration
// wins; otherwise the sec/nsec pair is taken as given.
func (cfg *Config) ResolvedOffset() fakeclock.Offset {
	if cfg.Offset != 0 {
		return fakeclock.OffsetFromDuration(cfg.Offset)
	}
	return fakeclock.Offset{Sec: cfg.OffsetSec, NSec: cfg.OffsetNSec}
}

// BuildClock assembles the clock the configuration describes.
func (cfg *Config) BuildClock() (*fakeclock.Clock, error) {
	src, err := fakeclock.SourceByName(cfg.Source)
	if err != nil {
		return nil, errors.Wrap(err, "clock source")
	}
	return fakeclock.New(
		fakeclock.WithSource(src),
		fakeclock.WithOffset(cfg.ResolvedOffset()),
	), nil
}

// BuildLogger assembles the logger the configuration describes. A non-nil
// clk drives entry timestamps and file rotation.
func (cfg *Config) BuildLogger(clk clockwork.Clock) log.Logger {
	opts := []impl.Option{
		impl.WithStdout(cfg.Logging.Stdout, cfg.Logging.StdoutFormat),
		impl.WithLevel(levelOf(cfg.Logging.Level)),
		impl.WithAppName(cfg.Logging.AppName),
	}
	if cfg.Logging.FileEnabled {
		opts = append(opts,
			impl.WithFileOut(true, cfg.Logging.FileDir),
			impl.WithFileAsync(cfg.Logging.FileAsync),
		)
	}
	if clk != nil {
		opts = append(opts, impl.WithClock(impl.ZapClock(clk)))
	}
	return impl.New(opts...)
}

// Apply builds the clock and logger and, when configured, patches time.Now
// process-wide to the new clock.
func (cfg *Config) Apply() (*fakeclock.Clock, log.Logger, error) {
	clk, err := cfg.BuildClock()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Patch {
		patchtime.Patch(clk)
	}

	lg := cfg.BuildLogger(clk)
	if off := clk.Skew().Offset(); !off.IsZero() {
		lg.Info("time is shifted", field.Offset(off))
	}
	return clk, lg, nil
}

func levelOf(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return impl.DEBUG
	case "warn":
		return impl.WARN
	case "error":
		return impl.ERROR
	default:
		return impl.INFO
	}
}
