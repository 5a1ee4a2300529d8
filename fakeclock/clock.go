// Package fakeclock shifts real-time clock readings by a configurable
// (seconds, nanoseconds) offset. Only CLOCK_REALTIME is adjusted; every
// other clock id passes through exactly as the underlying source reported
// it, so durations, timers and monotonic measurements stay genuine.
package fakeclock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock answers clock_gettime-shaped queries with the real-time reading
// shifted by the current Skew offset. It also satisfies clockwork.Clock, so
// it drops into code that takes an injectable clock.
type Clock struct {
	src    Source
	skew   *Skew
	waiter clockwork.Clock
}

var _ clockwork.Clock = (*Clock)(nil)

type Option func(*Clock)

// WithSource selects the raw clock behind the interceptor.
func WithSource(src Source) Option {
	return func(c *Clock) {
		c.src = src
	}
}

// WithSkew shares an existing offset handle. Replaces any offset set by an
// earlier option.
func WithSkew(s *Skew) Option {
	return func(c *Clock) {
		c.skew = s
	}
}

// WithOffset publishes o on the clock's current handle.
func WithOffset(o Offset) Option {
	return func(c *Clock) {
		c.skew.Set(o)
	}
}

// WithOffsetDuration publishes d split into seconds and nanoseconds.
func WithOffsetDuration(d time.Duration) Option {
	return func(c *Clock) {
		c.skew.SetDuration(d)
	}
}

// WithWaiter supplies the clock driving After, Sleep, timers and tickers.
// Waits measure genuine durations and are not shifted, so the default is
// the real clock; tests can hand in a fake.
func WithWaiter(w clockwork.Clock) Option {
	return func(c *Clock) {
		c.waiter = w
	}
}

func New(opts ...Option) *Clock {
	c := &Clock{
		src:    DefaultSource(),
		skew:   NewSkew(),
		waiter: clockwork.NewRealClock(),
	}
	for i := range opts {
		opts[i](c)
	}
	return c
}

// Gettime fills ts for the requested clock id. The underlying source is
// queried exactly once; its error, if any, comes back unchanged with ts
// exactly as the source left it. A real-time reading is then shifted by one
// consistent offset snapshot; all other ids pass through untouched.
func (c *Clock) Gettime(id ClockID, ts *Timespec) error {
	if err := c.src.Gettime(id, ts); err != nil {
		return err
	}
	if id == Realtime {
		off := c.skew.Offset()
		off.Shift(ts)
	}
	return nil
}

// Skew exposes the offset handle for external control.
func (c *Clock) Skew() *Skew {
	return c.skew
}

// SetOffset publishes o as the current offset.
func (c *Clock) SetOffset(o Offset) {
	c.skew.Set(o)
}

// Recover restores unshifted readings.
func (c *Clock) Recover() {
	c.skew.Reset()
}

// Now reports the shifted real-time reading. If the configured source fails,
// the runtime walltime stands in, so Now never goes through time.Now and
// stays usable while time.Now is patched to this clock.
func (c *Clock) Now() time.Time {
	var ts Timespec
	if err := c.Gettime(Realtime, &ts); err != nil {
		sec, nsec, _ := walltime()
		ts = Timespec{Sec: sec, Nsec: int64(nsec)}
		c.skew.Offset().Shift(&ts)
	}
	return ts.Time()
}

func (c *Clock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func (c *Clock) Until(t time.Time) time.Duration {
	return t.Sub(c.Now())
}

func (c *Clock) After(d time.Duration) <-chan time.Time {
	return c.waiter.After(d)
}

func (c *Clock) Sleep(d time.Duration) {
	c.waiter.Sleep(d)
}

func (c *Clock) NewTicker(d time.Duration) clockwork.Ticker {
	return c.waiter.NewTicker(d)
}

func (c *Clock) NewTimer(d time.Duration) clockwork.Timer {
	return c.waiter.NewTimer(d)
}

func (c *Clock) AfterFunc(d time.Duration, f func()) clockwork.Timer {
	return c.waiter.AfterFunc(d, f)
}
