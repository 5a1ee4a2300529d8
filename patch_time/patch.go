package patchtime

import (
	"sync/atomic"
	"time"

	"bou.ke/monkey"

	"github.com/LLLLLLs/timeskew/fakeclock"
)

var current atomic.Pointer[fakeclock.Clock]

// Patch replaces time.Now for the whole process with c's shifted reading.
// Calling it again swaps the backing clock. A nil c installs a clock on the
// platform default source with a zero offset.
//
// Timers, tickers and Sleep are left alone: the offset moves wall readings
// only, never durations.
func Patch(c *fakeclock.Clock) {
	if c == nil {
		c = fakeclock.New()
	}
	current.Store(c)
	monkey.Patch(time.Now, patchedNow)
}

// Unpatch restores the real time.Now. The clock from the last Patch stays
// reachable through Active and Now.
func Unpatch() {
	monkey.Unpatch(time.Now)
}

// Active returns the clock installed by the last Patch, or nil before the
// first one.
func Active() *fakeclock.Clock {
	return current.Load()
}

// Now reads the active clock, or the real time when none was installed.
func Now() time.Time {
	if c := current.Load(); c != nil {
		return c.Now()
	}
	return time.Now()
}

func patchedNow() time.Time {
	return current.Load().Now()
}
