package fakeclock

import (
	_ "unsafe"
)

//go:linkname walltime time.now
func walltime() (sec int64, nsec int32, mono int64)

//go:linkname nanotime runtime.nanotime
func nanotime() int64

// RuntimeSource reads clocks from the Go runtime instead of the kernel, so
// it works on every platform and keeps working while time.Now is patched.
// Real-time ids come from the runtime walltime, the monotonic family from
// the runtime nanotime. CPU-time, TAI and alarm ids are not available here
// and fail with ErrUnsupportedClock.
type RuntimeSource struct{}

func (RuntimeSource) Gettime(id ClockID, ts *Timespec) error {
	switch id {
	case Realtime, RealtimeCoarse:
		sec, nsec, _ := walltime()
		ts.Sec = sec
		ts.Nsec = int64(nsec)
		return nil
	case Monotonic, MonotonicRaw, MonotonicCoarse, Boottime:
		ns := nanotime()
		ts.Sec = ns / billion
		ts.Nsec = ns % billion
		return nil
	default:
		return ErrUnsupportedClock
	}
}
