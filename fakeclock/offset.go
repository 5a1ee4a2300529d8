package fakeclock

import "time"

const billion = int64(time.Second)

// Offset is a fixed shift applied to real-time readings, split into whole
// seconds and nanoseconds. Either field may be negative and NSec may exceed
// one second in magnitude; Shift folds the surplus into the seconds.
type Offset struct {
	Sec  int64 `json:"sec"`
	NSec int64 `json:"nsec"`
}

// OffsetFromDuration splits d into an Offset. Both fields take d's sign, so
// -1.5s becomes {Sec: -1, NSec: -500000000}.
func OffsetFromDuration(d time.Duration) Offset {
	return Offset{
		Sec:  d.Nanoseconds() / billion,
		NSec: d.Nanoseconds() % billion,
	}
}

// Duration folds the offset back into a time.Duration. Offsets beyond the
// Duration range (about ±292 years) wrap.
func (o Offset) Duration() time.Duration {
	return time.Duration(o.Sec)*time.Second + time.Duration(o.NSec)
}

func (o Offset) IsZero() bool {
	return o.Sec == 0 && o.NSec == 0
}

func (o Offset) String() string {
	return o.Duration().String()
}

// Shift applies the offset to ts in place. The nanosecond surplus is moved
// into whole seconds one second at a time before the add, keeping the result
// within [0, 1e9] and the nanosecond total exact. The upper bound is closed:
// a sum landing exactly on a second boundary leaves Nsec at
// 1_000_000_000 rather than rolling over, which Timespec.Time still converts
// exactly.
func (o Offset) Shift(ts *Timespec) {
	sec, nsec := o.Sec, o.NSec
	for nsec+ts.Nsec > billion {
		sec++
		nsec -= billion
	}
	for nsec+ts.Nsec < 0 {
		sec--
		nsec += billion
	}
	ts.Sec += sec
	ts.Nsec += nsec
}
