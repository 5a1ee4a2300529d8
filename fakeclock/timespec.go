package fakeclock

import "time"

// Timespec is a wall or monotonic reading split into whole seconds and
// nanoseconds, the shape clock_gettime fills in.
type Timespec struct {
	Sec  int64
	Nsec int64
}

// UnixNano folds the reading into a single nanosecond count.
func (ts Timespec) UnixNano() int64 {
	return ts.Sec*int64(time.Second) + ts.Nsec
}

// Time converts the reading to a time.Time in the local zone. Nsec values
// outside [0, 1e9) are carried into the seconds, so readings that sit right
// on a second boundary convert exactly.
func (ts Timespec) Time() time.Time {
	return time.Unix(ts.Sec, ts.Nsec)
}
