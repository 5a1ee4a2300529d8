package fakeclock

import (
	"fmt"

	"github.com/pkg/errors"
)

// ClockID selects a kernel clock source, using the Linux numbering.
type ClockID int32

const (
	Realtime        ClockID = 0
	Monotonic       ClockID = 1
	ProcessCPUTime  ClockID = 2
	ThreadCPUTime   ClockID = 3
	MonotonicRaw    ClockID = 4
	RealtimeCoarse  ClockID = 5
	MonotonicCoarse ClockID = 6
	Boottime        ClockID = 7
	RealtimeAlarm   ClockID = 8
	BoottimeAlarm   ClockID = 9
	TAI             ClockID = 11
)

var clockNames = map[ClockID]string{
	Realtime:        "CLOCK_REALTIME",
	Monotonic:       "CLOCK_MONOTONIC",
	ProcessCPUTime:  "CLOCK_PROCESS_CPUTIME_ID",
	ThreadCPUTime:   "CLOCK_THREAD_CPUTIME_ID",
	MonotonicRaw:    "CLOCK_MONOTONIC_RAW",
	RealtimeCoarse:  "CLOCK_REALTIME_COARSE",
	MonotonicCoarse: "CLOCK_MONOTONIC_COARSE",
	Boottime:        "CLOCK_BOOTTIME",
	RealtimeAlarm:   "CLOCK_REALTIME_ALARM",
	BoottimeAlarm:   "CLOCK_BOOTTIME_ALARM",
	TAI:             "CLOCK_TAI",
}

var clockIDs = func() map[string]ClockID {
	m := make(map[string]ClockID, len(clockNames))
	for id, name := range clockNames {
		m[name] = id
	}
	return m
}()

func (id ClockID) String() string {
	if name, ok := clockNames[id]; ok {
		return name
	}
	return fmt.Sprintf("clockid(%d)", int32(id))
}

// ParseClockID resolves a CLOCK_* name to its identifier.
func ParseClockID(name string) (ClockID, error) {
	id, ok := clockIDs[name]
	if !ok {
		return 0, errors.Errorf("unknown clock id %q", name)
	}
	return id, nil
}

func MustParseClockID(name string) ClockID {
	id, err := ParseClockID(name)
	if err != nil {
		panic(err)
	}
	return id
}
