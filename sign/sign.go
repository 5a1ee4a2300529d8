package sign

type Sign string

func (s Sign) String() string {
	return string(s)
}

const (
	LOGGER   Sign = "logger"
	TRACE_ID Sign = "trace_id"
	Error    Sign = "error"
	OFFSET   Sign = "time_offset"
	CLOCK_ID Sign = "clock_id"
)
