package field

import (
	"time"

	"go.uber.org/zap"

	"github.com/LLLLLLs/timeskew/fakeclock"
	"github.com/LLLLLLs/timeskew/sign"
)

type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int32(key string, val int32) Field {
	return zap.Int32(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

func Time(key string, val time.Time) Field {
	return zap.Time(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Error(err error) Field {
	return zap.NamedError(sign.Error.String(), err)
}

// Offset records a clock offset in its duration form.
func Offset(o fakeclock.Offset) Field {
	return zap.Stringer(sign.OFFSET.String(), o)
}

// ClockID records a clock id by its CLOCK_* name.
func ClockID(id fakeclock.ClockID) Field {
	return zap.Stringer(sign.CLOCK_ID.String(), id)
}
