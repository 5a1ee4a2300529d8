package impl

import (
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap/zapcore"
)

type tickerClock struct {
	clockwork.Clock
}

// NewTicker hands back a genuine ticker. A constant wall offset moves
// readings, not durations, so flush and rotation cadence stay real.
func (tickerClock) NewTicker(d time.Duration) *time.Ticker {
	return time.NewTicker(d)
}

// ZapClock adapts a clockwork.Clock, such as a shifted fakeclock.Clock, to
// the clock zap and rotatelogs take.
func ZapClock(c clockwork.Clock) zapcore.Clock {
	return tickerClock{Clock: c}
}
