package fakeclock

import (
	"sync/atomic"
	"time"
)

// Skew holds the offset shared by every reader of a Clock. The pair is
// swapped atomically, so a concurrent reader always sees one published
// (Sec, NSec) combination, never a torn mix of two writes. The zero value
// carries a zero offset and is ready to use.
type Skew struct {
	offset atomic.Pointer[Offset]
}

func NewSkew() *Skew {
	return &Skew{}
}

// Set publishes o as the current offset.
func (s *Skew) Set(o Offset) {
	s.offset.Store(&o)
}

// SetDuration publishes d split into seconds and nanoseconds.
func (s *Skew) SetDuration(d time.Duration) {
	s.Set(OffsetFromDuration(d))
}

// Offset returns the current offset snapshot.
func (s *Skew) Offset() Offset {
	p := s.offset.Load()
	if p == nil {
		return Offset{}
	}
	return *p
}

// Reset publishes a zero offset, restoring unshifted readings.
func (s *Skew) Reset() {
	s.Set(Offset{})
}
