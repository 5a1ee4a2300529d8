package fakeclock

import "github.com/pkg/errors"

// ErrUnsupportedClock reports a clock id the source cannot read.
var ErrUnsupportedClock = errors.New("unsupported clock id")

// Source is the raw clock behind a Clock. Implementations fill ts for the
// requested id or return an error without retrying; the error and whatever
// the source wrote reach the caller unchanged.
type Source interface {
	Gettime(id ClockID, ts *Timespec) error
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(id ClockID, ts *Timespec) error

func (f SourceFunc) Gettime(id ClockID, ts *Timespec) error {
	return f(id, ts)
}

// SourceByName builds the source selected by name: "syscall" for the kernel
// clock (linux only) or "runtime" for the portable runtime readings.
func SourceByName(name string) (Source, error) {
	switch name {
	case "syscall":
		return newSyscallSource()
	case "runtime":
		return RuntimeSource{}, nil
	default:
		return nil, errors.Errorf("unknown clock source %q", name)
	}
}
