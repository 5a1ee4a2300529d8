//go:build !linux

package fakeclock

import "github.com/pkg/errors"

func newSyscallSource() (Source, error) {
	return nil, errors.New("syscall clock source is linux-only")
}

// DefaultSource is the runtime clock where no raw syscall adapter exists.
func DefaultSource() Source {
	return RuntimeSource{}
}
