package fakeclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestSyscallSourceRealtime(t *testing.T) {
	var src SyscallSource
	var ts Timespec
	require.NoError(t, src.Gettime(Realtime, &ts))

	diff := time.Now().UnixNano() - ts.UnixNano()
	if diff < 0 {
		diff = -diff
	}
	require.Less(t, diff, int64(time.Second))
}

func TestSyscallSourceMonotonicAdvances(t *testing.T) {
	var src SyscallSource
	var first, second Timespec
	require.NoError(t, src.Gettime(Monotonic, &first))
	time.Sleep(time.Millisecond)
	require.NoError(t, src.Gettime(Monotonic, &second))
	require.Greater(t, second.UnixNano(), first.UnixNano())
}

func TestSyscallSourceBoottime(t *testing.T) {
	var src SyscallSource
	var ts Timespec
	require.NoError(t, src.Gettime(Boottime, &ts))
	require.Greater(t, ts.UnixNano(), int64(0))
}

func TestSyscallSourceInvalidID(t *testing.T) {
	var src SyscallSource
	ts := Timespec{Sec: -7, Nsec: -7}
	err := src.Gettime(ClockID(123456), &ts)
	require.ErrorIs(t, err, unix.EINVAL)
	require.Equal(t, Timespec{Sec: -7, Nsec: -7}, ts)
}

func TestDefaultSourceIsSyscall(t *testing.T) {
	_, ok := DefaultSource().(SyscallSource)
	require.True(t, ok)
}

func TestSourceByName(t *testing.T) {
	src, err := SourceByName("syscall")
	require.NoError(t, err)
	require.IsType(t, SyscallSource{}, src)

	src, err = SourceByName("runtime")
	require.NoError(t, err)
	require.IsType(t, RuntimeSource{}, src)

	_, err = SourceByName("sundial")
	require.Error(t, err)
}
