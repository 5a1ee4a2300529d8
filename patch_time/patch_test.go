package patchtime

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LLLLLLs/timeskew/fakeclock"
)

var clk = fakeclock.New(fakeclock.WithSource(fakeclock.RuntimeSource{}))

func TestMain(m *testing.M) {
	Patch(clk)
	code := m.Run()
	Unpatch()
	os.Exit(code)
}

// realNow reads the wall clock underneath the patch.
func realNow(t *testing.T) time.Time {
	t.Helper()
	var ts fakeclock.Timespec
	require.NoError(t, fakeclock.RuntimeSource{}.Gettime(fakeclock.Realtime, &ts))
	return ts.Time()
}

func TestPatchedNowFollowsOffset(t *testing.T) {
	clk.Recover()
	before := time.Now()

	clk.SetOffset(fakeclock.Offset{Sec: 3600})
	defer clk.Recover()

	d := time.Now().Sub(before)
	require.Greater(t, d, time.Hour-2*time.Second)
	require.Less(t, d, time.Hour+2*time.Second)
}

func TestRecoverRestoresRealReadings(t *testing.T) {
	clk.SetOffset(fakeclock.Offset{Sec: 3600})
	clk.Recover()

	d := time.Now().Sub(realNow(t))
	require.Less(t, d.Abs(), 2*time.Second)
}

func TestUnpatchRestoresRealNow(t *testing.T) {
	clk.SetOffset(fakeclock.Offset{Sec: 7200})
	defer clk.Recover()

	Unpatch()
	defer Patch(clk)

	d := time.Now().Sub(realNow(t))
	require.Less(t, d.Abs(), 2*time.Second)
}

func TestPatchSwapsClock(t *testing.T) {
	other := fakeclock.New(
		fakeclock.WithSource(fakeclock.RuntimeSource{}),
		fakeclock.WithOffsetDuration(-30*time.Minute),
	)
	Patch(other)
	defer Patch(clk)

	require.Same(t, other, Active())

	d := time.Now().Sub(realNow(t))
	require.Less(t, d, -29*time.Minute)
	require.Greater(t, d, -31*time.Minute)
}

func TestNowReadsActiveClock(t *testing.T) {
	clk.SetOffset(fakeclock.Offset{Sec: 600})
	defer clk.Recover()

	d := Now().Sub(realNow(t))
	require.Greater(t, d, 9*time.Minute)
	require.Less(t, d, 11*time.Minute)
}

func TestTimersStayGenuine(t *testing.T) {
	clk.SetOffset(fakeclock.Offset{Sec: 3600})
	defer clk.Recover()

	start := realNow(t)
	<-time.After(50 * time.Millisecond)
	elapsed := realNow(t).Sub(start)

	// A one hour wall offset must not move timer deadlines.
	require.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	require.Less(t, elapsed, 5*time.Second)
}
