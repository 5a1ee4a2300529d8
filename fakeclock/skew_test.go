package fakeclock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSkewZeroValue(t *testing.T) {
	var s Skew
	require.Equal(t, Offset{}, s.Offset())
}

func TestSkewSetAndReset(t *testing.T) {
	s := NewSkew()
	require.Equal(t, Offset{}, s.Offset())

	s.Set(Offset{Sec: 5, NSec: 100})
	require.Equal(t, Offset{Sec: 5, NSec: 100}, s.Offset())

	s.Reset()
	require.Equal(t, Offset{}, s.Offset())
}

func TestSkewSetDuration(t *testing.T) {
	s := NewSkew()
	s.SetDuration(-90 * time.Second)
	require.Equal(t, Offset{Sec: -90}, s.Offset())
}

func TestSkewSnapshotNeverTorn(t *testing.T) {
	a := Offset{Sec: 5, NSec: 100_000_000}
	b := Offset{Sec: -3, NSec: -200_000_000}

	s := NewSkew()
	stop := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			if i%2 == 0 {
				s.Set(a)
			} else {
				s.Set(b)
			}
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 10_000; i++ {
				got := s.Offset()
				if got != a && got != b && got != (Offset{}) {
					t.Errorf("torn offset snapshot: %+v", got)
					return
				}
			}
		}()
	}

	time.Sleep(10 * time.Millisecond)
	close(stop)
	wg.Wait()
}
