package fakeclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOffsetShift(t *testing.T) {
	tests := []struct {
		name string
		off  Offset
		in   Timespec
		want Timespec
	}{
		{
			name: "zero offset is identity",
			off:  Offset{},
			in:   Timespec{Sec: 1000, Nsec: 200_000_000},
			want: Timespec{Sec: 1000, Nsec: 200_000_000},
		},
		{
			name: "whole seconds forward",
			off:  Offset{Sec: 300},
			in:   Timespec{Sec: 1000, Nsec: 200_000_000},
			want: Timespec{Sec: 1300, Nsec: 200_000_000},
		},
		{
			name: "negative offset borrows a second",
			off:  Offset{Sec: -10, NSec: -500_000_000},
			in:   Timespec{Sec: 1000, Nsec: 200_000_000},
			want: Timespec{Sec: 989, Nsec: 700_000_000},
		},
		{
			name: "nanosecond carry forward",
			off:  Offset{NSec: 900_000_000},
			in:   Timespec{Sec: 5, Nsec: 300_000_000},
			want: Timespec{Sec: 6, Nsec: 200_000_000},
		},
		{
			name: "sum exactly on a second boundary keeps the closed bound",
			off:  Offset{NSec: 800_000_000},
			in:   Timespec{Sec: 5, Nsec: 200_000_000},
			want: Timespec{Sec: 5, Nsec: 1_000_000_000},
		},
		{
			name: "oversized nanosecond field carries repeatedly",
			off:  Offset{Sec: 1, NSec: 1_500_000_000},
			in:   Timespec{Sec: 10, Nsec: 700_000_000},
			want: Timespec{Sec: 13, Nsec: 200_000_000},
		},
		{
			name: "oversized negative nanosecond field borrows repeatedly",
			off:  Offset{NSec: -2_300_000_000},
			in:   Timespec{Sec: 100, Nsec: 100_000_000},
			want: Timespec{Sec: 97, Nsec: 800_000_000},
		},
		{
			name: "negative offset landing on zero nanoseconds",
			off:  Offset{NSec: -200_000_000},
			in:   Timespec{Sec: 50, Nsec: 200_000_000},
			want: Timespec{Sec: 50, Nsec: 0},
		},
		{
			name: "shift below the epoch",
			off:  Offset{Sec: -1},
			in:   Timespec{Sec: 0, Nsec: 0},
			want: Timespec{Sec: -1, Nsec: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := tt.in
			tt.off.Shift(&ts)
			require.Equal(t, tt.want, ts)

			// The shift must preserve the nanosecond total exactly.
			wantTotal := tt.in.UnixNano() + tt.off.Sec*int64(time.Second) + tt.off.NSec
			require.Equal(t, wantTotal, ts.UnixNano())
		})
	}
}

func TestOffsetShiftBoundaryConvertsExactly(t *testing.T) {
	ts := Timespec{Sec: 5, Nsec: 200_000_000}
	Offset{NSec: 800_000_000}.Shift(&ts)
	require.Equal(t, int64(1_000_000_000), ts.Nsec)
	require.True(t, ts.Time().Equal(time.Unix(6, 0)))
}

func TestOffsetFromDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want Offset
	}{
		{0, Offset{}},
		{1500 * time.Millisecond, Offset{Sec: 1, NSec: 500_000_000}},
		{-1500 * time.Millisecond, Offset{Sec: -1, NSec: -500_000_000}},
		{500 * time.Millisecond, Offset{NSec: 500_000_000}},
		{-10*time.Minute - 30*time.Second, Offset{Sec: -630}},
		{24 * time.Hour, Offset{Sec: 86400}},
	}

	for _, tt := range tests {
		got := OffsetFromDuration(tt.d)
		require.Equal(t, tt.want, got, "duration %v", tt.d)
		require.Equal(t, tt.d, got.Duration(), "duration %v", tt.d)
	}
}

func TestOffsetIsZero(t *testing.T) {
	require.True(t, Offset{}.IsZero())
	require.False(t, Offset{Sec: 1}.IsZero())
	require.False(t, Offset{NSec: -1}.IsZero())
}

func TestOffsetString(t *testing.T) {
	require.Equal(t, "-10m30s", Offset{Sec: -630}.String())
	require.Equal(t, "1.5s", Offset{Sec: 1, NSec: 500_000_000}.String())
	require.Equal(t, "0s", Offset{}.String())
}
