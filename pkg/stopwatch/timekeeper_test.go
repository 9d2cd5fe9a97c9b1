package stopwatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTickDoesNothingWhilePaused(t *testing.T) {
	tk := newTimeKeeper()
	tk.Tick()

	require.Equal(t, uint16(0), tk.Snapshot())
	require.False(t, tk.Running())
}

func TestTenTicksAdvanceSecondsDigit(t *testing.T) {
	tk := newTimeKeeper()
	tk.Start()

	for i := 0; i < 10; i++ {
		tk.Tick()
	}

	require.Equal(t, uint16(0x0100), tk.Snapshot())
	require.True(t, tk.Running())
}

func TestPauseFreezesReadingAndIsIdempotent(t *testing.T) {
	tk := newTimeKeeper()
	tk.Start()
	tk.Tick()
	tk.Tick()

	tk.Pause()
	tk.Pause()
	tk.Tick()

	require.Equal(t, uint16(0x0020), tk.Snapshot())
	require.False(t, tk.Running())
}

func TestStartResumesFromRetainedReading(t *testing.T) {
	tk := newTimeKeeper()
	tk.Start()
	tk.Tick()
	tk.Pause()

	tk.Start()
	tk.Tick()

	require.Equal(t, uint16(0x0020), tk.Snapshot())
	require.True(t, tk.Running())
}

func TestResetZeroesReadingFromAnyState(t *testing.T) {
	tk := newTimeKeeper()
	tk.Start()
	tk.Tick()

	tk.Reset()

	require.Equal(t, uint16(0), tk.Snapshot())
	require.False(t, tk.Running())
}

func TestOverflowStopsCountingAtMaximum(t *testing.T) {
	tk := newTimeKeeper()
	tk.elapsed = 0x9980
	tk.Start()

	tk.Tick()

	require.Equal(t, maxElapsed, tk.Snapshot())
	require.False(t, tk.Running())
}

func TestMaximumStaysPinnedEvenIfRunFlagForcedBackOn(t *testing.T) {
	tk := newTimeKeeper()
	tk.elapsed = maxElapsed

	for i := 0; i < 3; i++ {
		tk.Start()
		tk.Tick()

		require.Equal(t, maxElapsed, tk.Snapshot())
		require.False(t, tk.Running())
	}
}

func TestResetIsTheExitFromOverflowStop(t *testing.T) {
	tk := newTimeKeeper()
	tk.elapsed = maxElapsed

	tk.Reset()
	tk.Start()
	tk.Tick()

	require.Equal(t, uint16(0x0010), tk.Snapshot())
	require.True(t, tk.Running())
}
