package stopwatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// portWrite records a single write for ordering assertions
type portWrite struct {
	kind  string // "segments" or "select"
	value uint8
}

type recordingPort struct {
	writes []portWrite
}

func (p *recordingPort) WriteSegments(pattern uint8) {
	p.writes = append(p.writes, portWrite{kind: "segments", value: pattern})
}

func (p *recordingPort) WriteSelect(lines uint8) {
	p.writes = append(p.writes, portWrite{kind: "select", value: lines})
}

func TestPositionCyclesThroughAllFivePositions(t *testing.T) {
	port := &recordingPort{}
	mux := newDisplayMux(newTimeKeeper(), port)

	expected := []digitPosition{
		positionDigit0, positionDigit1, positionDigit2, positionDigit3, positionSeparator,
		positionDigit0, positionDigit1, positionDigit2, positionDigit3, positionSeparator,
		positionDigit0,
	}

	for _, want := range expected {
		require.Equal(t, want, mux.position)
		mux.Refresh()
	}
}

func TestPositionCyclesRegardlessOfRunFlag(t *testing.T) {
	keeper := newTimeKeeper()
	mux := newDisplayMux(keeper, &recordingPort{})

	// paused
	for i := 0; i < 5; i++ {
		mux.Refresh()
	}
	require.Equal(t, positionDigit0, mux.position)

	// running
	keeper.Start()
	for i := 0; i < 5; i++ {
		mux.Refresh()
	}
	require.Equal(t, positionDigit0, mux.position)
}

func TestRefreshDrivesDigitNibbleWithItsSelectLine(t *testing.T) {
	keeper := newTimeKeeper()
	keeper.elapsed = 0x0300

	port := &recordingPort{}
	mux := newDisplayMux(keeper, port)
	mux.position = positionDigit2

	mux.Refresh()

	require.Equal(t, []portWrite{
		{kind: "select", value: selectNone},
		{kind: "segments", value: segmentsForDigit(3)},
		{kind: "select", value: 0xFB}, // only digit2's line asserted
	}, port.writes)
	require.Equal(t, positionDigit3, mux.position)
}

func TestRefreshSettlesSegmentsBeforeAssertingSelect(t *testing.T) {
	port := &recordingPort{}
	mux := newDisplayMux(newTimeKeeper(), port)

	for i := 0; i < 5; i++ {
		mux.Refresh()
	}

	require.Len(t, port.writes, 15)
	for i := 0; i < len(port.writes); i += 3 {
		require.Equal(t, portWrite{kind: "select", value: selectNone}, port.writes[i])
		require.Equal(t, "segments", port.writes[i+1].kind)
		require.Equal(t, "select", port.writes[i+2].kind)
		require.NotEqual(t, selectNone, port.writes[i+2].value)
	}
}

func TestSeparatorPositionDrivesFixedPattern(t *testing.T) {
	port := &recordingPort{}
	mux := newDisplayMux(newTimeKeeper(), port)
	mux.position = positionSeparator

	mux.Refresh()

	require.Equal(t, []portWrite{
		{kind: "select", value: selectNone},
		{kind: "segments", value: segmentsSeparator},
		{kind: "select", value: 0xEF},
	}, port.writes)
	require.Equal(t, positionDigit0, mux.position)
}

func TestCorruptedPositionResetsAndSkipsOneWrite(t *testing.T) {
	port := &recordingPort{}
	mux := newDisplayMux(newTimeKeeper(), port)
	mux.position = digitPosition(7)

	mux.Refresh()

	require.Empty(t, port.writes)
	require.Equal(t, positionDigit0, mux.position)

	// the next tick refreshes normally from digit0
	mux.Refresh()
	require.Len(t, port.writes, 3)
	require.Equal(t, uint8(0xFE), port.writes[2].value)
}
