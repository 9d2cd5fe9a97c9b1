package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Joshua-Ball1/Stopwatch/pkg/stopwatch"
)

func blankFrame() stopwatch.Frame {
	return stopwatch.Frame{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
}

func TestDrawCoversTheBasePanelBounds(t *testing.T) {
	buffer := Draw(blankFrame())
	require.Equal(t, Bounds(), buffer.Bounds())
	require.Equal(t, colorBackground, buffer.RGBAAt(0, 0))
}

func TestLitSegmentUsesLitColor(t *testing.T) {
	frame := blankFrame()
	frame[0] = 0x80 // "8": every segment lit

	buffer := Draw(frame)

	// sample inside digit0's top segment
	origin := cellOrigins[0]
	x := int(origin.X) + 4
	y := int(origin.Y) + 1
	require.Equal(t, colorLit, buffer.RGBAAt(x, y))
}

func TestUnlitSegmentUsesUnlitColor(t *testing.T) {
	buffer := Draw(blankFrame())

	origin := cellOrigins[0]
	x := int(origin.X) + 4
	y := int(origin.Y) + 1
	require.Equal(t, colorUnlit, buffer.RGBAAt(x, y))
}

func TestSeparatorDotsFollowTheDecimalPointBit(t *testing.T) {
	frame := blankFrame()
	frame[4] = 0x7F // decimal point lit

	buffer := Draw(frame)

	origin := cellOrigins[4]
	x := int(origin.X) + 3
	y := int(origin.Y) + 6
	require.Equal(t, colorLit, buffer.RGBAAt(x, y))
}
