package stopwatch

// digitPosition identifies which of the 5 display positions the next
// fast tick refreshes.
type digitPosition int

const (
	positionDigit0 digitPosition = iota // rightmost
	positionDigit1
	positionDigit2
	positionDigit3 // leftmost
	positionSeparator
)

func (p digitPosition) String() string {
	switch p {
	case positionDigit0:
		return "DIGIT0"
	case positionDigit1:
		return "DIGIT1"
	case positionDigit2:
		return "DIGIT2"
	case positionDigit3:
		return "DIGIT3"
	case positionSeparator:
		return "SEPARATOR"
	}
	return "INVALID"
}

// Select lines are active-low, one bit per position in digitPosition
// order. Exactly one line is asserted per refresh.
var selectPatterns = [5]uint8{
	0xFE, // digit0
	0xFD, // digit1
	0xFB, // digit2
	0xF7, // digit3
	0xEF, // separator
}

// selectNone deasserts every select line
const selectNone uint8 = 0xFF

// displayMux cycles the display one position per fast tick. It reads
// the elapsed-time register but never writes it, and it is the sole
// owner of the position counter.
type displayMux struct {
	position digitPosition
	keeper   *timeKeeper
	port     DisplayPort
}

func newDisplayMux(keeper *timeKeeper, port DisplayPort) *displayMux {
	return &displayMux{
		keeper: keeper,
		port:   port,
	}
}

// Refresh is the fast-tick handler body: drive the current position
// and advance to the next one. Runs regardless of the run flag.
//
// Write order matters: every select line is released and the new
// segment pattern settled before the next select line asserts, so a
// newly selected digit never flashes the previous digit's pattern.
func (m *displayMux) Refresh() {
	if m.position < positionDigit0 || m.position > positionSeparator {
		// corrupted position: resynchronise, skip this tick's write
		m.position = positionDigit0
		return
	}

	var pattern uint8
	switch m.position {
	case positionSeparator:
		pattern = segmentsSeparator
	default:
		value := m.keeper.Snapshot()
		pattern = segmentsForDigit(nibbleAt(value, uint(m.position)))
	}

	m.port.WriteSelect(selectNone)
	m.port.WriteSegments(pattern)
	m.port.WriteSelect(selectPatterns[m.position])

	m.position++
	if m.position > positionSeparator {
		m.position = positionDigit0
	}
}
