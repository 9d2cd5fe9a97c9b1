package stopwatch

// Segment patterns are active-low: a zero bit lights the segment.
//
// Bit 0 - Segment A (top)
// Bit 1 - Segment B (top right)
// Bit 2 - Segment C (bottom right)
// Bit 3 - Segment D (bottom)
// Bit 4 - Segment E (bottom left)
// Bit 5 - Segment F (top left)
// Bit 6 - Segment G (middle)
// Bit 7 - Decimal point
var segmentPatterns = [10]uint8{
	0xC0, // 0
	0xF9, // 1
	0xA4, // 2
	0xB0, // 3
	0x99, // 4
	0x92, // 5
	0x82, // 6
	0xF8, // 7
	0x80, // 8
	0x90, // 9
}

const (
	// segmentsBlank drives no segment
	segmentsBlank uint8 = 0xFF

	// segmentsSeparator lights only the decimal point; it is the fixed
	// pattern driven at the colon position
	segmentsSeparator uint8 = 0x7F
)

// segmentsForDigit maps a decimal digit to its drive pattern. Values
// outside 0-9 cannot occur while the BCD invariant holds; they render
// blank rather than ghosting a wrong digit.
func segmentsForDigit(digit uint16) uint8 {
	if digit > 9 {
		return segmentsBlank
	}
	return segmentPatterns[digit]
}

// SegmentLit reports whether the given segment (0 = A .. 6 = G,
// 7 = decimal point) is lit in an active-low drive pattern.
func SegmentLit(pattern uint8, segment uint) bool {
	return pattern&(1<<segment) == 0
}
