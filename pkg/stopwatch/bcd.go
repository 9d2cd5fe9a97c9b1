package stopwatch

// nibbleAt extracts the 4-bit BCD digit at the given position from a
// packed value. Position 0 is the least significant digit.
func nibbleAt(v uint16, position uint) uint16 {
	return (v >> (4 * position)) & 0x0F
}

// bcdAdd adds two packed 4-digit BCD values using per-nibble decimal
// arithmetic: any nibble sum above 9 is corrected by 10 and carries
// into the next digit, exactly as manual decimal addition would.
//
// A carry out of the most significant digit is discarded (the value
// wraps). Callers that must not wrap check against their maximum
// before adding.
func bcdAdd(a, b uint16) uint16 {
	var result uint16
	var carry uint16

	for i := uint(0); i < 4; i++ {
		digit := nibbleAt(a, i) + nibbleAt(b, i) + carry
		carry = 0
		if digit > 9 {
			digit -= 10
			carry = 1
		}
		result |= digit << (4 * i)
	}

	return result
}
