package simulator

import "unicode/utf16"

// Hash derives the simulator seed from s.
//
// It walks the UTF-16 code units of s with a 32-bit signed accumulator,
// h = h*31 + unit, wrapping on overflow, and returns |h|. The result must
// stay bit-for-bit stable: every simulated record is derived from it.
func Hash(s string) uint32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(unit)
	}
	if h < 0 {
		// -math.MinInt32 does not fit in int32, so negate in 64 bits.
		return uint32(-int64(h))
	}
	return uint32(h)
}
