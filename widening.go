package numgo

import "math/bits"

// WideningMul returns the full product of a and b as a (low, high) pair of
// W-bit halves such that the mathematical product equals lo + hi·2^W. The
// 2W-bit product space always holds the result, so the operation is total.
//
// Widths up to 32 bits multiply in the native double-width type and split
// the result by shift and truncation; 64-bit kinds use the hardware 64×64
// full multiply. The 128-bit kind, which has no wider native type, lives in
// the u128 package with a carry-propagating schoolbook implementation.
func WideningMul[T Unsigned](a, b T) (lo, hi T) {
	if w := BitsOf[T](); w <= 32 {
		wide := uint64(a) * uint64(b)
		return T(wide), T(wide >> w)
	}
	h, l := bits.Mul64(uint64(a), uint64(b))
	return T(l), T(h)
}
