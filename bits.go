package numgo

import "unsafe"

// BitsOf returns the width of T in bits.
func BitsOf[T Integer]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

// MantissaDigits returns the number of significant bits in F's significand,
// including the implicit leading bit: 24 for binary32, 53 for binary64.
func MantissaDigits[F Float]() uint {
	var z F
	if unsafe.Sizeof(z) == 4 {
		return 24
	}
	return 53
}
