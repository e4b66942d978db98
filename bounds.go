package numgo

import (
	"math"
	"unsafe"
)

// MinOf returns the smallest representable value of T.
// For floats this is the most negative finite value, not -Inf.
func MinOf[T Number]() T {
	var z T
	if isFloat[T]() {
		if unsafe.Sizeof(z) == 4 {
			f := -math.MaxFloat32
			return T(f)
		}
		f := -math.MaxFloat64
		return T(f)
	}
	if !isSigned[T]() {
		return z
	}
	// Repeated doubling wraps 1 around to -2^(w-1).
	m := z + 1
	for range uint(unsafe.Sizeof(z))*8 - 1 {
		m += m
	}
	return m
}

// MaxOf returns the largest representable value of T.
// For floats this is the largest finite value, not +Inf.
func MaxOf[T Number]() T {
	var z T
	if isFloat[T]() {
		if unsafe.Sizeof(z) == 4 {
			f := math.MaxFloat32
			return T(f)
		}
		f := math.MaxFloat64
		return T(f)
	}
	if !isSigned[T]() {
		return z - 1
	}
	return -(MinOf[T]() + 1)
}

// isSigned reports whether T can represent negative values.
func isSigned[T Number]() bool {
	var z T
	return z-1 < z
}

// isFloat reports whether T is a floating-point kind. Integer division
// of 1 by 2 is zero; float division is not.
func isFloat[T Number]() bool {
	return T(1)/T(2) != 0
}
