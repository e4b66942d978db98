package numgo

import (
	"math"
	"unsafe"
)

// Cast converts v to kind U, reporting whether U can represent the result.
// It plays the role of a generic checked conversion between any two kinds
// of the closed numeric family:
//
//   - integer to integer: succeeds exactly when v lies within U's range,
//     compared through 64-bit intermediates.
//   - integer to float: always succeeds; the nearest float is returned even
//     when the integer has more significant bits than the float's mantissa.
//   - float to integer: truncates toward zero, then succeeds exactly when
//     the truncated value lies within U's range. NaN and ±Inf fail.
//   - float to float: widening always succeeds; narrowing fails for finite
//     values whose magnitude exceeds U's finite range. NaN and ±Inf always
//     convert to the destination's NaN and ±Inf.
//
// Cast never panics and never loses integer bits silently; callers who want
// the native truncating conversion should use As instead.
func Cast[U Number, T Number](v T) (U, bool) {
	if isFloat[U]() {
		return castToFloat[U](v)
	}
	if isFloat[T]() {
		return castFloatToInt[U](float64(v), mantissaOf[T]())
	}
	if isSigned[T]() {
		return castFromSigned[U](int64(v))
	}
	return castFromUnsigned[U](uint64(v))
}

// castToFloat handles any source kind with a float destination. A binary64
// destination represents every other kind's values at least approximately,
// so it never fails; a binary32 destination rejects finite binary64 values
// outside its finite range.
func castToFloat[U Number, T Number](v T) (U, bool) {
	var zu U
	if unsafe.Sizeof(zu) == 8 {
		return U(v), true
	}
	if isFloat[T]() && unsafe.Sizeof(v) == 8 {
		f := float64(v)
		if !math.IsInf(f, 0) && (f < -math.MaxFloat32 || f > math.MaxFloat32) {
			return 0, false
		}
	}
	return U(v), true
}

// castFromSigned converts a signed 64-bit intermediate to integer kind U.
func castFromSigned[U Number](n int64) (U, bool) {
	if isSigned[U]() {
		if n < int64(MinOf[U]()) || n > int64(MaxOf[U]()) {
			return 0, false
		}
		return U(n), true
	}
	if n < 0 || uint64(n) > uint64(MaxOf[U]()) {
		return 0, false
	}
	return U(n), true
}

// castFromUnsigned converts an unsigned 64-bit intermediate to integer kind U.
// An unsigned MaxOf is its full range; a signed MaxOf is non-negative, so the
// uint64 comparison is exact either way.
func castFromUnsigned[U Number](u uint64) (U, bool) {
	if u > uint64(MaxOf[U]()) {
		return 0, false
	}
	return U(u), true
}

// castFloatToInt truncates toward zero and bound-checks against integer
// kind U. mant is the mantissa precision of the source float kind.
//
// MIN is a power of two, so it is exactly representable in the source float
// and can be compared directly. MAX is not: when U has more value bits than
// the source mantissa, the low bits that the float cannot represent are
// masked off MAX so that the boundary itself is exact in the float domain.
// All comparisons run in binary64, which represents every binary32 value and
// every masked boundary exactly.
func castFloatToInt[U Number](f float64, mant uint) (U, bool) {
	var zu U
	t := math.Trunc(f)
	sig := uint(unsafe.Sizeof(zu)) * 8
	if isSigned[U]() {
		sig--
		// A NaN t fails this comparison, as intended.
		if !(t >= float64(MinOf[U]())) {
			return 0, false
		}
	} else if !(t >= 0) {
		return 0, false
	}
	maxU := uint64(MaxOf[U]())
	if sig > mant {
		maxU &^= uint64(1)<<(sig-mant) - 1
	}
	if !(t <= float64(maxU)) {
		return 0, false
	}
	return U(t), true
}

// mantissaOf is MantissaDigits without the Float constraint, for use where
// the type parameter is only known to be a Number. Meaningless for integers.
func mantissaOf[T Number]() uint {
	var z T
	if unsafe.Sizeof(z) == 4 {
		return 24
	}
	return 53
}

// ToInt8 converts v to int8 if it is exactly representable.
func ToInt8[T Number](v T) (int8, bool) { return Cast[int8](v) }

// ToInt16 converts v to int16 if it is exactly representable.
func ToInt16[T Number](v T) (int16, bool) { return Cast[int16](v) }

// ToInt32 converts v to int32 if it is exactly representable.
func ToInt32[T Number](v T) (int32, bool) { return Cast[int32](v) }

// ToInt64 converts v to int64 if it is exactly representable.
func ToInt64[T Number](v T) (int64, bool) { return Cast[int64](v) }

// ToInt converts v to int if it is exactly representable.
func ToInt[T Number](v T) (int, bool) { return Cast[int](v) }

// ToUint8 converts v to uint8 if it is exactly representable.
func ToUint8[T Number](v T) (uint8, bool) { return Cast[uint8](v) }

// ToUint16 converts v to uint16 if it is exactly representable.
func ToUint16[T Number](v T) (uint16, bool) { return Cast[uint16](v) }

// ToUint32 converts v to uint32 if it is exactly representable.
func ToUint32[T Number](v T) (uint32, bool) { return Cast[uint32](v) }

// ToUint64 converts v to uint64 if it is exactly representable.
func ToUint64[T Number](v T) (uint64, bool) { return Cast[uint64](v) }

// ToUint converts v to uint if it is exactly representable.
func ToUint[T Number](v T) (uint, bool) { return Cast[uint](v) }

// ToFloat32 converts v to the nearest float32. It fails only for finite
// float64 values outside the float32 finite range.
func ToFloat32[T Number](v T) (float32, bool) { return Cast[float32](v) }

// ToFloat64 converts v to the nearest float64. It never fails.
func ToFloat64[T Number](v T) (float64, bool) { return Cast[float64](v) }
