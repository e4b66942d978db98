package numgo

// Checked arithmetic over the integer kinds. Every operation returns the
// mathematically correct result and true, or the zero value and false when
// the result is not representable in T. The comma-ok pair is this library's
// rendering of an optional value: there is no fallback result and nothing
// is logged or retried.

// CheckedAdd adds two integers, reporting false on overflow.
func CheckedAdd[T Integer](a, b T) (T, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// CheckedSub subtracts b from a, reporting false on overflow.
func CheckedSub[T Integer](a, b T) (T, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}
	return d, true
}

// CheckedMul multiplies two integers, reporting false on overflow.
func CheckedMul[T Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// MIN * -1 wraps back to MIN and would slip past the division check.
	if min := MinOf[T](); min != 0 && a == min && b == ^T(0) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// CheckedDiv divides a by b, reporting false on a zero divisor and on the
// single overflowing case MIN / -1.
func CheckedDiv[T Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	if min := MinOf[T](); min != 0 && a == min && b == ^T(0) {
		return 0, false
	}
	return a / b, true
}

// CheckedShl shifts v left by s bits, reporting false when the shift amount,
// widened to a 32-bit magnitude, is negative or at least T's bit width.
func CheckedShl[T Integer, S Integer](v T, s S) (T, bool) {
	amt, ok := Cast[uint32](s)
	if !ok || amt >= uint32(BitsOf[T]()) {
		return 0, false
	}
	return v << amt, true
}

// CheckedShr shifts v right by s bits under the same rule as CheckedShl.
// The shift is arithmetic for signed kinds and logical for unsigned kinds.
func CheckedShr[T Integer, S Integer](v T, s S) (T, bool) {
	amt, ok := Cast[uint32](s)
	if !ok || amt >= uint32(BitsOf[T]()) {
		return 0, false
	}
	return v >> amt, true
}
