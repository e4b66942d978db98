package numgo

import "math"

// Euclidean division: the quotient is rounded so the remainder is always
// non-negative, satisfying a == q*b + r with 0 <= r < |b|. For unsigned
// kinds this degenerates to ordinary division and remainder.
//
// The plain variants share the language's precondition that b is non-zero;
// dividing by zero is a caller error, not a failure this library reports.
// Use the Checked variants to turn the precondition into an absent result.

// DivEuclid returns the Euclidean quotient of a and b.
func DivEuclid[T Integer](a, b T) T {
	q := a / b
	if r := a % b; r < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

// RemEuclid returns the least non-negative remainder of a mod b.
func RemEuclid[T Integer](a, b T) T {
	r := a % b
	if r < 0 {
		if b > 0 {
			r += b
		} else {
			r -= b
		}
	}
	return r
}

// DivRemEuclid returns both the Euclidean quotient and remainder.
func DivRemEuclid[T Integer](a, b T) (T, T) {
	return DivEuclid(a, b), RemEuclid(a, b)
}

// CheckedDivEuclid is DivEuclid reporting false on a zero divisor or on the
// overflowing case MIN / -1.
func CheckedDivEuclid[T Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	if min := MinOf[T](); min != 0 && a == min && b == ^T(0) {
		return 0, false
	}
	return DivEuclid(a, b), true
}

// CheckedRemEuclid is RemEuclid under the same rule as CheckedDivEuclid.
func CheckedRemEuclid[T Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	if min := MinOf[T](); min != 0 && a == min && b == ^T(0) {
		return 0, false
	}
	return RemEuclid(a, b), true
}

// CheckedDivRemEuclid returns both Euclidean results, or false under the
// same rule as CheckedDivEuclid.
func CheckedDivRemEuclid[T Integer](a, b T) (T, T, bool) {
	if b == 0 {
		return 0, 0, false
	}
	if min := MinOf[T](); min != 0 && a == min && b == ^T(0) {
		return 0, 0, false
	}
	return DivEuclid(a, b), RemEuclid(a, b), true
}

// DivEuclidFloat returns the Euclidean quotient of two floats. The result is
// approximate within floating-point rounding error.
func DivEuclidFloat[T Float](a, b T) T {
	q := T(math.Trunc(float64(a / b)))
	if T(math.Mod(float64(a), float64(b))) < 0 {
		if b > 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}

// RemEuclidFloat returns the least non-negative remainder of a mod b.
// Rounding can make a tiny negative a land exactly on |b|; the identity
// a == DivEuclidFloat(a,b)*b + RemEuclidFloat(a,b) still holds approximately.
func RemEuclidFloat[T Float](a, b T) T {
	r := T(math.Mod(float64(a), float64(b)))
	if r < 0 {
		if b > 0 {
			r += b
		} else {
			r -= b
		}
	}
	return r
}
