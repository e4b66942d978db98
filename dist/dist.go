// Package dist provides scalar norm and distance helpers for generic
// numeric code, typically to decide whether a demanded precision has been
// reached.
package dist

import "github.com/hupe1980/numgo"

// Norm returns the absolute value of v. Unsigned values are returned
// unchanged; signed and float values are negated when below zero.
func Norm[T numgo.Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Distance returns the norm of the difference between a and b, evaluated
// larger-minus-smaller so unsigned operands never wrap. The difference must
// itself be representable in T; for signed kinds that bounds the operands
// to half the range apart.
func Distance[T numgo.Number](a, b T) T {
	if b > a {
		a, b = b, a
	}
	return a - b
}

// Within reports whether a and b are at most eps apart. With a NaN operand
// it reports false.
func Within[T numgo.Number](a, b, eps T) bool {
	return Distance(a, b) <= eps
}
