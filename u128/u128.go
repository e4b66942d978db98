// Package u128 implements the unsigned 128-bit kind, the widest width in
// the family and the one with no native double-width type. Values are
// immutable two-limb structs; operations return new values.
package u128

import "math/bits"

// Uint128 is an unsigned 128-bit integer as two 64-bit limbs.
type Uint128 struct {
	Hi, Lo uint64
}

// Max is the largest representable Uint128.
var Max = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// From64 returns v zero-extended to 128 bits.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp returns -1, 0, or 1 depending on whether u is below, equal to, or
// above v.
func (u Uint128) Cmp(v Uint128) int {
	if u.Hi != v.Hi {
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	}
	if u.Lo != v.Lo {
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Add returns u + v, wrapping on overflow.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns u - v, wrapping on underflow.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Mul returns the low 128 bits of u * v, wrapping on overflow.
func (u Uint128) Mul(v Uint128) Uint128 {
	lo, _ := WideningMul(u, v)
	return lo
}

// WideningMul returns the full 256-bit product of a and b as a (low, high)
// pair, so that the mathematical product equals lo + hi·2^128. The product
// space always holds the result, so the operation cannot overflow.
//
// There is no native 256-bit type to multiply in, so this is schoolbook
// long multiplication on 64-bit limbs: the four partial products come from
// the hardware 64×64 full multiply and are combined with explicit carry
// propagation.
func WideningMul(a, b Uint128) (lo, hi Uint128) {
	x1, x0 := a.Hi, a.Lo
	y1, y0 := b.Hi, b.Lo

	p2, p1 := bits.Mul64(x0, y0)
	p2, p31 := carryMul64(x0, y1, p2)
	p2, p32 := carryMul64(x1, y0, p2)
	p3, overflow := bits.Add64(p31, p32, 0)
	p3, p4 := carryMul64(x1, y1, p3)
	p4 += overflow

	return Uint128{Hi: p2, Lo: p1}, Uint128{Hi: p4, Lo: p3}
}

// carryMul64 computes x*y + c, returning the low and high halves. The
// addition cannot overflow the high half: x*y is at most (2^64-1)^2, which
// leaves room for a full 64-bit carry.
func carryMul64(x, y, c uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(x, y)
	var carry uint64
	lo, carry = bits.Add64(lo, c, 0)
	hi += carry
	return lo, hi
}
