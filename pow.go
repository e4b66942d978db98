package numgo

// Pow raises base to a non-negative integer power by squaring: the base is
// squared while the exponent is halved, and folded into the accumulator on
// every set exponent bit, so the loop runs O(log exp) multiplications.
//
// Pow(base, 0) is One[T]() for every base. In particular Pow(0, 0) == 1:
// this library follows the combinatorial convention for 0^0, which differs
// from the analytic one that leaves it undefined.
func Pow[T Number, E Unsigned](base T, exp E) T {
	if exp == 0 {
		return One[T]()
	}
	for exp&1 == 0 {
		base *= base
		exp >>= 1
	}
	if exp == 1 {
		return base
	}
	acc := base
	for exp > 1 {
		exp >>= 1
		base *= base
		if exp&1 == 1 {
			acc *= base
		}
	}
	return acc
}

// CheckedPow is Pow with every squaring and accumulation step checked for
// overflow. The first failing step reports false; partial results are
// discarded, never returned. CheckedPow(0, 0) is (1, true) by the same
// convention as Pow.
func CheckedPow[T Integer, E Unsigned](base T, exp E) (T, bool) {
	if exp == 0 {
		return One[T](), true
	}
	var ok bool
	for exp&1 == 0 {
		if base, ok = CheckedMul(base, base); !ok {
			return 0, false
		}
		exp >>= 1
	}
	if exp == 1 {
		return base, true
	}
	acc := base
	for exp > 1 {
		exp >>= 1
		if base, ok = CheckedMul(base, base); !ok {
			return 0, false
		}
		if exp&1 == 1 {
			if acc, ok = CheckedMul(acc, base); !ok {
				return 0, false
			}
		}
	}
	return acc, true
}

// Inv returns the multiplicative inverse of v.
func Inv[T Float](v T) T {
	return 1 / v
}
