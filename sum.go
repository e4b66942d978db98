package numgo

// CheckedSum folds CheckedAdd over xs, starting from zero. The first
// overflowing step reports false. An empty slice sums to zero.
func CheckedSum[T Integer](xs []T) (T, bool) {
	var sum T
	for _, x := range xs {
		var ok bool
		if sum, ok = CheckedAdd(sum, x); !ok {
			return 0, false
		}
	}
	return sum, true
}

// CheckedProduct folds CheckedMul over xs, starting from one. The first
// overflowing step reports false. An empty slice multiplies to one.
func CheckedProduct[T Integer](xs []T) (T, bool) {
	p := One[T]()
	for _, x := range xs {
		var ok bool
		if p, ok = CheckedMul(p, x); !ok {
			return 0, false
		}
	}
	return p, true
}
