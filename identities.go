package numgo

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	var z T
	return z
}

// One returns the multiplicative identity of T.
func One[T Number]() T {
	return 1
}
