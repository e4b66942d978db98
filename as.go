package numgo

// As converts v to kind U with Go's native conversion semantics: integers
// truncate on narrowing, sign changes reinterpret the two's-complement bit
// pattern, and int↔float conversions approximate the value. It never fails.
//
// As is deliberately lossy and is not a substitute for Cast: converting a
// float whose truncated value does not fit the destination integer yields an
// implementation-defined result, exactly as the language conversion does.
// Reaching for As where the caller actually needs failure-on-loss is a
// correctness bug, not a style choice.
func As[U Number, T Number](v T) U {
	return U(v)
}
