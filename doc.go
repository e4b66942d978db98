// Package numgo provides generic, value-preserving numeric operations over
// the primitive scalar kinds: fallible conversion, overflow-checked
// arithmetic, Euclidean division, exponentiation by squaring, and full
// double-width multiplication.
//
// Every operation is a pure function of its operands: nothing is allocated,
// logged, retried, or shared, so every function is safe to call from any
// number of goroutines.
//
// # Two failure styles
//
// Fallible operations return a comma-ok pair and report false when the
// mathematical result is not representable. There is no panic and no
// fallback value:
//
//	v, ok := numgo.Cast[int32](someFloat)
//	s, ok := numgo.CheckedAdd(a, b)
//
// Total operations (As, Pow, WideningMul, DivEuclid, the safecast package)
// never fail by construction; using one outside its documented domain, such
// as a zero divisor in DivEuclid, is a caller error.
//
// # Conversion
//
// Cast succeeds only when the destination can represent the result, with
// two documented relaxations: int→float returns the nearest float, and
// float→int truncates the fraction toward zero before bound-checking. As
// always succeeds, with the language's native lossy conversion semantics.
// Mixing the two up is a correctness bug; pick the one whose contract you
// mean:
//
//	n, ok := numgo.Cast[int8](int16(200)) // 0, false
//	m := numgo.As[int8](int16(200))       // -56
//
// # Directional casts
//
// The safecast package splits the lossy cast into three families (Grow,
// Trim, Sign) whose type signatures make misuse a compile error rather
// than a runtime surprise.
//
// # Widths
//
// The native kinds cover 8 to 64 bits plus the platform word; the u128
// package supplies the 128-bit kind, including its schoolbook widening
// multiplication.
package numgo
