package numgo

import "golang.org/x/exp/constraints"

// Signed is the closed family of signed integer kinds.
type Signed = constraints.Signed

// Unsigned is the closed family of unsigned integer kinds, including the
// platform word types uint and uintptr.
type Unsigned = constraints.Unsigned

// Integer is the union of Signed and Unsigned.
type Integer = constraints.Integer

// Float is the family of IEEE-754 binary32 and binary64 kinds.
type Float = constraints.Float

// Number is any primitive numeric kind supported by this library.
type Number interface {
	constraints.Integer | constraints.Float
}
