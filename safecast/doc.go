// Package safecast provides directionally-typed numeric casts.
//
// A raw conversion can do four different things: change between integer and
// float, change signedness, grow a value without loss, or shrink it with
// loss. All four compile without complaint, which is how conversion bugs
// hide. This package gives each direction its own named operation whose
// source type set statically forbids the others, so the compiler rejects
// misuse instead of the reviewer having to catch it.
//
//   - Grow: narrower kind to a wider kind of the same signedness. Never
//     changes the value.
//   - Trim: wider kind to a narrower kind of the same signedness. Native
//     truncation; the value may change. Callers who need failure-on-loss
//     want numgo.Cast instead.
//   - Signed/Unsigned: change signedness at a fixed width, reinterpreting
//     the two's-complement bit pattern.
//
// Each family is reflexive: the destination kind appears in its own source
// set, and the identity cast is a no-op.
//
// For example, a function that needs any integer holding at least 16 bits:
//
//	func low12[T interface{ ~uint16 | ~uint32 | ~uint64 }](v T) uint16 {
//		return safecast.TrimUint16(v) & 0x0FFF
//	}
//
// The fully general reinterpreting cast, for the rare caller who really
// wants it, is numgo.As.
package safecast
