//go:build 386 || arm || mips || mipsle

package safecast

// Platform-word memberships for a 32-bit int.

// GrowInt widens a signed kind of at most 32 bits to the platform int.
func GrowInt[T ~int8 | ~int16 | ~int32 | ~int](v T) int { return int(v) }

// GrowUint widens an unsigned kind of at most 32 bits to the platform uint.
func GrowUint[T ~uint8 | ~uint16 | ~uint32 | ~uint | ~uintptr](v T) uint { return uint(v) }

// TrimInt64 truncates to int64; a 32-bit int is excluded because the cast
// would be a widening one.
func TrimInt64[T ~int64](v T) int64 { return int64(v) }

// TrimUint64 truncates to uint64.
func TrimUint64[T ~uint64](v T) uint64 { return uint64(v) }

// TrimInt truncates a wider signed kind to the platform int.
func TrimInt[T ~int | ~int64](v T) int { return int(v) }

// TrimUint truncates a wider unsigned kind to the platform uint.
func TrimUint[T ~uint | ~uintptr | ~uint64](v T) uint { return uint(v) }
