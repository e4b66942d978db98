package safecast

// Grow casts widen without changing signedness or value. The destination
// kind is included in each source set, making the identity cast a no-op.

// GrowInt16 widens a narrower signed kind to int16.
func GrowInt16[T ~int8 | ~int16](v T) int16 { return int16(v) }

// GrowInt32 widens a narrower signed kind to int32.
func GrowInt32[T ~int8 | ~int16 | ~int32](v T) int32 { return int32(v) }

// GrowInt64 widens a narrower signed kind, including the platform int,
// to int64.
func GrowInt64[T ~int8 | ~int16 | ~int32 | ~int64 | ~int](v T) int64 { return int64(v) }

// GrowUint16 widens a narrower unsigned kind to uint16.
func GrowUint16[T ~uint8 | ~uint16](v T) uint16 { return uint16(v) }

// GrowUint32 widens a narrower unsigned kind to uint32.
func GrowUint32[T ~uint8 | ~uint16 | ~uint32](v T) uint32 { return uint32(v) }

// GrowUint64 widens a narrower unsigned kind, including the platform word
// kinds, to uint64.
func GrowUint64[T ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr](v T) uint64 {
	return uint64(v)
}

// GrowFloat64 widens float32 to float64.
func GrowFloat64[T ~float32 | ~float64](v T) float64 { return float64(v) }

// Trim casts narrow without changing signedness. The conversion is the
// native truncating one; high bits are discarded.

// TrimInt8 truncates a wider signed kind to int8.
func TrimInt8[T ~int8 | ~int16 | ~int32 | ~int64 | ~int](v T) int8 { return int8(v) }

// TrimInt16 truncates a wider signed kind to int16.
func TrimInt16[T ~int16 | ~int32 | ~int64 | ~int](v T) int16 { return int16(v) }

// TrimInt32 truncates a wider signed kind to int32.
func TrimInt32[T ~int32 | ~int64 | ~int](v T) int32 { return int32(v) }

// TrimUint8 truncates a wider unsigned kind to uint8.
func TrimUint8[T ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr](v T) uint8 {
	return uint8(v)
}

// TrimUint16 truncates a wider unsigned kind to uint16.
func TrimUint16[T ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr](v T) uint16 { return uint16(v) }

// TrimUint32 truncates a wider unsigned kind to uint32.
func TrimUint32[T ~uint32 | ~uint64 | ~uint | ~uintptr](v T) uint32 { return uint32(v) }

// TrimFloat32 narrows float64 to float32, rounding to the nearest value.
func TrimFloat32[T ~float32 | ~float64](v T) float32 { return float32(v) }

// Sign casts reinterpret the two's-complement bit pattern at a fixed
// width. Reciprocal by construction: Signed8(Unsigned8(v)) == v.

// Signed8 reinterprets an 8-bit value as int8.
func Signed8[T ~uint8 | ~int8](v T) int8 { return int8(v) }

// Signed16 reinterprets a 16-bit value as int16.
func Signed16[T ~uint16 | ~int16](v T) int16 { return int16(v) }

// Signed32 reinterprets a 32-bit value as int32.
func Signed32[T ~uint32 | ~int32](v T) int32 { return int32(v) }

// Signed64 reinterprets a 64-bit value as int64.
func Signed64[T ~uint64 | ~int64](v T) int64 { return int64(v) }

// Signed reinterprets a platform word as int.
func Signed[T ~uint | ~uintptr | ~int](v T) int { return int(v) }

// Unsigned8 reinterprets an 8-bit value as uint8.
func Unsigned8[T ~int8 | ~uint8](v T) uint8 { return uint8(v) }

// Unsigned16 reinterprets a 16-bit value as uint16.
func Unsigned16[T ~int16 | ~uint16](v T) uint16 { return uint16(v) }

// Unsigned32 reinterprets a 32-bit value as uint32.
func Unsigned32[T ~int32 | ~uint32](v T) uint32 { return uint32(v) }

// Unsigned64 reinterprets a 64-bit value as uint64.
func Unsigned64[T ~int64 | ~uint64](v T) uint64 { return uint64(v) }

// Unsigned reinterprets a platform word as uint.
func Unsigned[T ~int | ~uint | ~uintptr](v T) uint { return uint(v) }
