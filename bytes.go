package numgo

import (
	"encoding/binary"
	"unsafe"
)

// Fixed-width byte encoding of the integer kinds. Values occupy exactly
// their kind's width; signed values use their two's-complement bit pattern.
// The From variants read the first width bytes of b and panic, like any
// slice access, when b is shorter than the kind's width.

// AppendBE appends v to dst in big-endian order and returns the result.
func AppendBE[T Integer](dst []byte, v T) []byte {
	switch unsafe.Sizeof(v) {
	case 1:
		return append(dst, byte(v))
	case 2:
		return binary.BigEndian.AppendUint16(dst, uint16(v))
	case 4:
		return binary.BigEndian.AppendUint32(dst, uint32(v))
	default:
		return binary.BigEndian.AppendUint64(dst, uint64(v))
	}
}

// AppendLE appends v to dst in little-endian order and returns the result.
func AppendLE[T Integer](dst []byte, v T) []byte {
	switch unsafe.Sizeof(v) {
	case 1:
		return append(dst, byte(v))
	case 2:
		return binary.LittleEndian.AppendUint16(dst, uint16(v))
	case 4:
		return binary.LittleEndian.AppendUint32(dst, uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(dst, uint64(v))
	}
}

// PutBE writes v into the leading bytes of b in big-endian order. It
// panics when b is shorter than the kind's width.
func PutBE[T Integer](b []byte, v T) {
	switch unsafe.Sizeof(v) {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.BigEndian.PutUint16(b, uint16(v))
	case 4:
		binary.BigEndian.PutUint32(b, uint32(v))
	default:
		binary.BigEndian.PutUint64(b, uint64(v))
	}
}

// PutLE writes v into the leading bytes of b in little-endian order. It
// panics when b is shorter than the kind's width.
func PutLE[T Integer](b []byte, v T) {
	switch unsafe.Sizeof(v) {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	default:
		binary.LittleEndian.PutUint64(b, uint64(v))
	}
}

// FromBE decodes a value of kind T from the leading bytes of b,
// interpreted in big-endian order.
func FromBE[T Integer](b []byte) T {
	var z T
	switch unsafe.Sizeof(z) {
	case 1:
		return T(b[0])
	case 2:
		return T(binary.BigEndian.Uint16(b))
	case 4:
		return T(binary.BigEndian.Uint32(b))
	default:
		return T(binary.BigEndian.Uint64(b))
	}
}

// FromLE decodes a value of kind T from the leading bytes of b,
// interpreted in little-endian order.
func FromLE[T Integer](b []byte) T {
	var z T
	switch unsafe.Sizeof(z) {
	case 1:
		return T(b[0])
	case 2:
		return T(binary.LittleEndian.Uint16(b))
	case 4:
		return T(binary.LittleEndian.Uint32(b))
	default:
		return T(binary.LittleEndian.Uint64(b))
	}
}
