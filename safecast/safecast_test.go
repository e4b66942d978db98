package safecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrow(t *testing.T) {
	t.Run("signed", func(t *testing.T) {
		assert.Equal(t, int16(-128), GrowInt16(int8(-128)))
		assert.Equal(t, int32(math.MaxInt16), GrowInt32(int16(math.MaxInt16)))
		assert.Equal(t, int64(math.MinInt32), GrowInt64(int32(math.MinInt32)))
		assert.Equal(t, int64(-1), GrowInt64(-1))
		assert.Equal(t, -42, GrowInt(int8(-42)))
	})

	t.Run("unsigned", func(t *testing.T) {
		assert.Equal(t, uint16(255), GrowUint16(uint8(255)))
		assert.Equal(t, uint32(math.MaxUint16), GrowUint32(uint16(math.MaxUint16)))
		assert.Equal(t, uint64(math.MaxUint32), GrowUint64(uint32(math.MaxUint32)))
		assert.Equal(t, uint(7), GrowUint(uint8(7)))
	})

	t.Run("float", func(t *testing.T) {
		assert.Equal(t, 1.5, GrowFloat64(float32(1.5)))
		assert.Equal(t, float64(math.MaxFloat32), GrowFloat64(float32(math.MaxFloat32)))
	})

	t.Run("reflexive", func(t *testing.T) {
		assert.Equal(t, int64(5), GrowInt64(int64(5)))
		assert.Equal(t, uint32(5), GrowUint32(uint32(5)))
		assert.Equal(t, 2.5, GrowFloat64(2.5))
	})

	t.Run("named types", func(t *testing.T) {
		type epoch int32
		assert.Equal(t, int64(1700000000), GrowInt64(epoch(1700000000)))
	})
}

func TestTrim(t *testing.T) {
	t.Run("in range is identity", func(t *testing.T) {
		assert.Equal(t, int8(127), TrimInt8(int64(127)))
		assert.Equal(t, int16(-32768), TrimInt16(int32(-32768)))
		assert.Equal(t, uint8(255), TrimUint8(uint64(255)))
		assert.Equal(t, uint32(math.MaxUint32), TrimUint32(uint64(math.MaxUint32)))
	})

	t.Run("out of range truncates", func(t *testing.T) {
		assert.Equal(t, int8(-44), TrimInt8(int16(-300)))
		assert.Equal(t, int8(0), TrimInt8(int32(256)))
		assert.Equal(t, uint8(0x34), TrimUint8(uint32(0x1234)))
		assert.Equal(t, uint16(0xFFFF), TrimUint16(uint64(math.MaxUint64)))
	})

	t.Run("float", func(t *testing.T) {
		assert.Equal(t, float32(0.5), TrimFloat32(0.5))
		assert.True(t, math.IsInf(float64(TrimFloat32(1e300)), 1))
	})
}

func TestGrowTrimIdentity(t *testing.T) {
	for _, v := range []int8{math.MinInt8, -1, 0, 1, math.MaxInt8} {
		assert.Equal(t, v, TrimInt8(GrowInt64(v)), "v=%d", v)
		assert.Equal(t, v, TrimInt8(GrowInt32(v)), "v=%d", v)
		assert.Equal(t, v, TrimInt8(GrowInt16(v)), "v=%d", v)
	}
	for _, v := range []uint16{0, 1, 0x8000, math.MaxUint16} {
		assert.Equal(t, v, TrimUint16(GrowUint64(v)), "v=%d", v)
		assert.Equal(t, v, TrimUint16(GrowUint32(v)), "v=%d", v)
	}
}

func TestSignCast(t *testing.T) {
	t.Run("reinterprets the bit pattern", func(t *testing.T) {
		assert.Equal(t, int8(-128), Signed8(uint8(128)))
		assert.Equal(t, uint8(128), Unsigned8(int8(-128)))
		assert.Equal(t, int16(-1), Signed16(uint16(math.MaxUint16)))
		assert.Equal(t, uint32(math.MaxUint32), Unsigned32(int32(-1)))
		assert.Equal(t, int64(math.MinInt64), Signed64(uint64(1)<<63))
		assert.Equal(t, uint(math.MaxUint), Unsigned(-1))
	})

	t.Run("round trips", func(t *testing.T) {
		for _, v := range []int32{math.MinInt32, -1, 0, 1, math.MaxInt32} {
			assert.Equal(t, v, Signed32(Unsigned32(v)), "v=%d", v)
		}
		for _, v := range []uint64{0, 1, 1 << 63, math.MaxUint64} {
			assert.Equal(t, v, Unsigned64(Signed64(v)), "v=%d", v)
		}
	})

	t.Run("non-negative values are unchanged", func(t *testing.T) {
		assert.Equal(t, uint16(12345), Unsigned16(int16(12345)))
		assert.Equal(t, int8(100), Signed8(uint8(100)))
	})
}

func TestPlatformWord(t *testing.T) {
	assert.Equal(t, int64(-7), TrimInt64(int64(-7)))
	assert.Equal(t, uint64(7), TrimUint64(uint64(7)))
	assert.Equal(t, -7, TrimInt(int64(-7)))
	assert.Equal(t, uint(7), TrimUint(uint64(7)))
	assert.Equal(t, 7, Signed(uint(7)))
	assert.Equal(t, uint(7), Unsigned(uintptr(7)))
}
