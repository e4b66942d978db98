package numgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPow(t *testing.T) {
	t.Run("integer", func(t *testing.T) {
		assert.Equal(t, 1024, Pow(2, uint(10)))
		assert.Equal(t, int8(1), Pow(int8(1), uint8(200)))
		assert.Equal(t, uint64(216), Pow(uint64(6), uint(3)))
		assert.Equal(t, -27, Pow(-3, uint(3)))
		assert.Equal(t, 81, Pow(-3, uint(4)))
	})

	t.Run("zero exponent", func(t *testing.T) {
		assert.Equal(t, 1, Pow(0, uint(0)))
		assert.Equal(t, 1, Pow(7, uint(0)))
		assert.Equal(t, float32(1), Pow(float32(0), uint8(0)))
	})

	t.Run("float", func(t *testing.T) {
		assert.InDelta(t, 9.261, Pow(2.1, uint(3)), 1e-12)
		assert.InDelta(t, math.Pow(0.5, 20), Pow(0.5, uint(20)), 1e-18)
	})

	t.Run("agrees with repeated multiplication", func(t *testing.T) {
		for base := int64(-5); base <= 5; base++ {
			want := int64(1)
			for exp := uint(0); exp <= 12; exp++ {
				assert.Equal(t, want, Pow(base, exp), "base=%d exp=%d", base, exp)
				want *= base
			}
		}
	})
}

func TestCheckedPow(t *testing.T) {
	got, ok := CheckedPow(3, uint(4))
	require.True(t, ok)
	assert.Equal(t, 81, got)

	got, ok = CheckedPow(0, uint(0))
	require.True(t, ok)
	assert.Equal(t, 1, got)

	b, ok := CheckedPow(int8(2), uint(6))
	require.True(t, ok)
	assert.Equal(t, int8(64), b)

	_, ok = CheckedPow(int8(2), uint(7))
	assert.False(t, ok)

	_, ok = CheckedPow(int8(7), uint(8))
	assert.False(t, ok)

	u, ok := CheckedPow(uint8(2), uint(7))
	require.True(t, ok)
	assert.Equal(t, uint8(128), u)

	_, ok = CheckedPow(uint8(2), uint(8))
	assert.False(t, ok)

	n, ok := CheckedPow(int8(-2), uint(7))
	require.True(t, ok)
	assert.Equal(t, int8(-128), n)
}

func TestInv(t *testing.T) {
	assert.Equal(t, 0.25, Inv(4.0))
	assert.Equal(t, float32(-0.5), Inv(float32(-2)))
	assert.True(t, math.IsInf(Inv(0.0), 1))
}
