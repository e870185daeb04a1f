package yices

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBigIntCanonicalVectors(t *testing.T) {
	cases := []struct {
		val  int64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{-1, []byte{0xff}},
		{127, []byte{0x7f}},
		{-127, []byte{0x81}},
		{128, []byte{0x00, 0x80}},
		{-128, []byte{0x80}},
		{255, []byte{0x00, 0xff}},
		{-255, []byte{0xff, 0x01}},
		{256, []byte{0x01, 0x00}},
		{-256, []byte{0xff, 0x00}},
	}
	for _, tc := range cases {
		got := EncodeBigInt(big.NewInt(tc.val))
		assert.Equal(t, tc.want, got, "encoding of %d", tc.val)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// Every value in a window around each byte-length boundary, both signs.
	for _, center := range []int64{0, 1 << 7, 1 << 8, 1 << 15, 1 << 16, 1 << 31, 1 << 62} {
		for d := int64(-3); d <= 3; d++ {
			for _, sign := range []int64{1, -1} {
				v := big.NewInt(sign * (center + d))
				got := DecodeBigInt(EncodeBigInt(v))
				require.Zerof(t, v.Cmp(got), "round trip of %s gave %s", v, got)
			}
		}
	}
}

func TestEncodeDecodeRoundTripHuge(t *testing.T) {
	// Values wider than the 32-byte scratch buffer.
	v := new(big.Int).Lsh(big.NewInt(1), 400)
	v.Sub(v, big.NewInt(12345))
	for _, z := range []*big.Int{v, new(big.Int).Neg(v)} {
		got := DecodeBigInt(EncodeBigInt(z))
		require.Zerof(t, z.Cmp(got), "round trip of %s gave %s", z, got)
	}
}

func TestEncodeBigIntMinimal(t *testing.T) {
	// No encoding may start with a redundant sign byte.
	for _, v := range []int64{0, 1, -1, 127, -128, 128, -129, 255, -255, 256, -256, 32767, -32768, 32768} {
		b := EncodeBigInt(big.NewInt(v))
		require.NotEmpty(t, b)
		if len(b) >= 2 {
			redundant := (b[0] == 0x00 && b[1] < 0x80) || (b[0] == 0xff && b[1] >= 0x80)
			assert.Falsef(t, redundant, "non-minimal encoding %x of %d", b, v)
		}
	}
}

func TestDecodeBigIntAcceptsNonMinimal(t *testing.T) {
	// Redundant sign extension bytes must decode to the same value.
	assert.Zero(t, DecodeBigInt([]byte{0x00, 0x00, 0x7f}).Cmp(big.NewInt(127)))
	assert.Zero(t, DecodeBigInt([]byte{0xff, 0xff, 0x81}).Cmp(big.NewInt(-127)))
	assert.Zero(t, DecodeBigInt([]byte{0x00, 0x00}).Cmp(big.NewInt(0)))
	assert.Zero(t, DecodeBigInt(nil).Cmp(big.NewInt(0)))
}

func TestDecodeBigRat(t *testing.T) {
	third, err := DecodeBigRat([]byte{0x01}, []byte{0x03})
	require.NoError(t, err)
	assert.Zero(t, third.Cmp(big.NewRat(1, 3)))

	// SetFrac canonicalizes: -4/-6 is 2/3.
	q, err := DecodeBigRat(EncodeBigInt(big.NewInt(-4)), EncodeBigInt(big.NewInt(-6)))
	require.NoError(t, err)
	assert.Zero(t, q.Cmp(big.NewRat(2, 3)))

	_, err = DecodeBigRat([]byte{0x01}, []byte{0x00})
	assert.ErrorIs(t, err, ErrZeroDenominator)
	_, err = DecodeBigRat([]byte{0x01}, []byte{0x00, 0x00})
	assert.ErrorIs(t, err, ErrZeroDenominator)
	_, err = DecodeBigRat([]byte{0x01}, nil)
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

func TestNegateBytes(t *testing.T) {
	b := []byte{0xff, 0x00} // -256
	negateBytes(b)
	assert.Equal(t, []byte{0x01, 0x00}, b)

	// Negating the minimal encoding of a power of two overflows into the
	// sign byte; the codec always leaves room for it.
	c := []byte{0x00, 0x80} // 128
	negateBytes(c)
	assert.Equal(t, []byte{0xff, 0x80}, c) // -128 over two bytes
}
