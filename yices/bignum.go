package yices

import "math/big"

// Big numbers cross the native boundary as minimal-length big-endian
// two's-complement byte sequences: b[0] is the most significant byte and the
// value is negative iff b[0] has its high bit set. This is the same layout
// as math/big's two's-complement interpretation of a signed magnitude, and
// the C side of the boundary produces and consumes the identical format.
//
// Examples:
//	N =  127 -> [0x7f]
//	N = -127 -> [0x81]
//	N =  128 -> [0x00, 0x80]
//	N = -128 -> [0x80]
//	N =  255 -> [0x00, 0xff]
//	N = -255 -> [0xff, 0x01]
//	N =  256 -> [0x01, 0x00]
//	N = -256 -> [0xff, 0x00]
//	N =    0 -> [0x00]

// negateBytes replaces b with its two's-complement negation, propagating the
// carry from the least significant byte.
func negateBytes(b []byte) {
	c := uint32(1)
	for k := len(b) - 1; k >= 0; k-- {
		x := (uint32(b[k]) ^ 0xff) + c
		b[k] = byte(x)
		c = x >> 8
	}
}

// EncodeBigInt converts z to its minimal two's-complement encoding. Zero
// encodes as a single 0x00 byte. Magnitudes of up to 31 bytes are staged in a
// fixed buffer so the common case performs a single allocation for the
// result.
func EncodeBigInt(z *big.Int) []byte {
	nbits := z.BitLen()
	// One spare byte so the sign bit always has room, even when the top
	// magnitude byte is saturated.
	nbytes := (nbits+7)/8 + 1

	var scratch [32]byte
	var buf []byte
	if nbytes <= len(scratch) {
		buf = scratch[:nbytes]
	} else {
		buf = make([]byte, nbytes)
	}

	z.FillBytes(buf[1:])
	if z.Sign() < 0 {
		negateBytes(buf)
	}

	// The leading byte is redundant if it is pure sign extension.
	if len(buf) >= 2 && ((buf[0] == 0x00 && buf[1] < 0x80) || (buf[0] == 0xff && buf[1] >= 0x80)) {
		buf = buf[1:]
	}

	out := make([]byte, len(buf))
	copy(out, buf)
	return out
}

// DecodeBigInt is the inverse of EncodeBigInt. It also accepts non-minimal
// input (redundant leading 0x00 or 0xff bytes) and never mutates b. An empty
// slice decodes to zero.
func DecodeBigInt(b []byte) *big.Int {
	z := new(big.Int)
	if len(b) == 0 {
		return z
	}
	if b[0] >= 0x80 {
		mag := make([]byte, len(b))
		copy(mag, b)
		negateBytes(mag)
		z.SetBytes(mag)
		return z.Neg(z)
	}
	return z.SetBytes(b)
}

// DecodeBigRat decodes a numerator/denominator pair of two's-complement byte
// sequences into a canonical rational (lowest terms, positive denominator).
// A denominator decoding to zero fails with ErrZeroDenominator.
func DecodeBigRat(num, den []byte) (*big.Rat, error) {
	if allZeroBytes(den) {
		return nil, ErrZeroDenominator
	}
	return new(big.Rat).SetFrac(DecodeBigInt(num), DecodeBigInt(den)), nil
}

// allZeroBytes reports whether b encodes the integer zero; this is a cheap
// local check so rational constructors can fail before any native call.
func allZeroBytes(b []byte) bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}
	return true
}
