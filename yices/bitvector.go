//go:build cgo
// +build cgo

package yices

/*
#include <stdlib.h>
#include "shim.h"
*/
import "C"

// BVConst creates the nbits-wide constant with the value of val, truncated
// or sign-extended to the width.
func BVConst(nbits uint32, val int64) (Term, error) {
	return termResult(C.yg_bvconst_int64(C.uint32_t(nbits), C.int64_t(val)))
}

// BVZero creates the nbits-wide constant 0b00...0.
func BVZero(nbits uint32) (Term, error) {
	return termResult(C.yg_bvconst_zero(C.uint32_t(nbits)))
}

// BVOne creates the nbits-wide constant 0b00...1.
func BVOne(nbits uint32) (Term, error) {
	return termResult(C.yg_bvconst_one(C.uint32_t(nbits)))
}

// BVMinusOne creates the nbits-wide constant 0b11...1.
func BVMinusOne(nbits uint32) (Term, error) {
	return termResult(C.yg_bvconst_minus_one(C.uint32_t(nbits)))
}

// BVConstFromBools creates a constant from individual bits, bits[0] being
// the least significant.
func BVConstFromBools(bits []bool) (Term, error) {
	a := bitsFromBools(bits)
	var p *C.int32_t
	if len(a) > 0 {
		p = &a[0]
	}
	return termResult(C.yg_bvconst_from_array(C.uint32_t(len(a)), p))
}

// ParseBVBin parses a binary string such as "0110" into a constant of the
// same width.
func ParseBVBin(s string) (Term, error) {
	cs := cstring(s)
	defer freeCString(cs)
	return termResult(C.yg_parse_bvbin(cs))
}

// ParseBVHex parses a hexadecimal string into a constant of four bits per
// digit.
func ParseBVHex(s string) (Term, error) {
	cs := cstring(s)
	defer freeCString(cs)
	return termResult(C.yg_parse_bvhex(cs))
}

// BVAdd builds (bv-add left right).
func BVAdd(left, right Term) (Term, error) {
	return termResult(C.yg_bvadd(C.term_t(left), C.term_t(right)))
}

// BVSub builds (bv-sub left right).
func BVSub(left, right Term) (Term, error) {
	return termResult(C.yg_bvsub(C.term_t(left), C.term_t(right)))
}

// BVNeg builds the two's-complement negation of arg.
func BVNeg(arg Term) (Term, error) {
	return termResult(C.yg_bvneg(C.term_t(arg)))
}

// BVMul builds (bv-mul left right).
func BVMul(left, right Term) (Term, error) {
	return termResult(C.yg_bvmul(C.term_t(left), C.term_t(right)))
}

// BVSquare builds (bv-mul arg arg).
func BVSquare(arg Term) (Term, error) {
	return termResult(C.yg_bvsquare(C.term_t(arg)))
}

// BVPower builds arg raised to the constant power d.
func BVPower(arg Term, d uint32) (Term, error) {
	return termResult(C.yg_bvpower(C.term_t(arg), C.uint32_t(d)))
}

// BVSum builds the n-ary sum of args, which must all share a width.
func BVSum(args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_bvsum(C.uint32_t(len(a)), termPtr(a)))
}

// BVProduct builds the n-ary product of args.
func BVProduct(args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_bvproduct(C.uint32_t(len(a)), termPtr(a)))
}

// BVDiv builds the unsigned quotient (bv-div left right).
func BVDiv(left, right Term) (Term, error) {
	return termResult(C.yg_bvdiv(C.term_t(left), C.term_t(right)))
}

// BVRem builds the unsigned remainder (bv-rem left right).
func BVRem(left, right Term) (Term, error) {
	return termResult(C.yg_bvrem(C.term_t(left), C.term_t(right)))
}

// BVSDiv builds the signed quotient (bv-sdiv left right).
func BVSDiv(left, right Term) (Term, error) {
	return termResult(C.yg_bvsdiv(C.term_t(left), C.term_t(right)))
}

// BVSRem builds the signed remainder (bv-srem left right).
func BVSRem(left, right Term) (Term, error) {
	return termResult(C.yg_bvsrem(C.term_t(left), C.term_t(right)))
}

// BVSMod builds the signed modulo (bv-smod left right).
func BVSMod(left, right Term) (Term, error) {
	return termResult(C.yg_bvsmod(C.term_t(left), C.term_t(right)))
}

// BVNot builds the bitwise complement of arg.
func BVNot(arg Term) (Term, error) {
	return termResult(C.yg_bvnot(C.term_t(arg)))
}

// BVAnd builds the n-ary bitwise and of args.
func BVAnd(args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_bvand(C.uint32_t(len(a)), termPtr(a)))
}

// BVOr builds the n-ary bitwise or of args.
func BVOr(args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_bvor(C.uint32_t(len(a)), termPtr(a)))
}

// BVXor builds the n-ary bitwise exclusive or of args.
func BVXor(args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_bvxor(C.uint32_t(len(a)), termPtr(a)))
}

// BVNand builds (bv-not (bv-and left right)).
func BVNand(left, right Term) (Term, error) {
	return termResult(C.yg_bvnand(C.term_t(left), C.term_t(right)))
}

// BVNor builds (bv-not (bv-or left right)).
func BVNor(left, right Term) (Term, error) {
	return termResult(C.yg_bvnor(C.term_t(left), C.term_t(right)))
}

// BVXnor builds (bv-not (bv-xor left right)).
func BVXnor(left, right Term) (Term, error) {
	return termResult(C.yg_bvxnor(C.term_t(left), C.term_t(right)))
}

// BVShl shifts left by a bit-vector amount.
func BVShl(left, right Term) (Term, error) {
	return termResult(C.yg_bvshl(C.term_t(left), C.term_t(right)))
}

// BVLshr shifts right by a bit-vector amount, filling with zeros.
func BVLshr(left, right Term) (Term, error) {
	return termResult(C.yg_bvlshr(C.term_t(left), C.term_t(right)))
}

// BVAshr shifts right by a bit-vector amount, replicating the sign bit.
func BVAshr(left, right Term) (Term, error) {
	return termResult(C.yg_bvashr(C.term_t(left), C.term_t(right)))
}

// ShiftLeft0 shifts left by constant n, filling with zeros.
func ShiftLeft0(arg Term, n uint32) (Term, error) {
	return termResult(C.yg_shift_left0(C.term_t(arg), C.uint32_t(n)))
}

// ShiftLeft1 shifts left by constant n, filling with ones.
func ShiftLeft1(arg Term, n uint32) (Term, error) {
	return termResult(C.yg_shift_left1(C.term_t(arg), C.uint32_t(n)))
}

// ShiftRight0 shifts right by constant n, filling with zeros.
func ShiftRight0(arg Term, n uint32) (Term, error) {
	return termResult(C.yg_shift_right0(C.term_t(arg), C.uint32_t(n)))
}

// ShiftRight1 shifts right by constant n, filling with ones.
func ShiftRight1(arg Term, n uint32) (Term, error) {
	return termResult(C.yg_shift_right1(C.term_t(arg), C.uint32_t(n)))
}

// AShiftRight shifts right by constant n, replicating the sign bit.
func AShiftRight(arg Term, n uint32) (Term, error) {
	return termResult(C.yg_ashift_right(C.term_t(arg), C.uint32_t(n)))
}

// RotateLeft rotates left by constant n.
func RotateLeft(arg Term, n uint32) (Term, error) {
	return termResult(C.yg_rotate_left(C.term_t(arg), C.uint32_t(n)))
}

// RotateRight rotates right by constant n.
func RotateRight(arg Term, n uint32) (Term, error) {
	return termResult(C.yg_rotate_right(C.term_t(arg), C.uint32_t(n)))
}

// BVExtract extracts bits low..high of arg.
func BVExtract(arg Term, low, high uint32) (Term, error) {
	return termResult(C.yg_bvextract(C.term_t(arg), C.uint32_t(low), C.uint32_t(high)))
}

// BVConcat concatenates args, the first argument providing the high-order
// bits.
func BVConcat(args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_bvconcat(C.uint32_t(len(a)), termPtr(a)))
}

// BVRepeat concatenates n copies of arg.
func BVRepeat(arg Term, n uint32) (Term, error) {
	return termResult(C.yg_bvrepeat(C.term_t(arg), C.uint32_t(n)))
}

// SignExtend widens arg by n sign bits.
func SignExtend(arg Term, n uint32) (Term, error) {
	return termResult(C.yg_sign_extend(C.term_t(arg), C.uint32_t(n)))
}

// ZeroExtend widens arg by n zero bits.
func ZeroExtend(arg Term, n uint32) (Term, error) {
	return termResult(C.yg_zero_extend(C.term_t(arg), C.uint32_t(n)))
}

// RedAnd reduces arg to one bit: 1 iff all bits are 1.
func RedAnd(arg Term) (Term, error) {
	return termResult(C.yg_redand(C.term_t(arg)))
}

// RedOr reduces arg to one bit: 1 iff some bit is 1.
func RedOr(arg Term) (Term, error) {
	return termResult(C.yg_redor(C.term_t(arg)))
}

// RedComp builds the one-bit equality comparator of left and right.
func RedComp(left, right Term) (Term, error) {
	return termResult(C.yg_redcomp(C.term_t(left), C.term_t(right)))
}

// BVArray packs boolean terms into a bit-vector, args[0] being the least
// significant bit.
func BVArray(args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_bvarray(C.uint32_t(len(a)), termPtr(a)))
}

// BitExtract extracts bit index of arg as a boolean term.
func BitExtract(arg Term, index uint32) (Term, error) {
	return termResult(C.yg_bitextract(C.term_t(arg), C.uint32_t(index)))
}

// Bit-vector atoms.

// BVEq builds (= left right).
func BVEq(left, right Term) (Term, error) {
	return termResult(C.yg_bveq_atom(C.term_t(left), C.term_t(right)))
}

// BVNeq builds (/= left right).
func BVNeq(left, right Term) (Term, error) {
	return termResult(C.yg_bvneq_atom(C.term_t(left), C.term_t(right)))
}

// BVGe builds the unsigned comparison left >= right.
func BVGe(left, right Term) (Term, error) {
	return termResult(C.yg_bvge_atom(C.term_t(left), C.term_t(right)))
}

// BVGt builds the unsigned comparison left > right.
func BVGt(left, right Term) (Term, error) {
	return termResult(C.yg_bvgt_atom(C.term_t(left), C.term_t(right)))
}

// BVLe builds the unsigned comparison left <= right.
func BVLe(left, right Term) (Term, error) {
	return termResult(C.yg_bvle_atom(C.term_t(left), C.term_t(right)))
}

// BVLt builds the unsigned comparison left < right.
func BVLt(left, right Term) (Term, error) {
	return termResult(C.yg_bvlt_atom(C.term_t(left), C.term_t(right)))
}

// BVSGe builds the signed comparison left >= right.
func BVSGe(left, right Term) (Term, error) {
	return termResult(C.yg_bvsge_atom(C.term_t(left), C.term_t(right)))
}

// BVSGt builds the signed comparison left > right.
func BVSGt(left, right Term) (Term, error) {
	return termResult(C.yg_bvsgt_atom(C.term_t(left), C.term_t(right)))
}

// BVSLe builds the signed comparison left <= right.
func BVSLe(left, right Term) (Term, error) {
	return termResult(C.yg_bvsle_atom(C.term_t(left), C.term_t(right)))
}

// BVSLt builds the signed comparison left < right.
func BVSLt(left, right Term) (Term, error) {
	return termResult(C.yg_bvslt_atom(C.term_t(left), C.term_t(right)))
}
