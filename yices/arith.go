//go:build cgo
// +build cgo

package yices

/*
#include <stdlib.h>
#include "shim.h"
*/
import "C"

import (
	"math/big"
	"unsafe"
)

// Zero returns the integer constant 0. Cannot allocate.
func Zero() Term {
	return Term(C.yices_zero())
}

// IntConst creates an integer constant from a signed 64-bit value.
func IntConst(val int64) (Term, error) {
	return termResult(C.yg_int64(C.int64_t(val)))
}

// RationalConst creates the rational num/den. The denominator must be
// non-negative; negating both parts here could overflow, so a negative
// denominator is rejected outright.
func RationalConst(num int64, den int64) (Term, error) {
	if den < 0 {
		return NullTerm, &Error{Code: -1, Message: "negative denominator"}
	}
	return termResult(C.yg_rational64(C.int64_t(num), C.uint64_t(den)))
}

// BigIntConst creates an integer constant of arbitrary size. The value is
// encoded with the two's-complement codec and rebuilt as a GMP integer on
// the native side.
func BigIntConst(z *big.Int) (Term, error) {
	return IntConstFromBytes(EncodeBigInt(z))
}

// IntConstFromBytes creates an integer constant from a two's-complement
// big-endian byte sequence (see EncodeBigInt). The bytes are copied; the
// caller's slice is not mutated.
func IntConstFromBytes(b []byte) (Term, error) {
	buf := append([]byte(nil), b...)
	return termResult(C.yg_int_const_from_bytes(bytesPtr(buf), C.uint32_t(len(buf))))
}

// BigRatConst creates a rational constant of arbitrary size from a
// canonical big.Rat.
func BigRatConst(q *big.Rat) (Term, error) {
	return RationalConstFromBytes(EncodeBigInt(q.Num()), EncodeBigInt(q.Denom()))
}

// RationalConstFromBytes creates a rational constant from two
// two's-complement byte sequences. A denominator decoding to zero fails
// with ErrZeroDenominator before any native call; otherwise the fraction is
// canonicalized (lowest terms, positive denominator) before the constant is
// built.
func RationalConstFromBytes(num, den []byte) (Term, error) {
	if allZeroBytes(den) {
		return NullTerm, ErrZeroDenominator
	}
	nbuf := append([]byte(nil), num...)
	dbuf := append([]byte(nil), den...)
	return termResult(C.yg_rat_const_from_bytes(
		bytesPtr(nbuf), C.uint32_t(len(nbuf)),
		bytesPtr(dbuf), C.uint32_t(len(dbuf))))
}

func bytesPtr(b []byte) *C.uint8_t {
	if len(b) == 0 {
		return nil
	}
	return (*C.uint8_t)(unsafe.Pointer(&b[0]))
}

// ParseRational parses a rational constant written as "num/den" or "num".
func ParseRational(s string) (Term, error) {
	cs := cstring(s)
	defer freeCString(cs)
	return termResult(C.yg_parse_rational(cs))
}

// ParseFloat parses a constant in floating-point notation and converts it
// to the exact rational it denotes.
func ParseFloat(s string) (Term, error) {
	cs := cstring(s)
	defer freeCString(cs)
	return termResult(C.yg_parse_float(cs))
}

// Add builds (+ left right).
func Add(left, right Term) (Term, error) {
	return termResult(C.yg_add(C.term_t(left), C.term_t(right)))
}

// Sub builds (- left right).
func Sub(left, right Term) (Term, error) {
	return termResult(C.yg_sub(C.term_t(left), C.term_t(right)))
}

// Neg builds (- arg).
func Neg(arg Term) (Term, error) {
	return termResult(C.yg_neg(C.term_t(arg)))
}

// Mul builds (* left right).
func Mul(left, right Term) (Term, error) {
	return termResult(C.yg_mul(C.term_t(left), C.term_t(right)))
}

// Square builds (* arg arg).
func Square(arg Term) (Term, error) {
	return termResult(C.yg_square(C.term_t(arg)))
}

// Power builds arg raised to the constant power d.
func Power(arg Term, d uint32) (Term, error) {
	return termResult(C.yg_power(C.term_t(arg), C.uint32_t(d)))
}

// Sum builds the n-ary sum of args.
func Sum(args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_sum(C.uint32_t(len(a)), termPtr(a)))
}

// Product builds the n-ary product of args.
func Product(args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_product(C.uint32_t(len(a)), termPtr(a)))
}

// Division builds (/ num den).
func Division(num, den Term) (Term, error) {
	return termResult(C.yg_division(C.term_t(num), C.term_t(den)))
}

// IDiv builds the integer division (div num den).
func IDiv(num, den Term) (Term, error) {
	return termResult(C.yg_idiv(C.term_t(num), C.term_t(den)))
}

// IMod builds the integer remainder (mod num den).
func IMod(num, den Term) (Term, error) {
	return termResult(C.yg_imod(C.term_t(num), C.term_t(den)))
}

// Abs builds (abs arg).
func Abs(arg Term) (Term, error) {
	return termResult(C.yg_abs(C.term_t(arg)))
}

// Floor builds (floor arg).
func Floor(arg Term) (Term, error) {
	return termResult(C.yg_floor(C.term_t(arg)))
}

// Ceil builds (ceil arg).
func Ceil(arg Term) (Term, error) {
	return termResult(C.yg_ceil(C.term_t(arg)))
}

// Divides builds the atom (divides divisor dividend).
func Divides(divisor, dividend Term) (Term, error) {
	return termResult(C.yg_divides_atom(C.term_t(divisor), C.term_t(dividend)))
}

// IsIntAtom builds the atom (is-int arg).
func IsIntAtom(arg Term) (Term, error) {
	return termResult(C.yg_is_int_atom(C.term_t(arg)))
}

// IntPoly builds the polynomial sum coeff[i] * terms[i] with signed 64-bit
// coefficients.
func IntPoly(coeffs []int64, terms []Term) (Term, error) {
	if len(coeffs) != len(terms) {
		return NullTerm, &Error{Code: -1, Message: "coefficient and term arrays differ in length"}
	}
	var tbuf [smallArity]C.term_t
	a := termScratch(terms, &tbuf)
	c := make([]C.int64_t, len(coeffs))
	for i, v := range coeffs {
		c[i] = C.int64_t(v)
	}
	var cp *C.int64_t
	if len(c) > 0 {
		cp = &c[0]
	}
	return termResult(C.yg_poly_int64(C.uint32_t(len(a)), cp, termPtr(a)))
}

// RationalPoly builds the polynomial sum (num[i]/den[i]) * terms[i].
func RationalPoly(nums []int64, dens []uint64, terms []Term) (Term, error) {
	if len(nums) != len(terms) || len(dens) != len(terms) {
		return NullTerm, &Error{Code: -1, Message: "coefficient and term arrays differ in length"}
	}
	var tbuf [smallArity]C.term_t
	a := termScratch(terms, &tbuf)
	p := make([]C.int64_t, len(nums))
	q := make([]C.uint64_t, len(dens))
	for i := range nums {
		p[i] = C.int64_t(nums[i])
		q[i] = C.uint64_t(dens[i])
	}
	var pp *C.int64_t
	var qp *C.uint64_t
	if len(p) > 0 {
		pp = &p[0]
		qp = &q[0]
	}
	return termResult(C.yg_poly_rational64(C.uint32_t(len(a)), pp, qp, termPtr(a)))
}

// Arithmetic atoms.

// ArithEq builds (= left right) over arithmetic terms.
func ArithEq(left, right Term) (Term, error) {
	return termResult(C.yg_arith_eq_atom(C.term_t(left), C.term_t(right)))
}

// ArithNeq builds (/= left right).
func ArithNeq(left, right Term) (Term, error) {
	return termResult(C.yg_arith_neq_atom(C.term_t(left), C.term_t(right)))
}

// ArithGeq builds (>= left right).
func ArithGeq(left, right Term) (Term, error) {
	return termResult(C.yg_arith_geq_atom(C.term_t(left), C.term_t(right)))
}

// ArithLeq builds (<= left right).
func ArithLeq(left, right Term) (Term, error) {
	return termResult(C.yg_arith_leq_atom(C.term_t(left), C.term_t(right)))
}

// ArithGt builds (> left right).
func ArithGt(left, right Term) (Term, error) {
	return termResult(C.yg_arith_gt_atom(C.term_t(left), C.term_t(right)))
}

// ArithLt builds (< left right).
func ArithLt(left, right Term) (Term, error) {
	return termResult(C.yg_arith_lt_atom(C.term_t(left), C.term_t(right)))
}

// ArithEq0 builds (= arg 0).
func ArithEq0(arg Term) (Term, error) {
	return termResult(C.yg_arith_eq0_atom(C.term_t(arg)))
}

// ArithNeq0 builds (/= arg 0).
func ArithNeq0(arg Term) (Term, error) {
	return termResult(C.yg_arith_neq0_atom(C.term_t(arg)))
}

// ArithGeq0 builds (>= arg 0).
func ArithGeq0(arg Term) (Term, error) {
	return termResult(C.yg_arith_geq0_atom(C.term_t(arg)))
}

// ArithLeq0 builds (<= arg 0).
func ArithLeq0(arg Term) (Term, error) {
	return termResult(C.yg_arith_leq0_atom(C.term_t(arg)))
}

// ArithGt0 builds (> arg 0).
func ArithGt0(arg Term) (Term, error) {
	return termResult(C.yg_arith_gt0_atom(C.term_t(arg)))
}

// ArithLt0 builds (< arg 0).
func ArithLt0(arg Term) (Term, error) {
	return termResult(C.yg_arith_lt0_atom(C.term_t(arg)))
}
