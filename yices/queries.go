//go:build cgo
// +build cgo

package yices

/*
#include <stdlib.h>
#include "shim.h"
*/
import "C"

import "math/big"

// TypeOfTerm returns the type of t.
func TypeOfTerm(t Term) (Type, error) {
	r := C.yices_type_of_term(C.term_t(t))
	if r < 0 {
		return NullType, lastError()
	}
	return Type(r), nil
}

// TermBitsize returns the width of a bit-vector term, 0 on error.
func TermBitsize(t Term) uint32 {
	return uint32(C.yices_term_bitsize(C.term_t(t)))
}

// Term predicates. On an invalid handle Yices reports false and sets the
// error side channel.

func TermIsBool(t Term) bool {
	return C.yices_term_is_bool(C.term_t(t)) != 0
}

func TermIsInt(t Term) bool {
	return C.yices_term_is_int(C.term_t(t)) != 0
}

func TermIsReal(t Term) bool {
	return C.yices_term_is_real(C.term_t(t)) != 0
}

func TermIsArithmetic(t Term) bool {
	return C.yices_term_is_arithmetic(C.term_t(t)) != 0
}

func TermIsBitvector(t Term) bool {
	return C.yices_term_is_bitvector(C.term_t(t)) != 0
}

func TermIsTuple(t Term) bool {
	return C.yices_term_is_tuple(C.term_t(t)) != 0
}

func TermIsFunction(t Term) bool {
	return C.yices_term_is_function(C.term_t(t)) != 0
}

func TermIsScalar(t Term) bool {
	return C.yices_term_is_scalar(C.term_t(t)) != 0
}

func TermIsGround(t Term) bool {
	return C.yices_term_is_ground(C.term_t(t)) != 0
}

func TermIsAtomic(t Term) bool {
	return C.yices_term_is_atomic(C.term_t(t)) != 0
}

func TermIsComposite(t Term) bool {
	return C.yices_term_is_composite(C.term_t(t)) != 0
}

func TermIsProjection(t Term) bool {
	return C.yices_term_is_projection(C.term_t(t)) != 0
}

func TermIsSum(t Term) bool {
	return C.yices_term_is_sum(C.term_t(t)) != 0
}

func TermIsBVSum(t Term) bool {
	return C.yices_term_is_bvsum(C.term_t(t)) != 0
}

func TermIsProduct(t Term) bool {
	return C.yices_term_is_product(C.term_t(t)) != 0
}

// TermConstructor returns the Yices constructor tag of t (negative on
// error).
func TermConstructor(t Term) int32 {
	return int32(C.yices_term_constructor(C.term_t(t)))
}

// TermNumChildren returns the number of children of a composite term (-1 on
// error).
func TermNumChildren(t Term) int32 {
	return int32(C.yices_term_num_children(C.term_t(t)))
}

// TermChild returns the i-th child of a composite term.
func TermChild(t Term, i int32) (Term, error) {
	r := C.yices_term_child(C.term_t(t), C.int32_t(i))
	if r < 0 {
		return NullTerm, lastError()
	}
	return Term(r), nil
}

// ProjIndex returns the index of a projection term (-1 on error).
func ProjIndex(t Term) int32 {
	return int32(C.yices_proj_index(C.term_t(t)))
}

// ProjArg returns the argument of a projection term.
func ProjArg(t Term) (Term, error) {
	r := C.yices_proj_arg(C.term_t(t))
	if r < 0 {
		return NullTerm, lastError()
	}
	return Term(r), nil
}

// BoolConstValue returns the value of a boolean constant term.
func BoolConstValue(t Term) (bool, error) {
	var v C.int32_t
	if C.yices_bool_const_value(C.term_t(t), &v) < 0 {
		return false, lastError()
	}
	return v != 0, nil
}

// ScalarConstantIndex returns the index of a scalar constant term within
// its type.
func ScalarConstantIndex(t Term) (int32, error) {
	var v C.int32_t
	if C.yices_scalar_const_value(C.term_t(t), &v) < 0 {
		return -1, lastError()
	}
	return int32(v), nil
}

// BVConstValue returns the bits of a bit-vector constant term, bit 0 first.
// Widths up to inlineBits stay on a fixed scratch array.
func BVConstValue(t Term) ([]bool, error) {
	n := TermBitsize(t)
	if n == 0 {
		return nil, lastError()
	}
	var scratch [inlineBits]C.int32_t
	var bits []C.int32_t
	if n <= inlineBits {
		bits = scratch[:n]
	} else {
		bits = make([]C.int32_t, n)
	}
	if C.yg_bv_const_value(C.term_t(t), &bits[0]) < 0 {
		return nil, lastError()
	}
	return boolsFromBits(bits), nil
}

// RationalConstNumAsBytes exports the numerator of a rational constant term
// in the two's-complement byte encoding.
func RationalConstNumAsBytes(t Term) ([]byte, error) {
	return fetchBytes(func(buf *C.uint8_t, cap C.uint32_t) C.int {
		return C.yg_term_rat_num_bytes(C.term_t(t), buf, cap)
	})
}

// RationalConstDenAsBytes exports the denominator of a rational constant
// term. Yices keeps rationals canonical, so the denominator is positive.
func RationalConstDenAsBytes(t Term) ([]byte, error) {
	return fetchBytes(func(buf *C.uint8_t, cap C.uint32_t) C.int {
		return C.yg_term_rat_den_bytes(C.term_t(t), buf, cap)
	})
}

// BigRatConstValue decodes a rational constant term into a big.Rat.
func BigRatConstValue(t Term) (*big.Rat, error) {
	num, err := RationalConstNumAsBytes(t)
	if err != nil {
		return nil, err
	}
	den, err := RationalConstDenAsBytes(t)
	if err != nil {
		return nil, err
	}
	return DecodeBigRat(num, den)
}
