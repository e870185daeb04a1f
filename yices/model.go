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
	"runtime"
)

// Model is a satisfying assignment produced by a context, or built
// explicitly from a variable map.
type Model struct {
	c *C.model_t
}

// Model returns the model of the last successful Check. When keepSubst is
// true the model keeps the substitutions computed by preprocessing, which
// gives values to more eliminated variables.
func (ctx *Context) Model(keepSubst bool) (*Model, error) {
	keep := C.int32_t(0)
	if keepSubst {
		keep = 1
	}
	p := C.yg_get_model(ctx.c, keep)
	if takeOOM() {
		return nil, ErrOutOfMemory
	}
	if p == nil {
		return nil, lastError()
	}
	return newModel(p), nil
}

// ModelFromMap builds a model mapping vars[i] to the constant terms
// vals[i].
func ModelFromMap(vars, vals []Term) (*Model, error) {
	if len(vars) != len(vals) {
		return nil, &Error{Code: -1, Message: "variable and value arrays differ in length"}
	}
	var vbuf, mbuf [smallArity]C.term_t
	v := termScratch(vars, &vbuf)
	m := termScratch(vals, &mbuf)
	p := C.yg_model_from_map(C.uint32_t(len(v)), termPtr(v), termPtr(m))
	if takeOOM() {
		return nil, ErrOutOfMemory
	}
	if p == nil {
		return nil, lastError()
	}
	return newModel(p), nil
}

func newModel(p *C.model_t) *Model {
	mdl := &Model{c: p}
	runtime.SetFinalizer(mdl, func(mdl *Model) { mdl.Close() })
	return mdl
}

// Close releases the model.
func (mdl *Model) Close() {
	if mdl.c != nil {
		C.yices_free_model(mdl.c)
		mdl.c = nil
		runtime.SetFinalizer(mdl, nil)
	}
}

// BoolValue returns the value of a boolean term in the model.
func (mdl *Model) BoolValue(t Term) (bool, error) {
	var v C.int32_t
	if err := codeResult(C.yg_get_bool_value(mdl.c, C.term_t(t), &v)); err != nil {
		return false, err
	}
	return v != 0, nil
}

// Int64Value returns the value of an integer term that fits in 64 bits.
// BigIntValue handles the general case.
func (mdl *Model) Int64Value(t Term) (int64, error) {
	var v C.int64_t
	if err := codeResult(C.yg_get_int64_value(mdl.c, C.term_t(t), &v)); err != nil {
		return 0, err
	}
	return int64(v), nil
}

// Rational64Value returns the value of an arithmetic term as a 64-bit
// numerator and denominator pair. BigRatValue handles the general case.
func (mdl *Model) Rational64Value(t Term) (int64, uint64, error) {
	var num C.int64_t
	var den C.uint64_t
	if err := codeResult(C.yg_get_rational64_value(mdl.c, C.term_t(t), &num, &den)); err != nil {
		return 0, 0, err
	}
	return int64(num), uint64(den), nil
}

// DoubleValue returns the value of an arithmetic term converted to the
// nearest double.
func (mdl *Model) DoubleValue(t Term) (float64, error) {
	var v C.double
	if err := codeResult(C.yg_get_double_value(mdl.c, C.term_t(t), &v)); err != nil {
		return 0, err
	}
	return float64(v), nil
}

// ScalarValue returns the constant index a scalar or uninterpreted term
// takes in the model.
func (mdl *Model) ScalarValue(t Term) (int32, error) {
	var v C.int32_t
	if err := codeResult(C.yg_get_scalar_value(mdl.c, C.term_t(t), &v)); err != nil {
		return -1, err
	}
	return int32(v), nil
}

// BVValue returns the bits of a bit-vector term in the model, bit 0 first.
func (mdl *Model) BVValue(t Term) ([]bool, error) {
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
	if err := codeResult(C.yg_get_bv_value(mdl.c, C.term_t(t), &bits[0])); err != nil {
		return nil, err
	}
	return boolsFromBits(bits), nil
}

// IntValueAsBytes exports the value of an integer term in the
// two's-complement byte encoding.
func (mdl *Model) IntValueAsBytes(t Term) ([]byte, error) {
	return fetchBytes(func(buf *C.uint8_t, cap C.uint32_t) C.int {
		return C.yg_model_int_bytes(mdl.c, C.term_t(t), buf, cap)
	})
}

// RationalValueNumAsBytes exports the numerator of an arithmetic term's
// value in the two's-complement byte encoding.
func (mdl *Model) RationalValueNumAsBytes(t Term) ([]byte, error) {
	return fetchBytes(func(buf *C.uint8_t, cap C.uint32_t) C.int {
		return C.yg_model_rat_num_bytes(mdl.c, C.term_t(t), buf, cap)
	})
}

// RationalValueDenAsBytes exports the denominator of an arithmetic term's
// value. Model values are canonical, so the denominator is positive.
func (mdl *Model) RationalValueDenAsBytes(t Term) ([]byte, error) {
	return fetchBytes(func(buf *C.uint8_t, cap C.uint32_t) C.int {
		return C.yg_model_rat_den_bytes(mdl.c, C.term_t(t), buf, cap)
	})
}

// BigIntValue decodes the value of an integer term into a big.Int.
func (mdl *Model) BigIntValue(t Term) (*big.Int, error) {
	b, err := mdl.IntValueAsBytes(t)
	if err != nil {
		return nil, err
	}
	return DecodeBigInt(b), nil
}

// BigRatValue decodes the value of an arithmetic term into a big.Rat.
func (mdl *Model) BigRatValue(t Term) (*big.Rat, error) {
	num, err := mdl.RationalValueNumAsBytes(t)
	if err != nil {
		return nil, err
	}
	den, err := mdl.RationalValueDenAsBytes(t)
	if err != nil {
		return nil, err
	}
	return DecodeBigRat(num, den)
}

// ValueAsTerm converts the value of t in the model back into a constant
// term.
func (mdl *Model) ValueAsTerm(t Term) (Term, error) {
	return termResult(C.yg_get_value_as_term(mdl.c, C.term_t(t)))
}

// String pretty-prints the model; it returns "" if printing fails.
func (mdl *Model) String() string {
	s, err := stringResult(C.yg_model_to_string(mdl.c, 80, 100))
	if err != nil {
		return ""
	}
	return s
}
