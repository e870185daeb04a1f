//go:build cgo
// +build cgo

package yices

/*
#include <stdlib.h>
#include "shim.h"
*/
import "C"

// True returns the true constant. Cannot allocate.
func True() Term {
	return Term(C.yices_true())
}

// False returns the false constant. Cannot allocate.
func False() Term {
	return Term(C.yices_false())
}

// Constant returns the index-th constant of a scalar or uninterpreted type.
func Constant(tau Type, index int32) (Term, error) {
	return termResult(C.yg_constant(C.type_t(tau), C.int32_t(index)))
}

// NewUninterpretedTerm creates a fresh uninterpreted term of type tau.
func NewUninterpretedTerm(tau Type) (Term, error) {
	return termResult(C.yg_new_uninterpreted_term(C.type_t(tau)))
}

// NewVariable creates a fresh variable of type tau, for use in quantifiers
// and lambdas.
func NewVariable(tau Type) (Term, error) {
	return termResult(C.yg_new_variable(C.type_t(tau)))
}

// Application applies function fun to the arguments.
func Application(fun Term, args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_application(C.term_t(fun), C.uint32_t(len(a)), termPtr(a)))
}

// Ite builds (ite cond iftrue iffalse).
func Ite(cond, iftrue, iffalse Term) (Term, error) {
	return termResult(C.yg_ite(C.term_t(cond), C.term_t(iftrue), C.term_t(iffalse)))
}

// Eq builds the equality (= left right).
func Eq(left, right Term) (Term, error) {
	return termResult(C.yg_eq(C.term_t(left), C.term_t(right)))
}

// Neq builds the disequality (/= left right).
func Neq(left, right Term) (Term, error) {
	return termResult(C.yg_neq(C.term_t(left), C.term_t(right)))
}

// Not negates arg. Cannot allocate.
func Not(arg Term) Term {
	return Term(C.yices_not(C.term_t(arg)))
}

// And builds the conjunction of args. Yices may reorder its input array, so
// the arguments are copied first; the caller's slice is never mutated.
func And(args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_and(C.uint32_t(len(a)), termPtr(a)))
}

// Or builds the disjunction of args.
func Or(args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_or(C.uint32_t(len(a)), termPtr(a)))
}

// Xor builds the exclusive or of args.
func Xor(args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_xor(C.uint32_t(len(a)), termPtr(a)))
}

// Iff builds (<=> left right).
func Iff(left, right Term) (Term, error) {
	return termResult(C.yg_iff(C.term_t(left), C.term_t(right)))
}

// Implies builds (=> left right).
func Implies(left, right Term) (Term, error) {
	return termResult(C.yg_implies(C.term_t(left), C.term_t(right)))
}

// Tuple builds the tuple of args.
func Tuple(args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_tuple(C.uint32_t(len(a)), termPtr(a)))
}

// Select extracts component index of a tuple (indices start at 1).
func Select(index uint32, tuple Term) (Term, error) {
	return termResult(C.yg_select(C.uint32_t(index), C.term_t(tuple)))
}

// TupleUpdate replaces component index of tuple with value.
func TupleUpdate(tuple Term, index uint32, value Term) (Term, error) {
	return termResult(C.yg_tuple_update(C.term_t(tuple), C.uint32_t(index), C.term_t(value)))
}

// Update builds the function update (update fun args value).
func Update(fun Term, args []Term, value Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_update(C.term_t(fun), C.uint32_t(len(a)), termPtr(a), C.term_t(value)))
}

// Update1 is the common unary case of Update (array store).
func Update1(fun, arg, value Term) (Term, error) {
	return termResult(C.yg_update1(C.term_t(fun), C.term_t(arg), C.term_t(value)))
}

// Distinct asserts that all args take pairwise different values. Yices may
// sort its input array; the copy keeps the caller's slice intact.
func Distinct(args ...Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(args, &buf)
	return termResult(C.yg_distinct(C.uint32_t(len(a)), termPtr(a)))
}

// Forall quantifies body universally over vars (created via NewVariable).
func Forall(vars []Term, body Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(vars, &buf)
	return termResult(C.yg_forall(C.uint32_t(len(a)), termPtr(a), C.term_t(body)))
}

// Exists quantifies body existentially over vars.
func Exists(vars []Term, body Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(vars, &buf)
	return termResult(C.yg_exists(C.uint32_t(len(a)), termPtr(a), C.term_t(body)))
}

// Lambda builds the lambda term binding vars in body.
func Lambda(vars []Term, body Term) (Term, error) {
	var buf [smallArity]C.term_t
	a := termScratch(vars, &buf)
	return termResult(C.yg_lambda(C.uint32_t(len(a)), termPtr(a), C.term_t(body)))
}

// SubstTerm applies the substitution vars[i] -> vals[i] to t.
func SubstTerm(vars, vals []Term, t Term) (Term, error) {
	if len(vars) != len(vals) {
		// fail before touching native memory
		return NullTerm, &Error{Code: -1, Message: "variable and value arrays differ in length"}
	}
	var vbuf, mbuf [smallArity]C.term_t
	v := termScratch(vars, &vbuf)
	m := termScratch(vals, &mbuf)
	return termResult(C.yg_subst_term(C.uint32_t(len(v)), termPtr(v), termPtr(m), C.term_t(t)))
}

// SubstTermArray applies the substitution vars[i] -> vals[i] to every
// element of terms, in place.
func SubstTermArray(vars, vals []Term, terms []Term) error {
	if len(vars) != len(vals) {
		return &Error{Code: -1, Message: "variable and value arrays differ in length"}
	}
	var vbuf, mbuf, tbuf [smallArity]C.term_t
	v := termScratch(vars, &vbuf)
	m := termScratch(vals, &mbuf)
	a := termScratch(terms, &tbuf)
	rc := C.yg_subst_term_array(C.uint32_t(len(v)), termPtr(v), termPtr(m), C.uint32_t(len(a)), termPtr(a))
	if err := codeResult(rc); err != nil {
		return err
	}
	// copy the rewritten terms back only on success
	for i := range terms {
		terms[i] = Term(a[i])
	}
	return nil
}

// ParseTerm parses a term expression in the Yices syntax.
func ParseTerm(s string) (Term, error) {
	cs := cstring(s)
	defer freeCString(cs)
	return termResult(C.yg_parse_term(cs))
}

// Term name table.

// SetTermName gives t a name in the Yices symbol table.
func SetTermName(t Term, name string) error {
	cs := cstring(name)
	defer freeCString(cs)
	return codeResult(C.yg_set_term_name(C.term_t(t), cs))
}

// TermName returns the base name of t, or "" if t has none.
func TermName(t Term) string {
	return C.GoString(C.yices_get_term_name(C.term_t(t)))
}

// TermByName looks a term up by name.
func TermByName(name string) (Term, error) {
	cs := cstring(name)
	defer freeCString(cs)
	return termResult(C.yg_get_term_by_name(cs))
}

// RemoveTermName removes the mapping for name, keeping the term alive.
func RemoveTermName(name string) {
	cs := cstring(name)
	defer freeCString(cs)
	C.yices_remove_term_name(cs)
}

// ClearTermName removes the base name of t.
func ClearTermName(t Term) int32 {
	return int32(C.yices_clear_term_name(C.term_t(t)))
}

// TermToString pretty-prints t into an 80-column, 4-line area.
func TermToString(t Term) (string, error) {
	return stringResult(C.yg_term_to_string(C.term_t(t), 80, 4, 0))
}
