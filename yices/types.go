//go:build cgo
// +build cgo

package yices

/*
#include <stdlib.h>
#include "shim.h"
*/
import "C"

// Predefined types. These cannot allocate and cannot fail.

// BoolType returns the boolean type.
func BoolType() Type {
	return Type(C.yices_bool_type())
}

// IntType returns the integer type.
func IntType() Type {
	return Type(C.yices_int_type())
}

// RealType returns the real type.
func RealType() Type {
	return Type(C.yices_real_type())
}

// BVType returns the bit-vector type of the given width. Yices reports an
// error for width 0.
func BVType(nbits uint32) (Type, error) {
	return typeResult(C.yg_bv_type(C.uint32_t(nbits)))
}

// NewScalarType creates a new scalar type with the given cardinality, which
// must be positive.
func NewScalarType(card uint32) (Type, error) {
	return typeResult(C.yg_new_scalar_type(C.uint32_t(card)))
}

// NewUninterpretedType creates a new uninterpreted type.
func NewUninterpretedType() (Type, error) {
	return typeResult(C.yg_new_uninterpreted_type())
}

// TupleType creates the tuple type over the component types.
func TupleType(components ...Type) (Type, error) {
	var buf [smallArity]C.type_t
	a := typeScratch(components, &buf)
	return typeResult(C.yg_tuple_type(C.uint32_t(len(a)), typePtr(a)))
}

// FunctionType creates the function type with the given domain and range.
func FunctionType(domain []Type, rng Type) (Type, error) {
	var buf [smallArity]C.type_t
	a := typeScratch(domain, &buf)
	return typeResult(C.yg_function_type(C.uint32_t(len(a)), typePtr(a), C.type_t(rng)))
}

// ParseType parses a type expression in the Yices syntax.
func ParseType(s string) (Type, error) {
	cs := cstring(s)
	defer freeCString(cs)
	return typeResult(C.yg_parse_type(cs))
}

// Type predicates. On an invalid handle Yices reports false and sets the
// error side channel.

func TypeIsBool(tau Type) bool {
	return C.yices_type_is_bool(C.type_t(tau)) != 0
}

func TypeIsInt(tau Type) bool {
	return C.yices_type_is_int(C.type_t(tau)) != 0
}

func TypeIsReal(tau Type) bool {
	return C.yices_type_is_real(C.type_t(tau)) != 0
}

func TypeIsArithmetic(tau Type) bool {
	return C.yices_type_is_arithmetic(C.type_t(tau)) != 0
}

func TypeIsBitvector(tau Type) bool {
	return C.yices_type_is_bitvector(C.type_t(tau)) != 0
}

func TypeIsScalar(tau Type) bool {
	return C.yices_type_is_scalar(C.type_t(tau)) != 0
}

func TypeIsUninterpreted(tau Type) bool {
	return C.yices_type_is_uninterpreted(C.type_t(tau)) != 0
}

func TypeIsTuple(tau Type) bool {
	return C.yices_type_is_tuple(C.type_t(tau)) != 0
}

func TypeIsFunction(tau Type) bool {
	return C.yices_type_is_function(C.type_t(tau)) != 0
}

// IsSubtype reports whether tau is a subtype of sigma. The subtype check
// walks the type table and may allocate.
func IsSubtype(tau, sigma Type) bool {
	ok := C.yg_test_subtype(C.type_t(tau), C.type_t(sigma)) != 0
	if takeOOM() {
		return false
	}
	return ok
}

// AreCompatible reports whether tau and sigma have a common supertype.
func AreCompatible(tau, sigma Type) bool {
	ok := C.yg_compatible_types(C.type_t(tau), C.type_t(sigma)) != 0
	if takeOOM() {
		return false
	}
	return ok
}

// BVTypeSize returns the width of a bit-vector type, 0 on error.
func BVTypeSize(tau Type) uint32 {
	return uint32(C.yices_bvtype_size(C.type_t(tau)))
}

// ScalarTypeCard returns the cardinality of a scalar type, 0 on error.
func ScalarTypeCard(tau Type) uint32 {
	return uint32(C.yices_scalar_type_card(C.type_t(tau)))
}

// TypeNumChildren returns the number of children of tau (-1 on error).
func TypeNumChildren(tau Type) int32 {
	return int32(C.yices_type_num_children(C.type_t(tau)))
}

// TypeChild returns the i-th child of tau.
func TypeChild(tau Type, i int32) Type {
	return Type(C.yices_type_child(C.type_t(tau), C.int32_t(i)))
}

// TypeChildren collects all children of tau.
func TypeChildren(tau Type) ([]Type, error) {
	n := TypeNumChildren(tau)
	if n < 0 {
		return nil, lastError()
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]C.type_t, n)
	rc := C.yg_type_children(C.type_t(tau), &out[0], C.uint32_t(n))
	if takeOOM() {
		return nil, ErrOutOfMemory
	}
	if rc < 0 {
		return nil, lastError()
	}
	kids := make([]Type, rc)
	for i := range kids {
		kids[i] = Type(out[i])
	}
	return kids, nil
}

// Type name table. Names forward to the Yices symbol table; the binding
// keeps no copy.

// SetTypeName gives tau a name in the Yices symbol table.
func SetTypeName(tau Type, name string) error {
	cs := cstring(name)
	defer freeCString(cs)
	return codeResult(C.yg_set_type_name(C.type_t(tau), cs))
}

// TypeName returns the base name of tau, or "" if tau has none.
func TypeName(tau Type) string {
	// the returned string is owned by the symbol table; do not free it
	return C.GoString(C.yices_get_type_name(C.type_t(tau)))
}

// TypeByName looks a type up by name.
func TypeByName(name string) (Type, error) {
	cs := cstring(name)
	defer freeCString(cs)
	return typeResult(C.yg_get_type_by_name(cs))
}

// RemoveTypeName removes the mapping for name, keeping the type alive.
func RemoveTypeName(name string) {
	cs := cstring(name)
	defer freeCString(cs)
	C.yices_remove_type_name(cs)
}

// ClearTypeName removes the base name of tau.
func ClearTypeName(tau Type) int32 {
	return int32(C.yices_clear_type_name(C.type_t(tau)))
}

// TypeToString pretty-prints tau into an 80-column, 4-line area.
func TypeToString(tau Type) (string, error) {
	return stringResult(C.yg_type_to_string(C.type_t(tau), 80, 4, 0))
}
