//go:build cgo
// +build cgo

package yices

import "testing"

func TestTypeConstructors(t *testing.T) {
	bv8, err := BVType(8)
	if err != nil {
		t.Fatalf("bv type: %v", err)
	}
	if !TypeIsBitvector(bv8) || BVTypeSize(bv8) != 8 {
		t.Fatalf("bad bit-vector type")
	}
	if _, err := BVType(0); err == nil {
		t.Fatalf("expected error for width 0")
	}

	sc, err := NewScalarType(3)
	if err != nil {
		t.Fatalf("scalar type: %v", err)
	}
	if !TypeIsScalar(sc) || ScalarTypeCard(sc) != 3 {
		t.Fatalf("bad scalar type")
	}

	tup, err := TupleType(IntType(), RealType(), BoolType())
	if err != nil {
		t.Fatalf("tuple type: %v", err)
	}
	if !TypeIsTuple(tup) || TypeNumChildren(tup) != 3 {
		t.Fatalf("bad tuple type")
	}
	kids, err := TypeChildren(tup)
	if err != nil {
		t.Fatalf("type children: %v", err)
	}
	if len(kids) != 3 || kids[0] != IntType() || kids[1] != RealType() || kids[2] != BoolType() {
		t.Fatalf("wrong children %v", kids)
	}

	fun, err := FunctionType([]Type{IntType()}, BoolType())
	if err != nil {
		t.Fatalf("function type: %v", err)
	}
	if !TypeIsFunction(fun) {
		t.Fatalf("bad function type")
	}
}

func TestSubtyping(t *testing.T) {
	if !TypeIsArithmetic(IntType()) || !TypeIsArithmetic(RealType()) {
		t.Fatalf("arithmetic predicate failed")
	}
	if !IsSubtype(IntType(), RealType()) {
		t.Fatalf("int should be a subtype of real")
	}
	if IsSubtype(RealType(), IntType()) {
		t.Fatalf("real is not a subtype of int")
	}
	if !AreCompatible(IntType(), RealType()) {
		t.Fatalf("int and real should be compatible")
	}
	if AreCompatible(BoolType(), IntType()) {
		t.Fatalf("bool and int should not be compatible")
	}
}

func TestTypeNames(t *testing.T) {
	tau, err := NewUninterpretedType()
	if err != nil {
		t.Fatalf("new type: %v", err)
	}
	if err := SetTypeName(tau, "widget"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if TypeName(tau) != "widget" {
		t.Fatalf("name not set")
	}
	got, err := TypeByName("widget")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != tau {
		t.Fatalf("lookup returned %v, want %v", got, tau)
	}
	parsed, err := ParseType("widget")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed != tau {
		t.Fatalf("parse returned %v, want %v", parsed, tau)
	}
	RemoveTypeName("widget")
	if _, err := TypeByName("widget"); err == nil {
		t.Fatalf("name still resolvable after removal")
	}
}

func TestTypeToString(t *testing.T) {
	s, err := TypeToString(IntType())
	if err != nil {
		t.Fatalf("to string: %v", err)
	}
	if s != "int" {
		t.Fatalf("got %q, want int", s)
	}
	if _, err := TypeToString(NullType); err == nil {
		t.Fatalf("expected error for invalid type")
	}
}
