//go:build cgo
// +build cgo

package yices

import "testing"

func TestBVConstants(t *testing.T) {
	five, err := BVConst(8, 5)
	if err != nil {
		t.Fatalf("const: %v", err)
	}
	bits, err := BVConstValue(five)
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	want := []bool{true, false, true, false, false, false, false, false}
	if len(bits) != len(want) {
		t.Fatalf("got %d bits, want %d", len(bits), len(want))
	}
	for i := range want {
		if bits[i] != want[i] {
			t.Fatalf("bit %d is %v", i, bits[i])
		}
	}

	// the same value built from individual bits
	viaBits, err := BVConstFromBools(want)
	if err != nil {
		t.Fatalf("from bools: %v", err)
	}
	if viaBits != five {
		t.Fatalf("same constant built two ways got distinct handles")
	}
	viaParse, err := ParseBVBin("00000101")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if viaParse != five {
		t.Fatalf("parsed constant differs")
	}

	zero, err := BVZero(8)
	if err != nil {
		t.Fatalf("zero: %v", err)
	}
	viaHex, err := ParseBVHex("00")
	if err != nil {
		t.Fatalf("parse hex: %v", err)
	}
	if viaHex != zero {
		t.Fatalf("hex zero differs")
	}

	if _, err := BVZero(0); err == nil {
		t.Fatalf("expected error for width 0")
	}
}

func TestBVConstValueWide(t *testing.T) {
	// wider than the fixed extraction buffer
	const n = inlineBits + 33
	one, err := BVOne(n)
	if err != nil {
		t.Fatalf("const: %v", err)
	}
	bits, err := BVConstValue(one)
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if len(bits) != n {
		t.Fatalf("got %d bits, want %d", len(bits), n)
	}
	if !bits[0] {
		t.Fatalf("low bit should be set")
	}
	for i := 1; i < n; i++ {
		if bits[i] {
			t.Fatalf("bit %d should be clear", i)
		}
	}
}

func TestBVOperations(t *testing.T) {
	x, err := NewUninterpretedTerm(mustBVType(t, 16))
	if err != nil {
		t.Fatalf("new term: %v", err)
	}
	y, err := NewUninterpretedTerm(mustBVType(t, 16))
	if err != nil {
		t.Fatalf("new term: %v", err)
	}

	for _, op := range []func(Term, Term) (Term, error){
		BVAdd, BVSub, BVMul, BVDiv, BVRem, BVSDiv, BVSRem, BVSMod,
		BVNand, BVNor, BVXnor, BVShl, BVLshr, BVAshr, RedComp,
		BVEq, BVNeq, BVGe, BVGt, BVLe, BVLt, BVSGe, BVSGt, BVSLe, BVSLt,
	} {
		if _, err := op(x, y); err != nil {
			t.Fatalf("binary op: %v", err)
		}
	}
	for _, op := range []func(Term) (Term, error){BVNeg, BVNot, BVSquare, RedAnd, RedOr} {
		if _, err := op(x); err != nil {
			t.Fatalf("unary op: %v", err)
		}
	}
	if _, err := BVSum(x, y, x); err != nil {
		t.Fatalf("sum: %v", err)
	}
	if _, err := BVAnd(x, y); err != nil {
		t.Fatalf("and: %v", err)
	}

	ext, err := BVExtract(x, 0, 7)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if TermBitsize(ext) != 8 {
		t.Fatalf("extract width %d, want 8", TermBitsize(ext))
	}
	cat, err := BVConcat(x, y)
	if err != nil {
		t.Fatalf("concat: %v", err)
	}
	if TermBitsize(cat) != 32 {
		t.Fatalf("concat width %d, want 32", TermBitsize(cat))
	}
	wide, err := SignExtend(x, 8)
	if err != nil {
		t.Fatalf("sign extend: %v", err)
	}
	if TermBitsize(wide) != 24 {
		t.Fatalf("sign extend width %d, want 24", TermBitsize(wide))
	}
	if _, err := RotateLeft(x, 3); err != nil {
		t.Fatalf("rotate: %v", err)
	}

	bit, err := BitExtract(x, 0)
	if err != nil {
		t.Fatalf("bit extract: %v", err)
	}
	if !TermIsBool(bit) {
		t.Fatalf("extracted bit is not boolean")
	}
	back, err := BVArray(bit, True())
	if err != nil {
		t.Fatalf("bvarray: %v", err)
	}
	if TermBitsize(back) != 2 {
		t.Fatalf("bvarray width %d, want 2", TermBitsize(back))
	}

	// width mismatch is a semantic error from the native side
	short, err := NewUninterpretedTerm(mustBVType(t, 8))
	if err != nil {
		t.Fatalf("new term: %v", err)
	}
	if _, err := BVAdd(x, short); err == nil {
		t.Fatalf("expected incompatible width error")
	}
}

func mustBVType(t *testing.T, n uint32) Type {
	t.Helper()
	tau, err := BVType(n)
	if err != nil {
		t.Fatalf("bv type: %v", err)
	}
	return tau
}
