//go:build cgo
// +build cgo

package yices

import (
	"math/big"
	"testing"
)

func TestRationalConstants(t *testing.T) {
	half, err := RationalConst(1, 2)
	if err != nil {
		t.Fatalf("rational: %v", err)
	}
	// constants are canonicalized: 2/4 is the same term as 1/2
	alsoHalf, err := RationalConst(2, 4)
	if err != nil {
		t.Fatalf("rational: %v", err)
	}
	if half != alsoHalf {
		t.Fatalf("2/4 and 1/2 got distinct handles")
	}
	if _, err := RationalConst(1, 0); err == nil {
		t.Fatalf("expected error for zero denominator")
	}
	if _, err := RationalConst(1, -2); err == nil {
		t.Fatalf("expected error for negative denominator")
	}
}

func TestBigIntConstRoundTrip(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	for _, z := range []*big.Int{
		big.NewInt(0),
		big.NewInt(-128),
		big.NewInt(255),
		huge,
		new(big.Int).Neg(huge),
	} {
		c, err := BigIntConst(z)
		if err != nil {
			t.Fatalf("const %s: %v", z, err)
		}
		if !TermIsInt(c) {
			t.Fatalf("constant %s is not an integer term", z)
		}
		got, err := BigRatConstValue(c)
		if err != nil {
			t.Fatalf("value of %s: %v", z, err)
		}
		if !got.IsInt() || got.Num().Cmp(z) != 0 {
			t.Fatalf("round trip of %s gave %s", z, got)
		}
	}
}

func TestBigRatConstRoundTrip(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 90)
	q := new(big.Rat).SetFrac(huge, big.NewInt(3))
	c, err := BigRatConst(q)
	if err != nil {
		t.Fatalf("const %s: %v", q, err)
	}
	got, err := BigRatConstValue(c)
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if got.Cmp(q) != 0 {
		t.Fatalf("round trip of %s gave %s", q, got)
	}

	num, err := RationalConstNumAsBytes(c)
	if err != nil {
		t.Fatalf("num bytes: %v", err)
	}
	den, err := RationalConstDenAsBytes(c)
	if err != nil {
		t.Fatalf("den bytes: %v", err)
	}
	if DecodeBigInt(num).Cmp(q.Num()) != 0 || DecodeBigInt(den).Cmp(q.Denom()) != 0 {
		t.Fatalf("byte export mismatch")
	}
}

func TestRationalConstFromBytesCanonicalizes(t *testing.T) {
	// 4/2 canonicalizes to the integer 2
	c, err := RationalConstFromBytes(EncodeBigInt(big.NewInt(4)), EncodeBigInt(big.NewInt(2)))
	if err != nil {
		t.Fatalf("const: %v", err)
	}
	two, err := IntConst(2)
	if err != nil {
		t.Fatalf("int const: %v", err)
	}
	if c != two {
		t.Fatalf("4/2 and 2 got distinct handles")
	}

	// a negative denominator moves the sign into the numerator
	c, err = RationalConstFromBytes(EncodeBigInt(big.NewInt(1)), EncodeBigInt(big.NewInt(-3)))
	if err != nil {
		t.Fatalf("const: %v", err)
	}
	got, err := BigRatConstValue(c)
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if got.Cmp(big.NewRat(-1, 3)) != 0 {
		t.Fatalf("1/-3 gave %s", got)
	}

	if _, err := RationalConstFromBytes([]byte{0x01}, []byte{0x00}); err != ErrZeroDenominator {
		t.Fatalf("expected ErrZeroDenominator, got %v", err)
	}
}

func TestBytesNotMutatedByConstructors(t *testing.T) {
	// the native side negates its buffer in place; the caller's bytes must
	// stay intact
	b := EncodeBigInt(big.NewInt(-1000))
	saved := append([]byte(nil), b...)
	if _, err := IntConstFromBytes(b); err != nil {
		t.Fatalf("const: %v", err)
	}
	for i := range b {
		if b[i] != saved[i] {
			t.Fatalf("input bytes mutated at %d", i)
		}
	}
}

func TestArithOperations(t *testing.T) {
	x, err := NewUninterpretedTerm(IntType())
	if err != nil {
		t.Fatalf("new term: %v", err)
	}
	one, err := IntConst(1)
	if err != nil {
		t.Fatalf("int const: %v", err)
	}

	sum, err := Add(x, one)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	viaPoly, err := IntPoly([]int64{1, 1}, []Term{x, one})
	if err != nil {
		t.Fatalf("poly: %v", err)
	}
	if sum != viaPoly {
		t.Fatalf("x+1 built two ways got distinct handles")
	}

	if _, err := IntPoly([]int64{1}, []Term{x, one}); err == nil {
		t.Fatalf("expected length mismatch error")
	}
	if _, err := RationalPoly([]int64{1}, []uint64{2}, []Term{x}); err != nil {
		t.Fatalf("rational poly: %v", err)
	}

	for _, op := range []func(Term, Term) (Term, error){
		Sub, Mul, Division, IDiv, IMod, ArithEq, ArithNeq, ArithGeq, ArithLeq, ArithGt, ArithLt,
	} {
		if _, err := op(x, one); err != nil {
			t.Fatalf("binary op: %v", err)
		}
	}
	for _, op := range []func(Term) (Term, error){
		Neg, Square, Abs, Floor, Ceil, ArithEq0, ArithGeq0, ArithLt0,
	} {
		if _, err := op(x); err != nil {
			t.Fatalf("unary op: %v", err)
		}
	}
}
