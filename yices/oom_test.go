//go:build cgo
// +build cgo

package yices

import "testing"

func TestOOMTrap(t *testing.T) {
	// fire the trap inside a protected region; it must surface as a consumed
	// flag instead of terminating the process
	if !tripOOM() {
		t.Fatalf("trap did not record the fault")
	}
	// the flag is one-shot
	if takeOOM() {
		t.Fatalf("fault flag not consumed")
	}
	// the library keeps working afterwards
	if _, err := IntConst(42); err != nil {
		t.Fatalf("call after trap: %v", err)
	}
}

func TestCStringBalance(t *testing.T) {
	before := cstringsAcquired - cstringsReleased

	// success path
	if _, err := ParseType("int"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	// failure path: releases must still happen
	if _, err := ParseTerm("(this is not a term"); err == nil {
		t.Fatalf("expected parse error")
	}
	x, err := NewUninterpretedTerm(IntType())
	if err != nil {
		t.Fatalf("new term: %v", err)
	}
	if err := SetTermName(x, "balance_probe"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	RemoveTermName("balance_probe")

	after := cstringsAcquired - cstringsReleased
	if before != after {
		t.Fatalf("leaked %d native strings", after-before)
	}
}
