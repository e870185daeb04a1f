//go:build cgo
// +build cgo

package yices

/*
#include <stdlib.h>
#include "shim.h"
*/
import "C"

import "unsafe"

// Transient native views. Every array or string argument is staged through
// the helpers below and released on every exit path; the counters let tests
// verify that acquires and releases stay balanced even when a call fails.

var (
	cstringsAcquired uint64
	cstringsReleased uint64
)

func cstring(s string) *C.char {
	cstringsAcquired++
	return C.CString(s)
}

func freeCString(p *C.char) {
	cstringsReleased++
	C.free(unsafe.Pointer(p))
}

// goStringFree converts a string allocated by Yices and releases it with
// yices_free_string. A NULL input yields "".
func goStringFree(p *C.char) string {
	if p == nil {
		return ""
	}
	s := C.GoString(p)
	C.yices_free_string(p)
	return s
}

// termScratch copies args into native form. Arities up to smallArity reuse
// the caller's fixed buffer, larger ones get a fresh slice. The copy exists
// because some Yices constructors reorder their argument array; the
// caller's slice must never be observably mutated.
func termScratch(args []Term, buf *[smallArity]C.term_t) []C.term_t {
	var dst []C.term_t
	if len(args) <= smallArity {
		dst = buf[:len(args)]
	} else {
		dst = make([]C.term_t, len(args))
	}
	for i, t := range args {
		dst[i] = C.term_t(t)
	}
	return dst
}

func typeScratch(args []Type, buf *[smallArity]C.type_t) []C.type_t {
	var dst []C.type_t
	if len(args) <= smallArity {
		dst = buf[:len(args)]
	} else {
		dst = make([]C.type_t, len(args))
	}
	for i, t := range args {
		dst[i] = C.type_t(t)
	}
	return dst
}

// termPtr returns the base pointer of a scratch slice, or nil for an empty
// one so Yices sees (0, NULL) and reports its own arity error.
func termPtr(a []C.term_t) *C.term_t {
	if len(a) == 0 {
		return nil
	}
	return &a[0]
}

func typePtr(a []C.type_t) *C.type_t {
	if len(a) == 0 {
		return nil
	}
	return &a[0]
}

// boolsFromBits converts a flat bit array as returned by Yices: nonzero
// means true.
func boolsFromBits(bits []C.int32_t) []bool {
	out := make([]bool, len(bits))
	for i, b := range bits {
		out[i] = b != 0
	}
	return out
}

func bitsFromBools(bits []bool) []C.int32_t {
	out := make([]C.int32_t, len(bits))
	for i, b := range bits {
		if b {
			out[i] = 1
		}
	}
	return out
}

// termResult translates a protected native call's result: allocation
// failure first, then the sentinel plus error side channel.
func termResult(r C.term_t) (Term, error) {
	if takeOOM() {
		return NullTerm, ErrOutOfMemory
	}
	if r < 0 {
		return NullTerm, lastError()
	}
	return Term(r), nil
}

func typeResult(r C.type_t) (Type, error) {
	if takeOOM() {
		return NullType, ErrOutOfMemory
	}
	if r < 0 {
		return NullType, lastError()
	}
	return Type(r), nil
}

// codeResult translates a status-code return (0 on success, negative on
// error).
func codeResult(r C.int32_t) error {
	if takeOOM() {
		return ErrOutOfMemory
	}
	if r < 0 {
		return lastError()
	}
	return nil
}

// stringResult translates a protected call returning a Yices-allocated
// string; NULL means the side channel holds the error.
func stringResult(p *C.char) (string, error) {
	if takeOOM() {
		return "", ErrOutOfMemory
	}
	if p == nil {
		return "", lastError()
	}
	return goStringFree(p), nil
}

// fetchBytes stages a two's-complement byte export through a fixed 32-byte
// scratch buffer, retrying with an exact allocation when the value needs
// more. fetch returns the encoded length, or the required capacity when the
// buffer is too small, or a negative code on failure.
func fetchBytes(fetch func(buf *C.uint8_t, cap C.uint32_t) C.int) ([]byte, error) {
	var scratch [32]byte
	n := fetch((*C.uint8_t)(unsafe.Pointer(&scratch[0])), C.uint32_t(len(scratch)))
	if takeOOM() {
		return nil, ErrOutOfMemory
	}
	if n < 0 {
		return nil, lastError()
	}
	if int(n) <= len(scratch) {
		out := make([]byte, int(n))
		copy(out, scratch[:n])
		return out, nil
	}
	buf := make([]byte, int(n))
	n = fetch((*C.uint8_t)(unsafe.Pointer(&buf[0])), C.uint32_t(len(buf)))
	if takeOOM() {
		return nil, ErrOutOfMemory
	}
	if n < 0 {
		return nil, lastError()
	}
	return buf[:n], nil
}
