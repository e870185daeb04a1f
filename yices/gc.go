//go:build cgo
// +build cgo

package yices

/*
#include <stdlib.h>
#include "shim.h"
*/
import "C"

import "go.uber.org/zap"

// Terms and types live in global Yices tables and are reclaimed only by
// GarbageCollect. Reference counts mark handles that must survive a
// collection in addition to the roots passed explicitly.

// NumTerms returns the number of terms in the global term table.
func NumTerms() uint32 {
	return uint32(C.yices_num_terms())
}

// NumTypes returns the number of types in the global type table.
func NumTypes() uint32 {
	return uint32(C.yices_num_types())
}

// IncRefTerm increments the reference count of t. The count table may grow.
func IncRefTerm(t Term) error {
	return codeResult(C.yg_incref_term(C.term_t(t)))
}

// DecRefTerm decrements the reference count of t. Cannot allocate.
func DecRefTerm(t Term) error {
	if C.yices_decref_term(C.term_t(t)) < 0 {
		return lastError()
	}
	return nil
}

// IncRefType increments the reference count of tau.
func IncRefType(tau Type) error {
	return codeResult(C.yg_incref_type(C.type_t(tau)))
}

// DecRefType decrements the reference count of tau. Cannot allocate.
func DecRefType(tau Type) error {
	if C.yices_decref_type(C.type_t(tau)) < 0 {
		return lastError()
	}
	return nil
}

// NumPosrefTerms returns the number of terms with a positive reference
// count.
func NumPosrefTerms() uint32 {
	return uint32(C.yices_num_posref_terms())
}

// NumPosrefTypes returns the number of types with a positive reference
// count.
func NumPosrefTypes() uint32 {
	return uint32(C.yices_num_posref_types())
}

// GarbageCollect deletes every term and type not reachable from the given
// roots, the positive reference counts, live contexts and models, and, when
// keepNamed is true, the symbol tables.
func GarbageCollect(termRoots []Term, typeRoots []Type, keepNamed bool) error {
	var tbuf [smallArity]C.term_t
	var ybuf [smallArity]C.type_t
	tr := termScratch(termRoots, &tbuf)
	yr := typeScratch(typeRoots, &ybuf)
	keep := C.int32_t(0)
	if keepNamed {
		keep = 1
	}
	rc := C.yg_garbage_collect(termPtr(tr), C.uint32_t(len(tr)), typePtr(yr), C.uint32_t(len(yr)), keep)
	if err := codeResult(rc); err != nil {
		return err
	}
	logger.Debug("garbage collection done",
		zap.Uint32("terms", NumTerms()),
		zap.Uint32("types", NumTypes()))
	return nil
}
