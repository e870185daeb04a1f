//go:build cgo
// +build cgo

// Package yices provides a Go binding to the Yices 2 SMT solver C API.
//
// Yices owns every handle exposed here: terms and types are plain int32
// indices into its global tables, contexts and models are opaque pointers.
// The binding forwards them without caching or lifetime tracking.
//
// The library keeps process-wide state. Init must be called exactly once
// before any other entry point, Exit tears the library down, and Reset
// clears all terms and types while keeping it initialized. Yices itself is
// not thread-safe and neither is this binding; callers that share it across
// goroutines must serialize access externally.
//
// Big integer and rational values cross the boundary as minimal big-endian
// two's-complement byte sequences (see bignum.go); both sides of the
// boundary implement the same codec.
package yices

/*
#include <stdlib.h>
#include "shim.h"
*/
import "C"

import "go.uber.org/zap"

// Init initializes Yices and installs the out-of-memory trap that turns the
// library's exit(1)-on-allocation-failure into ErrOutOfMemory results. It
// must be called once, before anything else in this package.
func Init() {
	C.yices_init()
	C.yg_install_oom_trap()
	logger.Info("yices initialized", zap.String("version", Version()))
}

// Exit frees all memory used by Yices. No entry point may be used afterwards
// without calling Init again.
func Exit() {
	C.yices_exit()
	logger.Info("yices shut down")
}

// Reset removes all terms and types and resets the symbol tables, leaving
// the library in the same state as immediately after Init. Existing handles
// become invalid.
func Reset() {
	C.yices_reset()
	logger.Info("yices reset")
}

// Version returns the Yices version string.
func Version() string {
	return C.GoString(C.yices_version)
}

// BuildArch returns the architecture the Yices library was built for.
func BuildArch() string {
	return C.GoString(C.yices_build_arch)
}

// BuildMode returns the build mode of the Yices library (release, debug, ...).
func BuildMode() string {
	return C.GoString(C.yices_build_mode)
}

// BuildDate returns the build date of the Yices library.
func BuildDate() string {
	return C.GoString(C.yices_build_date)
}

// HasMCSat reports whether the library was built with MC-SAT support.
func HasMCSat() bool {
	return C.yices_has_mcsat() != 0
}

// ErrorCode returns the native code of the last error reported by Yices.
func ErrorCode() int32 {
	return int32(C.yices_error_code())
}

// ErrorString returns the native message of the last error reported by
// Yices.
func ErrorString() string {
	return goStringFree(C.yices_error_string())
}

// ClearError resets the error side channel.
func ClearError() {
	C.yices_clear_error()
}

// lastError materializes the side channel as an *Error, forwarding the
// native code and message unchanged.
func lastError() error {
	return &Error{Code: ErrorCode(), Message: ErrorString()}
}

// takeOOM consumes the allocation-failure flag set by the C trap during the
// preceding protected call.
func takeOOM() bool {
	if C.yg_take_oom() == 0 {
		return false
	}
	logger.Warn("yices call aborted: allocation failure in native code")
	return true
}

// tripOOM fires the out-of-memory trap inside a protected region. Test hook.
func tripOOM() bool {
	C.yg_test_oom()
	return takeOOM()
}
