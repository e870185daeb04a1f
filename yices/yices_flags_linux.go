//go:build cgo && linux
// +build cgo,linux

package yices

/*
// Default linker flags to pull in yices and gmp. On Linux, libyices and
// libgmp are typically in a default linker path when installed from a
// distribution package. If not, callers can provide CGO_LDFLAGS/CGO_CFLAGS.
#cgo LDFLAGS: -lyices -lgmp
*/
import "C"
