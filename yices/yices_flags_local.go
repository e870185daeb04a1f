//go:build cgo
// +build cgo

package yices

/*
// You can set CGO_CFLAGS and CGO_LDFLAGS at build time to point to your
// Yices and GMP installs. This file intentionally provides no defaults to
// avoid hard-coding local paths.
*/
import "C"
