//go:build !cgo
// +build !cgo

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "ysmt requires cgo. Rebuild with CGO_ENABLED=1 and Yices and GMP installed.")
	os.Exit(1)
}
