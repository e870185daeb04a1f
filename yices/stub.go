//go:build !cgo
// +build !cgo

// Package yices provides a Go binding to the Yices 2 SMT solver C API.
// This stub allows the package to build without cgo available.
// Install Yices and enable cgo to use the real binding.
package yices

// Placeholder types for documentation-only builds (no functionality).

type Config struct{}

type Context struct{}

type Params struct{}

type Model struct{}
