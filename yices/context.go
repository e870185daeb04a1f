//go:build cgo
// +build cgo

package yices

/*
#include <stdlib.h>
#include "shim.h"
*/
import "C"

import (
	"runtime"

	"go.uber.org/zap"
)

// Config collects the options a context is created with. It is consumed by
// NewContext and can be released right after.
type Config struct {
	c *C.ctx_config_t
}

// NewConfig allocates an empty context configuration.
func NewConfig() (*Config, error) {
	p := C.yg_new_config()
	if takeOOM() {
		return nil, ErrOutOfMemory
	}
	if p == nil {
		return nil, lastError()
	}
	cfg := &Config{c: p}
	runtime.SetFinalizer(cfg, func(cfg *Config) { cfg.Close() })
	return cfg, nil
}

// Set assigns a configuration parameter by name.
func (cfg *Config) Set(name, value string) error {
	cn := cstring(name)
	defer freeCString(cn)
	cv := cstring(value)
	defer freeCString(cv)
	if C.yices_set_config(cfg.c, cn, cv) < 0 {
		return lastError()
	}
	return nil
}

// DefaultForLogic prepares the configuration for the given SMT-LIB logic
// name, such as "QF_BV".
func (cfg *Config) DefaultForLogic(logic string) error {
	cs := cstring(logic)
	defer freeCString(cs)
	if C.yices_default_config_for_logic(cfg.c, cs) < 0 {
		return lastError()
	}
	return nil
}

// Close releases the configuration. Further use is invalid.
func (cfg *Config) Close() {
	if cfg.c != nil {
		C.yices_free_config(cfg.c)
		cfg.c = nil
		runtime.SetFinalizer(cfg, nil)
	}
}

// Context is a Yices assertion context: a stack of assertions plus the
// solver state to check them.
type Context struct {
	c *C.context_t
}

// NewContext creates a context. A nil config selects the Yices defaults.
func NewContext(cfg *Config) (*Context, error) {
	var cc *C.ctx_config_t
	if cfg != nil {
		cc = cfg.c
	}
	p := C.yg_new_context(cc)
	if takeOOM() {
		return nil, ErrOutOfMemory
	}
	if p == nil {
		return nil, lastError()
	}
	ctx := &Context{c: p}
	runtime.SetFinalizer(ctx, func(ctx *Context) { ctx.Close() })
	return ctx, nil
}

// Close releases the context and every assertion in it.
func (ctx *Context) Close() {
	if ctx.c != nil {
		C.yices_free_context(ctx.c)
		ctx.c = nil
		runtime.SetFinalizer(ctx, nil)
	}
}

// Status returns the context state without running the solver. Cannot
// allocate.
func (ctx *Context) Status() Status {
	return statusFromCode(int32(C.yices_context_status(ctx.c)))
}

// Push opens a backtracking point.
func (ctx *Context) Push() error {
	return codeResult(C.yg_push(ctx.c))
}

// Pop discards every assertion made since the matching Push.
func (ctx *Context) Pop() error {
	return codeResult(C.yg_pop(ctx.c))
}

// AssertFormula adds the boolean term t to the context.
func (ctx *Context) AssertFormula(t Term) error {
	return codeResult(C.yg_assert_formula(ctx.c, C.term_t(t)))
}

// AssertFormulas adds every term in ts to the context.
func (ctx *Context) AssertFormulas(ts ...Term) error {
	var buf [smallArity]C.term_t
	a := termScratch(ts, &buf)
	return codeResult(C.yg_assert_formulas(ctx.c, C.uint32_t(len(a)), termPtr(a)))
}

// Check runs the solver on the current assertions. A nil params record
// selects the default search parameters.
func (ctx *Context) Check(params *Params) (Status, error) {
	var pp *C.param_t
	if params != nil {
		pp = params.c
	}
	st := C.yg_check_context(ctx.c, pp)
	if takeOOM() {
		return StatusError, ErrOutOfMemory
	}
	s := statusFromCode(int32(st))
	logger.Debug("check done", zap.Stringer("status", s))
	if s == StatusError {
		return s, lastError()
	}
	return s, nil
}

// AssertBlockingClause rules out the current model, for iterating over
// distinct satisfying assignments.
func (ctx *Context) AssertBlockingClause() error {
	return codeResult(C.yg_assert_blocking_clause(ctx.c))
}

// StopSearch interrupts a running Check from another goroutine; the
// interrupted call returns StatusInterrupted.
func (ctx *Context) StopSearch() {
	logger.Debug("stopping search")
	C.yices_stop_search(ctx.c)
}

// Reset removes every assertion from the context.
func (ctx *Context) Reset() {
	C.yices_reset_context(ctx.c)
}

// EnableOption turns a preprocessing or solving option on by name.
func (ctx *Context) EnableOption(option string) error {
	cs := cstring(option)
	defer freeCString(cs)
	if C.yices_context_enable_option(ctx.c, cs) < 0 {
		return lastError()
	}
	return nil
}

// DisableOption turns a preprocessing or solving option off by name.
func (ctx *Context) DisableOption(option string) error {
	cs := cstring(option)
	defer freeCString(cs)
	if C.yices_context_disable_option(ctx.c, cs) < 0 {
		return lastError()
	}
	return nil
}

// Params tunes the solver heuristics for Check.
type Params struct {
	c *C.param_t
}

// NewParams allocates a parameter record with the Yices defaults.
func NewParams() (*Params, error) {
	p := C.yg_new_param_record()
	if takeOOM() {
		return nil, ErrOutOfMemory
	}
	if p == nil {
		return nil, lastError()
	}
	params := &Params{c: p}
	runtime.SetFinalizer(params, func(params *Params) { params.Close() })
	return params, nil
}

// Set assigns a search parameter by name.
func (params *Params) Set(name, value string) error {
	cn := cstring(name)
	defer freeCString(cn)
	cv := cstring(value)
	defer freeCString(cv)
	if C.yices_set_param(params.c, cn, cv) < 0 {
		return lastError()
	}
	return nil
}

// DefaultsForContext adjusts the record to the heuristics Yices would pick
// for ctx.
func (params *Params) DefaultsForContext(ctx *Context) {
	C.yices_default_params_for_context(ctx.c, params.c)
}

// Close releases the parameter record.
func (params *Params) Close() {
	if params.c != nil {
		C.yices_free_param_record(params.c)
		params.c = nil
		runtime.SetFinalizer(params, nil)
	}
}
