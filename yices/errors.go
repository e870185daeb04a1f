package yices

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory is returned when the native library, or a marshalling step
// on the way in or out of it, fails to allocate memory. Yices' own state may
// be inconsistent after such a failure, so callers should abandon the current
// context instead of retrying.
var ErrOutOfMemory = errors.New("yices: out of memory")

// ErrZeroDenominator is returned when rational bytes decode to a denominator
// equal to zero.
var ErrZeroDenominator = errors.New("yices: zero denominator")

// Error is a semantic error reported by Yices. Code and Message are the
// native error code and error string, forwarded unchanged.
type Error struct {
	Code    int32
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("yices: %s (error code %d)", e.Message, e.Code)
}
