package yices

// Term is a Yices term handle. Terms are owned by the Yices term table; this
// package only forwards them and never frees or deduplicates them.
type Term int32

// Type is a Yices type handle, owned by the Yices type table.
type Type int32

const (
	// NullTerm is the sentinel returned by term constructors on error.
	NullTerm Term = -1
	// NullType is the sentinel returned by type constructors on error.
	NullType Type = -1
)

// Status mirrors the smt_status_t codes reported by context operations.
type Status int32

const (
	StatusIdle Status = iota
	StatusSearching
	StatusUnknown
	StatusSat
	StatusUnsat
	StatusInterrupted
	StatusError
)

// statusFromCode maps a raw native status to Status. Out-of-range codes map
// to StatusError.
func statusFromCode(code int32) Status {
	s := Status(code)
	if s < StatusIdle || s > StatusError {
		return StatusError
	}
	return s
}

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSearching:
		return "searching"
	case StatusUnknown:
		return "unknown"
	case StatusSat:
		return "sat"
	case StatusUnsat:
		return "unsat"
	case StatusInterrupted:
		return "interrupted"
	default:
		return "error"
	}
}

// smallArity is the cutoff below which argument arrays are copied into a
// fixed-size scratch buffer instead of a fresh allocation. The copy also
// isolates the caller's slice from native operations that reorder their
// input (and, or, xor, distinct, quantifiers).
const smallArity = 10

// inlineBits is the widest bit-vector whose value extraction uses the
// fixed-size scratch buffer.
const inlineBits = 64
