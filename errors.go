package chunkbits

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is the cause of a chunk, word or bit index outside its valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLengthMismatch is the cause of combining two vectors with different chunk counts.
	ErrLengthMismatch = errors.New("chunk count mismatch")

	// ErrNegativeSize is the cause of requesting a vector for a negative number of bits.
	ErrNegativeSize = errors.New("negative bit count")
)

// PreconditionError describes a violated caller contract.
//
// It is never returned. Operations panic with a *PreconditionError so that the
// failure is immediate; a caller that recovers can still classify it with
// errors.Is against the sentinel errors above.
type PreconditionError struct {
	// Op is the failing operation, e.g. "Vector.Chunk".
	Op string
	// Index is the offending index or size.
	Index int
	// Limit is the exclusive upper bound (or the expected length).
	Limit int
	cause error
}

func (e *PreconditionError) Error() string {
	switch e.cause {
	case ErrIndexOutOfRange:
		return fmt.Sprintf("chunkbits: %s: %v: %d not in [0,%d)", e.Op, e.cause, e.Index, e.Limit)
	case ErrLengthMismatch:
		return fmt.Sprintf("chunkbits: %s: %v: got %d, want %d", e.Op, e.cause, e.Index, e.Limit)
	default:
		return fmt.Sprintf("chunkbits: %s: %v: %d", e.Op, e.cause, e.Index)
	}
}

func (e *PreconditionError) Unwrap() error { return e.cause }

//go:noinline
func panicIndex(op string, index, limit int) {
	panic(&PreconditionError{Op: op, Index: index, Limit: limit, cause: ErrIndexOutOfRange})
}

//go:noinline
func panicLength(op string, got, want int) {
	panic(&PreconditionError{Op: op, Index: got, Limit: want, cause: ErrLengthMismatch})
}

//go:noinline
func panicNegative(op string, n int) {
	panic(&PreconditionError{Op: op, Index: n, cause: ErrNegativeSize})
}

// checkIndex fails fast unless 0 <= i < n.
func checkIndex(op string, i, n int) {
	if uint(i) >= uint(n) {
		panicIndex(op, i, n)
	}
}
