package kociemba

import (
	"errors"
	"fmt"
)

// IllegalStateError reports that a requested cube state violates one of
// the data model's invariants (bijective permutations, orientation parity,
// matching permutation parity).
type IllegalStateError struct {
	Reason string
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("illegal cube state: %s", e.Reason)
}

// TableIOError wraps a failure reading or writing a move/pruning table
// file. A load failure is treated by the caller as a signal to regenerate
// the table; a save failure is propagated.
type TableIOError struct {
	Path string
	Err  error
}

func (e *TableIOError) Error() string {
	return fmt.Sprintf("table io error at %s: %v", e.Path, e.Err)
}

func (e *TableIOError) Unwrap() error {
	return e.Err
}

// TableFormatError reports that an on-disk table file's size doesn't match
// what the coordinate it's supposed to hold requires, a sign of a stale or
// corrupt file. Callers regenerate rather than fail.
type TableFormatError struct {
	Path string
	Want int64
	Got  int64
}

func (e *TableFormatError) Error() string {
	return fmt.Sprintf("table %s has size %d, want %d", e.Path, e.Got, e.Want)
}

// ErrSearchExhausted is returned if the IDA* driver runs out of iterations
// or time without ever reaching a Phase-1 goal. With no iteration or time
// cap this does not happen for a legal cube; it surfaces as an error rather
// than being swallowed.
var ErrSearchExhausted = errors.New("kociemba: search exhausted without finding a phase-1 goal")
