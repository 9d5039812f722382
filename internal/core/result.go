package core

// result.go defines the Result wrapper used by every domain operation.
//
// Domain failures (missing file, bad column, null cell) are expected
// outcomes, not faults, so operations return a Result instead of an error.
// Callers branch on IsOk and never need to recover from a panic or unwrap
// an error chain to distinguish success from a domain failure.

import "fmt"

// Result is a two-variant outcome: Ok with a value, or Fail with a message.
// The zero value is a failure with an empty message; use the constructors.
// Fields are unexported so exactly one variant can ever be populated.
type Result[T any] struct {
	ok    bool
	value T
	err   string
}

// Ok returns a successful Result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

// Fail returns a failed Result carrying a descriptive message.
func Fail[T any](message string) Result[T] {
	return Result[T]{err: message}
}

// Failf returns a failed Result with a formatted message.
func Failf[T any](format string, args ...any) Result[T] {
	return Result[T]{err: fmt.Sprintf(format, args...)}
}

// IsOk reports whether the Result is the success variant.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// Value returns the payload. Only meaningful when IsOk is true;
// for a failed Result it returns the zero value of T.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure message, or "" for a successful Result.
func (r Result[T]) Err() string {
	return r.err
}
