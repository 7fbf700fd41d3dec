// Package secret provides a single-read wrapper for sensitive values such as
// passwords, card numbers and one-time tokens. The wrapped value can be
// retrieved exactly once; every later attempt fails. Rendering a Value as a
// string, JSON or a log attribute always produces a mask and never counts as
// a read, so a secret that wanders into a log line does not leak.
//
// The guarantee covers the wrapper only. Once a caller has extracted the raw
// value with Read, the package cannot control what happens to the copy; that
// boundary is inherent to the pattern, not a gap to close. Callers that need
// the value more than once should read it once and keep the result in a
// narrow scope.
package secret

import (
	"errors"
	"log/slog"

	"go.uber.org/atomic"
)

// ErrAlreadyRead is returned by Read after the first successful read.
// Retrying deterministically fails again; the fix is on the caller's side.
var ErrAlreadyRead = errors.New("secret was already read")

const mask = "*****"

// Value wraps a sensitive value of type T and permits exactly one successful
// Read. A Value is safe for concurrent use: when several goroutines race on
// Read, exactly one wins.
type Value[T any] struct {
	value T
	read  *atomic.Bool
}

// New wraps value for single-read access. It always succeeds.
func New[T any](value T) *Value[T] {
	return &Value[T]{
		value: value,
		read:  atomic.NewBool(false),
	}
}

// Read returns the wrapped value and marks the Value as read, as a single
// atomic step. Every call after the first successful one returns
// ErrAlreadyRead and the zero value of T.
func (v *Value[T]) Read() (T, error) {
	if v.read.CompareAndSwap(false, true) {
		return v.value, nil
	}

	var zero T

	return zero, ErrAlreadyRead
}

// WasRead reports whether the value has been read. It does not consume.
func (v *Value[T]) WasRead() bool {
	return v.read.Load()
}

// String returns the mask, never the wrapped value, and does not consume.
// This covers %v and %s formatting.
func (v *Value[T]) String() string {
	return mask
}

// MarshalJSON implements json.Marshaler. The wrapped value is never
// serialized; the mask is emitted instead. Marshaling does not consume.
func (v *Value[T]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + mask + `"`), nil
}

// LogValue implements slog.LogValuer, so a Value passed as a slog attribute
// is rendered masked. Logging does not consume.
func (v *Value[T]) LogValue() slog.Value {
	return slog.StringValue(mask)
}
