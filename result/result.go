// Package result provides an explicit success/failure variant type.
// It is the total counterpart to Go's (value, error) return convention:
// a Result must be branched on before its value can be used, which makes
// ignoring a constructor failure a compile-visible mistake rather than a
// silently discarded error.
package result

import (
	"encoding/json"
	"fmt"
)

// Result holds either a value of type T or an error, never both.
// Use Ok(value) for success and Err(err) for failure.
// The zero value of Result is Ok with the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a successful Result containing the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err creates a failed Result containing the given error.
// Passing a nil error creates a successful Result holding the zero value of T,
// mirroring the (value, error) convention where a nil error means success.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// From adapts a (value, error) pair into a Result.
// It is the bridge from fail-fast constructors to the total variant:
//
//	r := result.From(ordernumber.New(raw))
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}

	return Ok(value)
}

// IsOk returns true if the Result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr returns true if the Result holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Get returns the value and error held by the Result.
// Exactly one of the two is meaningful; on failure the value is the zero value of T.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T

		return zero, r.err
	}

	return r.value, nil
}

// GetOrElse returns the value if the Result is successful, or the provided
// default value if it holds an error.
func (r Result[T]) GetOrElse(defaultValue T) T {
	if r.err != nil {
		return defaultValue
	}

	return r.value
}

// GetOrPanic returns the value if the Result is successful, or panics with the
// held error. Use this only when failure is a programming error.
func (r Result[T]) GetOrPanic() T {
	if r.err != nil {
		panic(r.err)
	}

	return r.value
}

// Error returns the held error, or nil if the Result is successful.
func (r Result[T]) Error() error {
	return r.err
}

// String returns "Ok(value)" for success or "Err(message)" for failure.
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}

	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map transforms the value inside a successful Result using the provided function.
// A failed Result passes through unchanged, carrying its original error.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}

	return Ok(f(r.value))
}

// FlatMap transforms the value inside a successful Result using a function that
// can itself fail. This chains fallible transformations without nesting.
func FlatMap[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}

	return f(r.value)
}

// MarshalJSON implements json.Marshaler.
// Success is marshaled as {"value": ...}, failure as {"error": "message"}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		return json.Marshal(map[string]string{"error": r.err.Error()})
	}

	return json.Marshal(map[string]T{"value": r.value})
}
