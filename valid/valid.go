// Package valid provides the construction machinery for domain primitives:
// small immutable types that wrap a raw primitive value and are guaranteed,
// for their entire lifetime, to satisfy a domain rule. Construction is the
// only mutation point; a value that fails its rule is never produced.
//
// Constructors built on this package are fail-fast: they return an error to
// the immediate caller and never a partially-valid value. Use result.From to
// lift any of them into the total, branch-forcing variant.
package valid

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel wrapped by every constructor failure.
// Callers can detect any rejected input with errors.Is(err, valid.ErrValidation)
// without knowing which rule was violated.
var ErrValidation = errors.New("validation failed")

// Rule is a predicate over raw values of type T. It returns nil when the
// value satisfies the rule, or a descriptive error naming the violated
// constraint otherwise. Rules must be pure: no side effects, same answer
// for the same input.
type Rule[T any] func(T) error

// New applies the given rules to raw in order and returns raw unchanged if
// every rule passes. The first failing rule stops evaluation; its error is
// wrapped with ErrValidation and returned. No value is ever returned alongside
// a non-nil error.
func New[T any](raw T, rules ...Rule[T]) (T, error) {
	for _, rule := range rules {
		if err := rule(raw); err != nil {
			recordConstruction(raw, false)

			var zero T

			return zero, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	recordConstruction(raw, true)

	return raw, nil
}

// All combines rules into a single rule that passes only when every
// constituent rule passes. Evaluation stops at the first failure.
func All[T any](rules ...Rule[T]) Rule[T] {
	return func(raw T) error {
		for _, rule := range rules {
			if err := rule(raw); err != nil {
				return err
			}
		}

		return nil
	}
}
