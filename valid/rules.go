package valid

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrEmpty         = errors.New("value must not be empty")
	ErrWrongLength   = errors.New("value has wrong length")
	ErrNegative      = errors.New("value must not be negative")
	ErrOutOfInterval = errors.New("value is outside the allowed interval")
)

// Signed is the set of signed integer types accepted by the numeric rules.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// NotEmpty rejects the empty string.
func NotEmpty(raw string) error {
	if raw == "" {
		return ErrEmpty
	}

	return nil
}

// LengthExactly returns a rule that accepts only strings with exactly n runes.
func LengthExactly(n int) Rule[string] {
	return func(raw string) error {
		if count := utf8.RuneCountInString(raw); count != n {
			return fmt.Errorf("%w: want %d characters, got %d", ErrWrongLength, n, count)
		}

		return nil
	}
}

// NonNegative rejects values below zero.
func NonNegative[T Signed](raw T) error {
	if raw < 0 {
		return fmt.Errorf("%w: got %d", ErrNegative, raw)
	}

	return nil
}

// Between returns a rule that accepts values in the inclusive interval [low, high].
func Between[T Signed](low, high T) Rule[T] {
	return func(raw T) error {
		if raw < low || raw > high {
			return fmt.Errorf("%w: want [%d, %d], got %d", ErrOutOfInterval, low, high, raw)
		}

		return nil
	}
}
