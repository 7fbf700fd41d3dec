// Package span provides validated slice-range primitives: non-negative Start,
// End and Length scalars, and a Span composite guaranteeing start <= end.
// Each scalar validates itself at construction; the cross-field ordering
// invariant is checked once, where the composite is built, rather than being
// duplicated into the scalars.
package span

import (
	"errors"
	"fmt"

	"github.com/amp-labs/amp-values/valid"
)

// ErrEndBeforeStart is returned by FromEndpoints when the start index is
// greater than the end index.
var ErrEndBeforeStart = errors.New("end must not be before start")

// Start is a validated, non-negative start index.
type Start struct {
	value int
}

// NewStart validates raw and returns it as a Start index.
// It fails with an error wrapping valid.ErrValidation when raw is negative.
func NewStart(raw int) (Start, error) {
	value, err := valid.New(raw, valid.NonNegative)
	if err != nil {
		return Start{}, err
	}

	return Start{value: value}, nil
}

// Int returns the index as a plain int.
func (s Start) Int() int {
	return s.value
}

// End is a validated, non-negative end index.
type End struct {
	value int
}

// NewEnd validates raw and returns it as an End index.
// It fails with an error wrapping valid.ErrValidation when raw is negative.
func NewEnd(raw int) (End, error) {
	value, err := valid.New(raw, valid.NonNegative)
	if err != nil {
		return End{}, err
	}

	return End{value: value}, nil
}

// Int returns the index as a plain int.
func (e End) Int() int {
	return e.value
}

// Length is a validated, non-negative element count.
type Length struct {
	value int
}

// NewLength validates raw and returns it as a Length.
// It fails with an error wrapping valid.ErrValidation when raw is negative.
func NewLength(raw int) (Length, error) {
	value, err := valid.New(raw, valid.NonNegative)
	if err != nil {
		return Length{}, err
	}

	return Length{value: value}, nil
}

// Int returns the count as a plain int.
func (l Length) Int() int {
	return l.value
}

// Span is a half-open index range [start, end) with start <= end.
// Instances only exist through FromEndpoints or FromLength.
type Span struct {
	start Start
	end   End
}

// FromEndpoints builds a Span from already-validated endpoints.
// It fails with an error wrapping valid.ErrValidation when start > end.
func FromEndpoints(start Start, end End) (Span, error) {
	if start.value > end.value {
		return Span{}, fmt.Errorf("%w: %w: start %d, end %d",
			valid.ErrValidation, ErrEndBeforeStart, start.value, end.value)
	}

	return Span{start: start, end: end}, nil
}

// FromLength builds the Span [start, start+length). It cannot fail: start and
// length are both non-negative, so the resulting end never precedes start.
func FromLength(start Start, length Length) Span {
	end := End{value: start.value + length.value}

	span, err := FromEndpoints(start, end)
	if err != nil {
		// Unreachable while Start and Length hold their invariants.
		panic(err)
	}

	return span
}

// Start returns the span's start index.
func (s Span) Start() Start {
	return s.start
}

// End returns the span's end index.
func (s Span) End() End {
	return s.end
}

// Len returns the number of indices covered by the span.
func (s Span) Len() int {
	return s.end.value - s.start.value
}

// Contains returns true if index i falls inside the half-open range [start, end).
func (s Span) Contains(i int) bool {
	return i >= s.start.value && i < s.end.value
}

// String returns the half-open interval notation, e.g. "[1,3)".
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.start.value, s.end.value)
}
