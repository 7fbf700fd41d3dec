// Package ordernumber provides the OrderNumber domain primitive: an order
// reference that is always exactly ten characters. Code holding an OrderNumber
// never needs to re-check its shape, and an OrderNumber cannot be confused
// with an arbitrary string in a function signature.
package ordernumber

import (
	"strings"

	"facette.io/natsort"
	"golang.org/x/text/unicode/norm"

	"github.com/amp-labs/amp-values/result"
	"github.com/amp-labs/amp-values/valid"
)

const length = 10

// OrderNumber is a validated order reference. Instances only exist through
// New or Parse and always carry exactly ten characters.
type OrderNumber struct {
	value string
}

// New validates raw and returns it wrapped as an OrderNumber.
// It fails with an error wrapping valid.ErrValidation when raw is not exactly
// ten characters long.
func New(raw string) (OrderNumber, error) {
	value, err := valid.New(raw, valid.LengthExactly(length))
	if err != nil {
		return OrderNumber{}, err
	}

	return OrderNumber{value: value}, nil
}

// Parse is the total flavor of New: instead of an error it returns a Result
// that the caller must branch on. New and Parse reject exactly the same inputs.
func Parse(raw string) result.Result[OrderNumber] {
	return result.From(New(raw))
}

// Canonical normalizes raw before validation: surrounding whitespace is
// trimmed and the text is folded to Unicode NFKC, which maps full-width
// digits (e.g. from Japanese IME input) to their ASCII equivalents.
// Pass the output to New or Parse.
func Canonical(raw string) string {
	return norm.NFKC.String(strings.TrimSpace(raw))
}

// String returns the order number as entered.
func (n OrderNumber) String() string {
	return n.value
}

// Sort orders the given order numbers in natural order, so embedded numeric
// runs compare by magnitude rather than lexicographically. The slice is
// sorted in place.
func Sort(numbers []OrderNumber) {
	values := make([]string, len(numbers))
	for i, n := range numbers {
		values[i] = n.value
	}

	natsort.Sort(values)

	for i, v := range values {
		numbers[i] = OrderNumber{value: v}
	}
}
