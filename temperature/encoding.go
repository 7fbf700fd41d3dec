package temperature

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned when a serialized temperature cannot be parsed.
var ErrMalformed = errors.New("malformed temperature")

// Parse reads the textual form produced by String: a decimal magnitude
// followed by a "C" or "F" suffix, e.g. "21.5C" or "72F".
func Parse(text string) (Temperature, error) {
	text = strings.TrimSpace(text)
	if len(text) < 2 {
		return Temperature{}, fmt.Errorf("%w: %q", ErrMalformed, text)
	}

	var unit Unit

	switch text[len(text)-1] {
	case 'C', 'c':
		unit = Celsius
	case 'F', 'f':
		unit = Fahrenheit
	default:
		return Temperature{}, fmt.Errorf("%w: %q has no C or F suffix", ErrMalformed, text)
	}

	degrees, err := strconv.ParseFloat(strings.TrimSpace(text[:len(text)-1]), 64)
	if err != nil {
		return Temperature{}, fmt.Errorf("%w: %q: %w", ErrMalformed, text, err)
	}

	return Temperature{degrees: degrees, unit: unit}, nil
}

// MarshalText implements encoding.TextMarshaler, which also covers JSON.
func (t Temperature) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, which also covers JSON.
func (t *Temperature) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler. Temperatures serialize to their
// textual form, e.g. "21.5C".
func (t Temperature) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Temperature) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}

	return t.UnmarshalText([]byte(text))
}
