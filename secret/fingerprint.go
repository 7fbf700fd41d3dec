package secret

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns a short, stable, non-reversing digest of the wrapped
// value, hex-encoded. Two Values wrap the same secret exactly when their
// fingerprints match, which makes the fingerprint safe to log or compare for
// correlation. Computing it does not consume the value.
//
// The digest is 64 bits of xxh3, a non-cryptographic hash: it resists
// accidental disclosure, not a determined attacker with a small input space.
func (v *Value[T]) Fingerprint() string {
	return fmt.Sprintf("%016x", xxh3.HashString(fmt.Sprintf("%v", v.value)))
}
