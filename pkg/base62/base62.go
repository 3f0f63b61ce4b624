// Package base62 converts nonnegative integers to and from their textual
// form in a positional base-62 numeral system.
//
// The default alphabet is digits, then lowercase, then uppercase letters
// (0-9a-zA-Z); an alternate 62-character alphabet can be supplied at
// construction. Zero encodes to the empty string and the empty string
// decodes to zero.
package base62

import (
	"errors"
	"fmt"
)

// DefaultAlphabet orders digits, then lowercase, then uppercase letters.
const DefaultAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// maxEncodedLen bounds the base62 form of an int64: 62^10 < 2^63 <= 62^11.
const maxEncodedLen = 11

var (
	// ErrInvalidAlphabet is returned by New when the supplied alphabet is
	// not exactly 62 characters long.
	ErrInvalidAlphabet = errors.New("alphabet must contain exactly 62 characters")

	// ErrInvalidInput is returned by Encode for negative values and by
	// Decode for characters outside the codec's alphabet.
	ErrInvalidInput = errors.New("invalid input")
)

// Codec converts int64 values to and from base62 text over a fixed
// 62-character alphabet. The alphabet is never mutated after New, so a
// single Codec may be shared by any number of goroutines.
type Codec struct {
	alphabet string
	digits   [256]int16 // byte -> digit value, -1 when absent
}

// New builds a Codec over alphabet; the character at position i carries
// digit value i. Duplicate characters are not rejected: with duplicates,
// Decode resolves a character to its first occurrence, so encode/decode
// round-trips become ambiguous. Callers wanting unambiguous codecs must
// supply 62 distinct characters.
func New(alphabet string) (*Codec, error) {
	if len(alphabet) != 62 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidAlphabet, len(alphabet))
	}

	c := &Codec{alphabet: alphabet}
	for i := range c.digits {
		c.digits[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		if c.digits[alphabet[i]] == -1 {
			c.digits[alphabet[i]] = int16(i)
		}
	}
	return c, nil
}

// MustNew is New that panics on a bad alphabet.
func MustNew(alphabet string) *Codec {
	c, err := New(alphabet)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCodec = MustNew(DefaultAlphabet)

// Default returns the shared codec over DefaultAlphabet.
func Default() *Codec { return defaultCodec }

// Alphabet returns the codec's alphabet.
func (c *Codec) Alphabet() string { return c.alphabet }

// Encode renders a nonnegative value in base62, most significant digit
// first. Zero encodes to the empty string.
func (c *Codec) Encode(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: value must be nonnegative", ErrInvalidInput)
	}

	var buf [maxEncodedLen]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = c.alphabet[n%62]
		n /= 62
	}
	return string(buf[i:]), nil
}

// Decode evaluates base62 text as an int64; the empty string decodes to
// zero. The first character outside the alphabet fails the whole call with
// ErrInvalidInput naming that character. Magnitudes past the int64 range
// wrap silently per two's-complement arithmetic.
func (c *Codec) Decode(s string) (int64, error) {
	var n int64
	for i := 0; i < len(s); i++ {
		d := c.digits[s[i]]
		if d < 0 {
			return 0, fmt.Errorf("%w: invalid character(s) in string: %c", ErrInvalidInput, s[i])
		}
		n = n*62 + int64(d)
	}
	return n, nil
}

// Encode renders n using the default alphabet.
func Encode(n int64) (string, error) { return defaultCodec.Encode(n) }

// Decode evaluates s using the default alphabet.
func Decode(s string) (int64, error) { return defaultCodec.Decode(s) }
