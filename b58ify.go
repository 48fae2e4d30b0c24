// Package b58ify conditions user provided strings so that they can be used as seeds for Base58 based
// address derivation, like Solana program derived addresses(PDAs).
//
// It is not a Base58 encoder. Input is restricted to the ASCII letters and the digits 1-9,
// after which the visually ambiguous `O` and `l` are folded into `o` and `L`.
// Distinct inputs can therefore map to the same seed; eg `Oops` and `oops`.
package b58ify

import (
	"fmt"
	"strings"

	"github.com/komuw/b58ify/errors"
	"github.com/mr-tron/base58"
)

// ErrInvalidCharacter is reported when the input contains a character outside the accepted alphabet.
// Use [errors.Is] to check for it, and [errors.As] with an [*InvalidCharacterError] to find which character.
var ErrInvalidCharacter = errors.New("b58ify: invalid character") //nolint:gochecknoglobals

// InvalidCharacterError describes the first rejected character of an input.
type InvalidCharacterError struct {
	// Char is the rejected character. It is [utf8.RuneError] for invalid UTF-8.
	Char rune
	// Index is the byte offset of Char in the input.
	Index int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("b58ify: invalid character %q at index %d", e.Char, e.Index)
}

// Is reports whether target is [ErrInvalidCharacter].
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// Transform validates input and returns its conditioned form.
//
// Every character of input has to be an ASCII letter or one of the digits 1-9, otherwise an error matching
// [ErrInvalidCharacter] is returned and no output is produced.
// In the output, `O` is replaced with `o` and `l` is replaced with `L`; all other characters are copied as is.
// The output is always the same length as input. An empty input is valid.
func Transform(input string) (string, error) {
	t := alphabetTable()

	var b strings.Builder
	b.Grow(len(input))
	for i, c := range input {
		if !t.contains(c) {
			return "", errors.Wrap(&InvalidCharacterError{Char: c, Index: i})
		}
		b.WriteByte(remap(byte(c)))
	}

	return b.String(), nil
}

// MustTransform is like [Transform] but panics if input is not valid.
// It is meant for seeds that are fixed at compile time.
func MustTransform(input string) string {
	s, err := Transform(input)
	if err != nil {
		panic(err)
	}
	return s
}

// Valid reports whether [Transform] would accept input.
func Valid(input string) bool {
	t := alphabetTable()
	for _, c := range input {
		if !t.contains(c) {
			return false
		}
	}
	return true
}

// Strict reports whether seed is also made up only of characters from the Base58 alphabet used by bitcoin and solana.
// The output of [Transform] is not guaranteed to be; it may contain `I`.
// An empty seed is not strict.
func Strict(seed string) bool {
	if seed == "" {
		return false
	}
	_, err := base58.Decode(seed)
	return err == nil
}

func remap(c byte) byte {
	switch c {
	case 'O':
		return 'o'
	case 'l':
		return 'L'
	default:
		return c
	}
}
