// Package groupcode generates and normalizes group join codes.
//
// A generated code is three uppercase letters followed by three digits
// (e.g. "QZK408"). Joining only requires six characters, so codes typed by
// users are normalized and length-checked but not shape-checked.
package groupcode

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Length is the number of characters in a join code.
const Length = 6

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
)

var generatedShape = regexp.MustCompile(`^[A-Z]{3}[0-9]{3}$`)

// Generate returns a new code. Each character is drawn uniformly at random;
// uniqueness is the store's concern.
func Generate() string {
	var b [Length]byte
	for i := 0; i < 3; i++ {
		b[i] = letters[rand.IntN(len(letters))]
	}
	for i := 3; i < Length; i++ {
		b[i] = digits[rand.IntN(len(digits))]
	}
	return string(b[:])
}

// IsGenerated reports whether code has the shape Generate produces.
func IsGenerated(code string) bool {
	return generatedShape.MatchString(code)
}

// Normalize trims surrounding whitespace and uppercases code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Valid reports whether a normalized code has the join length, counted in
// characters rather than bytes.
func Valid(code string) bool {
	return utf8.RuneCountInString(code) == Length
}
