package generator

import (
	"fmt"
	"strings"
)

// Mode selects the character alphabet a password is drawn from.
type Mode string

const (
	LettersOnly   Mode = "letters"
	LettersDigits Mode = "letters-digits"
	Full          Mode = "full"
	Readable      Mode = "readable"
)

const (
	letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Ambiguous holds the characters Readable mode never emits.
	Ambiguous = "il1IoO0"
)

// modes lists every variant in display order.
var modes = []Mode{LettersOnly, LettersDigits, Full, Readable}

var descriptions = map[Mode]string{
	LettersOnly:   "Upper and lower case letters only",
	LettersDigits: "Letters and digits",
	Full:          "Letters, digits and special characters",
	Readable:      "Easy to read (no look-alike characters)",
}

var alphabets = map[Mode]string{
	LettersOnly:   letters,
	LettersDigits: letters + digits,
	Full:          letters + digits + punctuation,
	Readable:      stripChars(letters+digits, Ambiguous),
}

func stripChars(s, drop string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(drop, r) {
			return -1
		}
		return r
	}, s)
}

// Valid reports whether m is one of the known variants.
func (m Mode) Valid() bool {
	_, ok := alphabets[m]
	return ok
}

func (m Mode) String() string {
	return string(m)
}

// Modes returns the known variants in display order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// Alphabet returns the characters a password in mode may contain.
func Alphabet(mode Mode) (string, error) {
	a, ok := alphabets[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
	return a, nil
}

// Describe returns a human-readable label for mode.
// Unknown modes yield ("", false).
func Describe(mode Mode) (string, bool) {
	d, ok := descriptions[mode]
	return d, ok
}

// ParseMode converts a config or flag value into a Mode. Matching is
// case-insensitive and ignores surrounding whitespace; underscores are
// accepted in place of hyphens.
func ParseMode(s string) (Mode, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "_", "-")
	m := Mode(norm)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

// Next returns the mode after m in display order, wrapping around.
// Unknown modes return the first variant.
func (m Mode) Next() Mode {
	for i, v := range modes {
		if v == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}
