// Package generator produces random passwords from a fixed set of
// character-class modes and keeps a bounded, newest-first history of them.
package generator

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	// MinLength is the shortest password Generate accepts.
	MinLength = 4
	// DefaultCapacity is the history size used when none is configured.
	DefaultCapacity = 10
)

var (
	// ErrInvalidLength is returned when the requested length is below MinLength.
	ErrInvalidLength = errors.New("invalid password length")
	// ErrUnknownMode is returned for a mode outside the known variants.
	ErrUnknownMode = errors.New("unknown generation mode")
)

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Generator creates passwords and records them in its history.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Generator struct {
	history  []string
	capacity int
	src      Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithCapacity sets the history bound. Values below 1 keep the default.
func WithCapacity(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// WithSource replaces the random source, e.g. with a seeded PCG in tests.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// New returns a Generator with an empty history. The default source is
// ChaCha8 seeded from crypto/rand.
func New(opts ...Option) *Generator {
	g := &Generator{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = newSecureSource()
	}
	g.history = make([]string, 0, g.capacity)
	return g
}

func newSecureSource() *rand.Rand {
	var seed [32]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// Generate draws length characters uniformly, with replacement, from the
// alphabet of mode and pushes the result to the front of the history.
// Validation happens before anything is recorded.
func (g *Generator) Generate(length int, mode Mode) (string, error) {
	if length < MinLength {
		return "", fmt.Errorf("%w: %d is shorter than %d", ErrInvalidLength, length, MinLength)
	}
	alphabet, err := Alphabet(mode)
	if err != nil {
		return "", err
	}

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[g.src.IntN(len(alphabet))]
	}
	password := string(buf)

	g.push(password)
	return password, nil
}

// push inserts at index 0 and drops the oldest entry past capacity.
func (g *Generator) push(password string) {
	g.history = append(g.history, "")
	copy(g.history[1:], g.history)
	g.history[0] = password
	if len(g.history) > g.capacity {
		g.history[g.capacity] = ""
		g.history = g.history[:g.capacity]
	}
}

// History returns a copy of the recorded passwords, newest first.
func (g *Generator) History() []string {
	out := make([]string, len(g.history))
	copy(out, g.history)
	return out
}

// ClearHistory removes every recorded password.
func (g *Generator) ClearHistory() {
	clear(g.history)
	g.history = g.history[:0]
}

// Capacity returns the maximum number of history entries.
func (g *Generator) Capacity() int {
	return g.capacity
}

// AvailableModes returns the supported modes in display order.
func (g *Generator) AvailableModes() []Mode {
	return Modes()
}

// ModeDescription returns the label for mode, or ("", false) when mode is
// not recognized. Unlike Generate it never fails.
func (g *Generator) ModeDescription(mode Mode) (string, bool) {
	return Describe(mode)
}
