// SPDX-License-Identifier: MIT

// Package symbol maps classifier labels onto the two board symbols and
// tracks whose drawing is expected next.
package symbol

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLabel is returned for a label that names no symbol.
	ErrUnknownLabel = errors.New("symbol: unknown label")

	// ErrDrawingRejected is returned when a drawing is not the expected
	// player's symbol.
	ErrDrawingRejected = errors.New("symbol: drawing rejected")
)

// Symbol is a board mark.
type Symbol int

const (
	// None is the zero value: no symbol yet.
	None Symbol = iota
	// O is classifier label 0.
	O
	// X is classifier label 1.
	X
)

// FromLabel converts a classifier label.
func FromLabel(label int) (Symbol, error) {
	switch label {
	case 0:
		return O, nil
	case 1:
		return X, nil
	default:
		return None, fmt.Errorf("label %d: %w", label, ErrUnknownLabel)
	}
}

// Label returns the classifier label of s, or -1 for None.
func (s Symbol) Label() int {
	switch s {
	case O:
		return 0
	case X:
		return 1
	default:
		return -1
	}
}

// Other returns the opposing symbol; None stays None.
func (s Symbol) Other() Symbol {
	switch s {
	case O:
		return X
	case X:
		return O
	default:
		return None
	}
}

// String implements fmt.Stringer.
func (s Symbol) String() string {
	switch s {
	case O:
		return "O"
	case X:
		return "X"
	default:
		return ""
	}
}

// Turn tracks the expected symbol. The zero value waits for the first
// drawing, which decides who starts. Not safe for concurrent use.
type Turn struct {
	current Symbol
}

// Current returns the symbol expected next, or None before the first move.
func (t *Turn) Current() Symbol { return t.current }

// Accept checks a predicted label against the expected symbol. On a match
// it returns the placed symbol and passes the turn; otherwise it returns
// ErrDrawingRejected and the turn is unchanged.
func (t *Turn) Accept(label int) (Symbol, error) {
	s, err := FromLabel(label)
	if err != nil {
		return None, fmt.Errorf("%w: %w", ErrDrawingRejected, err)
	}
	if t.current == None {
		t.current = s
	}
	if s != t.current {
		return None, fmt.Errorf("drew %s, expected %s: %w", s, t.current, ErrDrawingRejected)
	}
	t.current = s.Other()

	return s, nil
}

// Reset forgets who started.
func (t *Turn) Reset() { t.current = None }
