package katsuyou

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReading is returned when a reading is empty or contains non-kana characters.
	ErrInvalidReading = errors.New("invalid reading")
	// ErrInvalidEnding is returned when a word's ending does not match its declared class.
	ErrInvalidEnding = errors.New("invalid ending")
	// ErrUnsupportedForm is returned when no rule exists for the requested form.
	ErrUnsupportedForm = errors.New("unsupported form")
	// ErrNotShiftable is returned when a kana has no row to shift within.
	ErrNotShiftable = errors.New("not shiftable")

	ErrNotAVerb       = fmt.Errorf("not a verb: %w", ErrInvalidEnding)
	ErrNotAnAdjective = fmt.Errorf("not an adjective: %w", ErrInvalidEnding)
)
