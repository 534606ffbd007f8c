package katsuyou

import (
	"fmt"
	"strings"
	"unicode"
)

// Word is a single morphological form: a kana reading and an optional kanji spelling.
// A Word is never modified; every transformation returns a new one.
type Word struct {
	kana     string
	kanji    string
	hasKanji bool
}

type wordConfig struct {
	kanji       string
	charFilters []CharFilter
}

type WordOption func(*wordConfig)

// WithKanji sets the kanji spelling of the word. An empty spelling is ignored.
func WithKanji(kanji string) WordOption {
	return func(c *wordConfig) {
		c.kanji = kanji
	}
}

// WithCharFilters adds filters applied to the reading after the built-in normalization.
func WithCharFilters(filters ...CharFilter) WordOption {
	return func(c *wordConfig) {
		c.charFilters = append(c.charFilters, filters...)
	}
}

// NewWord builds a word from its reading. Katakana and half-width readings are
// normalized to hiragana; anything else that is not kana fails with ErrInvalidReading.
func NewWord(kana string, options ...WordOption) (Word, error) {
	var c wordConfig
	for _, option := range options {
		option(&c)
	}

	kana = applyCharFilters(kana, kanaCharFilters)
	kana = applyCharFilters(kana, c.charFilters)
	if err := validateReading(kana); err != nil {
		return Word{}, err
	}

	w := Word{kana: kana}
	if c.kanji != "" {
		w.kanji = applyCharFilters(c.kanji, kanjiCharFilters)
		w.hasKanji = true
	}
	return w, nil
}

func validateReading(kana string) error {
	if kana == "" {
		return fmt.Errorf("%w: empty", ErrInvalidReading)
	}
	for _, r := range kana {
		if r == 'ー' || unicode.Is(unicode.Hiragana, r) {
			continue
		}
		return fmt.Errorf("%w: %q contains %q", ErrInvalidReading, kana, r)
	}
	return nil
}

func (w Word) Kana() string {
	return w.kana
}

func (w Word) Kanji() (string, bool) {
	return w.kanji, w.hasKanji
}

// Reading returns the kanji spelling if there is one, otherwise the kana.
func (w Word) Reading() string {
	if w.hasKanji {
		return w.kanji
	}
	return w.kana
}

func (w Word) String() string {
	return w.Reading()
}

// ReplaceSuffix drops the last n characters of the reading and appends suffix.
// The kanji spelling is rewritten the same way; it must end with the same n
// characters as the reading, otherwise ErrInvalidEnding is returned.
func (w Word) ReplaceSuffix(n int, suffix string) (Word, error) {
	_, kanaTail, ok := splitTail(w.kana, n)
	if !ok {
		return Word{}, fmt.Errorf("%w: cannot drop %d characters from %q", ErrInvalidEnding, n, w.kana)
	}
	if w.hasKanji {
		if _, kanjiTail, ok := splitTail(w.kanji, n); !ok || kanjiTail != kanaTail {
			return Word{}, fmt.Errorf("%w: spelling %q does not end in %q", ErrInvalidEnding, w.kanji, kanaTail)
		}
	}
	return w.withEnding(n, suffix, suffix), nil
}

// Append returns the word with suffix added to both reading and spelling.
func (w Word) Append(suffix string) Word {
	return w.withEnding(0, suffix, suffix)
}

// withEnding drops the last n characters of both fields and appends kana to
// the reading and kanji to the spelling.
func (w Word) withEnding(n int, kana, kanji string) Word {
	head, _, _ := splitTail(w.kana, n)
	r := Word{kana: head + kana}
	if w.hasKanji {
		head, _, _ := splitTail(w.kanji, n)
		r.kanji = head + kanji
		r.hasKanji = true
	}
	return r
}

func splitTail(s string, n int) (string, string, bool) {
	rs := []rune(s)
	if n < 0 || n > len(rs) {
		return s, "", false
	}
	return string(rs[:len(rs)-n]), string(rs[len(rs)-n:]), true
}

func lastRune(s string) rune {
	rs := []rune(s)
	if len(rs) == 0 {
		return 0
	}
	return rs[len(rs)-1]
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
