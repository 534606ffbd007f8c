package katsuyou

import (
	"fmt"
	"strings"
)

// AdjectiveType is the conjugation class of an adjective.
type AdjectiveType int

const (
	// IAdjective ends in い and conjugates itself: 高い, 高くない.
	IAdjective AdjectiveType = iota
	// NaAdjective is given without な and conjugates through the copula: 静か, 静かだ.
	NaAdjective
)

func (t AdjectiveType) String() string {
	switch t {
	case IAdjective:
		return "i-adjective"
	case NaAdjective:
		return "na-adjective"
	}
	return fmt.Sprintf("AdjectiveType(%d)", int(t))
}

// Adjective is a word validated against its AdjectiveType.
type Adjective struct {
	word          Word
	adjectiveType AdjectiveType
}

// NewAdjective classifies word as an adjective of type t.
func NewAdjective(word Word, t AdjectiveType) (Adjective, error) {
	if word.kana == "" {
		return Adjective{}, fmt.Errorf("%w: empty reading", ErrNotAnAdjective)
	}
	switch t {
	case IAdjective:
		if lastRune(word.kana) != 'い' {
			return Adjective{}, fmt.Errorf("%w: %q does not end in い", ErrNotAnAdjective, word.kana)
		}
		if word.hasKanji && lastRune(word.kanji) != 'い' {
			return Adjective{}, fmt.Errorf("%w: spelling %q does not end in い", ErrInvalidEnding, word.kanji)
		}
	case NaAdjective:
		if hasAnySuffix(word.kana, "な", "だ") {
			return Adjective{}, fmt.Errorf("%w: %q must be given without な or だ", ErrInvalidEnding, word.kana)
		}
	default:
		return Adjective{}, fmt.Errorf("%w: unknown adjective type %v", ErrUnsupportedForm, t)
	}
	return Adjective{word: word, adjectiveType: t}, nil
}

// IntoAdjective classifies w as an adjective of type t.
func (w Word) IntoAdjective(t AdjectiveType) (Adjective, error) {
	return NewAdjective(w, t)
}

func (a Adjective) Word() Word {
	return a.word
}

func (a Adjective) Type() AdjectiveType {
	return a.adjectiveType
}

// yoiAdjectives conjugate on よ: いい becomes よくない, よかった.
var yoiAdjectives = []string{"いい", "かっこいい"}

// Stem returns the stem without its inflecting ending: 高, 静か. It is the same for both registers.
func (a Adjective) Stem(form WordForm) (Word, error) {
	if err := checkWordForm(form); err != nil {
		return Word{}, err
	}
	if a.adjectiveType == NaAdjective {
		return a.word, nil
	}
	return a.iStem(), nil
}

func (a Adjective) iStem() Word {
	w := a.word
	if !a.isYoi() {
		return w.withEnding(1, "", "")
	}
	stem := Word{kana: strings.TrimSuffix(w.kana, "いい") + "よ"}
	if w.hasKanji {
		stem.hasKanji = true
		if strings.HasSuffix(w.kanji, "いい") {
			stem.kanji = strings.TrimSuffix(w.kanji, "いい") + "よ"
		} else {
			// 良い keeps its kanji: 良くない.
			stem.kanji = strings.TrimSuffix(w.kanji, "い")
		}
	}
	return stem
}

func (a Adjective) isYoi() bool {
	for _, y := range yoiAdjectives {
		if a.word.kana == y {
			return true
		}
	}
	return false
}

// Dictionary returns 高い / 高いです, 静かだ / 静かです.
func (a Adjective) Dictionary(form WordForm) (Word, error) {
	if err := checkWordForm(form); err != nil {
		return Word{}, err
	}
	suffixes := [2]string{"", "です"}
	if a.adjectiveType == NaAdjective {
		suffixes = [2]string{"だ", "です"}
	}
	return a.word.Append(suffixes[form]), nil
}

// Attributive returns the form used before a noun: 高い, 静かな.
func (a Adjective) Attributive() (Word, error) {
	if a.adjectiveType == NaAdjective {
		return a.word.Append("な"), nil
	}
	return a.word, nil
}

// Negative returns 高くない / 高くありません, 静かじゃない / 静かじゃありません.
func (a Adjective) Negative(form WordForm) (Word, error) {
	return a.conjugate(form, [2]string{"くない", "くありません"}, [2]string{"じゃない", "じゃありません"})
}

// Past returns 高かった / 高かったです, 静かだった / 静かでした.
func (a Adjective) Past(form WordForm) (Word, error) {
	return a.conjugate(form, [2]string{"かった", "かったです"}, [2]string{"だった", "でした"})
}

// NegativePast returns 高くなかった / 高くありませんでした, 静かじゃなかった / 静かじゃありませんでした.
func (a Adjective) NegativePast(form WordForm) (Word, error) {
	return a.conjugate(form, [2]string{"くなかった", "くありませんでした"}, [2]string{"じゃなかった", "じゃありませんでした"})
}

// TeForm returns 高くて, 静かで.
func (a Adjective) TeForm() (Word, error) {
	return a.conjugate(Short, [2]string{"くて"}, [2]string{"で"})
}

// NegativeTeForm returns 高くなくて, 静かじゃなくて.
func (a Adjective) NegativeTeForm() (Word, error) {
	return a.conjugate(Short, [2]string{"くなくて"}, [2]string{"じゃなくて"})
}

// Adverb returns the adverbial form: 高く, 静かに.
func (a Adjective) Adverb() (Word, error) {
	return a.conjugate(Short, [2]string{"く"}, [2]string{"に"})
}

// Ba returns the conditional form: 高ければ, 静かなら.
func (a Adjective) Ba() (Word, error) {
	return a.conjugate(Short, [2]string{"ければ"}, [2]string{"なら"})
}

// conjugate appends the suffix for form to the i-adjective stem or to the na-adjective.
func (a Adjective) conjugate(form WordForm, i, na [2]string) (Word, error) {
	if err := checkWordForm(form); err != nil {
		return Word{}, fmt.Errorf("%q: %w", a.word.kana, err)
	}
	if a.adjectiveType == NaAdjective {
		return a.word.Append(na[form]), nil
	}
	return a.iStem().Append(i[form]), nil
}

func checkWordForm(form WordForm) error {
	if form != Short && form != Long {
		return fmt.Errorf("%w: %v", ErrUnsupportedForm, form)
	}
	return nil
}
