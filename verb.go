package katsuyou

import "fmt"

// VerbType is the conjugation class of a verb.
type VerbType int

const (
	Godan VerbType = iota
	Ichidan
	// Irregular covers する, 来る, 行く, ある and the honorific verbs いらっしゃる,
	// おっしゃる, くださる, ござる and なさる, including compounds such as 勉強する.
	Irregular
)

func (t VerbType) String() string {
	switch t {
	case Godan:
		return "godan"
	case Ichidan:
		return "ichidan"
	case Irregular:
		return "irregular"
	}
	return fmt.Sprintf("VerbType(%d)", int(t))
}

// WordForm is the register of a conjugated form.
type WordForm int

const (
	// Short is the plain register: 食べる, 食べない.
	Short WordForm = iota
	// Long is the polite register: 食べます, 食べません.
	Long
)

func (f WordForm) String() string {
	switch f {
	case Short:
		return "short"
	case Long:
		return "long"
	}
	return fmt.Sprintf("WordForm(%d)", int(f))
}

// godanEndings are the dictionary-form endings of godan verbs.
var godanEndings = map[rune]struct{}{
	'う': {}, 'く': {}, 'ぐ': {}, 'す': {}, 'つ': {}, 'ぬ': {}, 'ぶ': {}, 'む': {}, 'る': {},
}

// Verb is a dictionary-form word whose ending has been validated against its VerbType.
type Verb struct {
	word      Word
	verbType  VerbType
	irregular irregular
}

// NewVerb classifies word as a verb of type t.
func NewVerb(word Word, t VerbType) (Verb, error) {
	if err := validateVerb(word, t); err != nil {
		return Verb{}, err
	}
	return Verb{
		word:      word,
		verbType:  t,
		irregular: detectIrregular(word, t),
	}, nil
}

// IntoVerb classifies w as a verb of type t. The ending must match the type;
// there is no fallback to another class.
func (w Word) IntoVerb(t VerbType) (Verb, error) {
	return NewVerb(w, t)
}

func validateVerb(w Word, t VerbType) error {
	last := lastRune(w.kana)
	if s, ok := Classify(last); !ok || s.Column != ColumnU {
		return fmt.Errorf("%w: %q", ErrNotAVerb, w.kana)
	}

	switch t {
	case Godan:
		if _, ok := godanEndings[last]; !ok {
			return fmt.Errorf("%w: %q cannot end a godan verb", ErrInvalidEnding, w.kana)
		}
		if last == 'る' && precedingColumn(w.kana) == ColumnE && !isGodanException(w) {
			return fmt.Errorf("%w: %q conjugates as an ichidan verb", ErrInvalidEnding, w.kana)
		}
		if detectIrregular(w, t) == regular {
			return validateSpelling(w)
		}
	case Ichidan:
		if last != 'る' {
			return fmt.Errorf("%w: %q does not end in る", ErrInvalidEnding, w.kana)
		}
		if c := precedingColumn(w.kana); c != ColumnI && c != ColumnE {
			return fmt.Errorf("%w: %q needs an i or e column kana before る", ErrInvalidEnding, w.kana)
		}
		return validateSpelling(w)
	case Irregular:
		if detectIrregular(w, t) == regular {
			return fmt.Errorf("%w: %q is not an irregular verb", ErrInvalidEnding, w.kana)
		}
	default:
		return fmt.Errorf("%w: unknown verb type %v", ErrUnsupportedForm, t)
	}
	return nil
}

// validateSpelling checks that the kanji spelling ends with the reading's final kana.
func validateSpelling(w Word) error {
	if w.hasKanji && lastRune(w.kanji) != lastRune(w.kana) {
		return fmt.Errorf("%w: spelling %q does not end in %q", ErrInvalidEnding, w.kanji, lastRune(w.kana))
	}
	return nil
}

// precedingColumn returns the column of the kana before the last one, or -1.
func precedingColumn(kana string) Column {
	rs := []rune(kana)
	if len(rs) < 2 {
		return -1
	}
	s, ok := Classify(rs[len(rs)-2])
	if !ok {
		return -1
	}
	return s.Column
}

func (v Verb) Word() Word {
	return v.word
}

func (v Verb) Type() VerbType {
	return v.verbType
}
