package morphology

import "github.com/kotaroooo0/gojaconv/jaconv"

//go:generate mockgen -source=morphology.go -destination=mock_morphology.go -package=morphology

type Morphology interface {
	Analyze(string) []MorphologyToken
}

type MorphologyToken struct {
	Term     string // 表層形
	Kana     string // 読み(ひらがな)
	BaseForm string // 原形
	Class    string // 活用型 (五段・カ行イ音便, 一段, サ変・スル...)
}

type MorphologyTokenOption func(*MorphologyToken)

func NewMorphologyToken(term, kana string, options ...MorphologyTokenOption) MorphologyToken {
	token := MorphologyToken{
		Term:     term,
		Kana:     jaconv.KatakanaToHiragana(kana),
		BaseForm: term,
	}
	for _, option := range options {
		option(&token)
	}
	return token
}

func SetBaseForm(baseForm string) MorphologyTokenOption {
	return func(t *MorphologyToken) {
		t.BaseForm = baseForm
	}
}

func SetClass(class string) MorphologyTokenOption {
	return func(t *MorphologyToken) {
		t.Class = class
	}
}

// Lemma returns the first token of text. For an inflected verb its BaseForm
// is the dictionary form: 書きました gives 書く.
func Lemma(m Morphology, text string) (MorphologyToken, bool) {
	tokens := m.Analyze(text)
	if len(tokens) == 0 {
		return MorphologyToken{}, false
	}
	return tokens[0], true
}
