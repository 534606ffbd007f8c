package morphology

import (
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	kagome *tokenizer.Tokenizer
}

func NewKagome() (*Kagome, error) {
	tokenizer, err := tokenizer.New(ipaneologd.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{
		kagome: tokenizer,
	}, nil
}

// IPA features: 品詞, 品詞細分類1, 品詞細分類2, 品詞細分類3, 活用型, 活用形, 原形, 読み, 発音
const (
	featureClass    = 4
	featureBaseForm = 6
	featureReading  = 7
)

func (k *Kagome) Analyze(text string) []MorphologyToken {
	tokens := k.kagome.Analyze(text, tokenizer.Search)
	kagomeTokens := make([]MorphologyToken, 0, len(tokens))
	for _, token := range tokens {
		features := token.Features()
		if len(features) > 1 && features[1] == "空白" {
			continue
		}
		kana := token.Surface
		if len(features) > featureReading {
			kana = features[featureReading]
		}
		var options []MorphologyTokenOption
		if len(features) > featureBaseForm && features[featureBaseForm] != "*" {
			options = append(options, SetBaseForm(features[featureBaseForm]))
		}
		if len(features) > featureClass && features[featureClass] != "*" {
			options = append(options, SetClass(features[featureClass]))
		}
		kagomeTokens = append(kagomeTokens, NewMorphologyToken(token.Surface, kana, options...))
	}
	return kagomeTokens
}
