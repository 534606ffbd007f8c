package katsuyou

import "strings"

// irregular tags the verbs whose conjugation departs from their class rules.
type irregular int

const (
	regular irregular = iota
	suru              // する, 勉強する
	kuru              // 来る, 遊びに来る
	iku               // 行く, 出ていく
	aru               // ある
	honorific         // いらっしゃる, おっしゃる, くださる, ござる, なさる
)

// ending is the dictionary-form ending of an irregular verb in kana and in kanji.
type ending struct {
	kana  string
	kanji []string
}

var irregularEndings = map[irregular]ending{
	suru: {kana: "する", kanji: []string{"為る"}},
	kuru: {kana: "くる", kanji: []string{"来る"}},
	iku:  {kana: "いく", kanji: []string{"行く"}},
	aru:  {kana: "ある", kanji: []string{"有る", "在る"}},
}

var honorificVerbs = map[string]struct{}{
	"いらっしゃる": {},
	"おっしゃる":  {},
	"くださる":   {},
	"ござる":    {},
	"なさる":    {},
}

// godanExceptions lists godan verbs that end in an e-column kana + る and
// therefore look like ichidan verbs. Keys are readings, values the accepted spellings.
var godanExceptions = map[string][]string{
	"かえる":   {"帰る", "返る", "還る"},
	"へる":    {"減る"},
	"ける":    {"蹴る"},
	"しゃべる":  {"喋る"},
	"すべる":   {"滑る"},
	"てる":    {"照る"},
	"ねる":    {"練る", "煉る"},
	"あせる":   {"焦る"},
	"しげる":   {"茂る"},
	"しめる":   {"湿る"},
	"せる":    {"競る"},
	"ふける":   {"耽る"},
	"ひねる":   {"捻る"},
	"ひるがえる": {"翻る"},
	"くつがえる": {"覆る"},
	"よみがえる": {"蘇る", "甦る"},
	"あざける":  {"嘲る"},
}

// detectIrregular reports which irregular rules apply to w under the declared type.
// する and 来る only count when declared Irregular since 擦る and 繰る are plain godan verbs.
func detectIrregular(w Word, t VerbType) irregular {
	switch t {
	case Irregular:
		for _, k := range []irregular{honorific, aru, suru, kuru, iku} {
			if matchesIrregular(w, k) {
				return k
			}
		}
	case Godan:
		for _, k := range []irregular{honorific, aru, iku} {
			if matchesIrregular(w, k) {
				return k
			}
		}
	}
	return regular
}

func matchesIrregular(w Word, k irregular) bool {
	switch k {
	case honorific:
		_, ok := honorificVerbs[w.kana]
		return ok && (!w.hasKanji || lastRune(w.kanji) == 'る')
	case aru:
		return w.kana == "ある" && w.spelledAs(irregularEndings[aru])
	case iku:
		if !strings.HasSuffix(w.kana, "いく") || !w.spelledAs(irregularEndings[iku]) {
			return false
		}
		if w.hasKanji && strings.HasSuffix(w.kanji, "行く") {
			return true
		}
		return w.kana == "いく" || hasAnySuffix(w.kana, "ていく", "でいく")
	case suru, kuru:
		return strings.HasSuffix(w.kana, irregularEndings[k].kana) && w.spelledAs(irregularEndings[k])
	}
	return false
}

// spelledAs reports whether the kanji spelling, if any, ends in e's kana or one of its kanji.
func (w Word) spelledAs(e ending) bool {
	if !w.hasKanji {
		return true
	}
	return strings.HasSuffix(w.kanji, e.kana) || hasAnySuffix(w.kanji, e.kanji...)
}

func isGodanException(w Word) bool {
	spellings, ok := godanExceptions[w.kana]
	if !ok {
		return false
	}
	if !w.hasKanji || w.kanji == w.kana {
		return true
	}
	for _, s := range spellings {
		if strings.HasSuffix(w.kanji, s) {
			return true
		}
	}
	return false
}

// irregularForm replaces the irregular ending of v with kana in the reading and
// kanji in the spelling. A spelling that writes the ending in kana gets kana.
func (v Verb) irregularForm(kana, kanji string) Word {
	e := irregularEndings[v.irregular]
	n := len([]rune(e.kana))
	if strings.HasSuffix(v.word.kanji, e.kana) {
		kanji = kana
	}
	return v.word.withEnding(n, kana, kanji)
}
