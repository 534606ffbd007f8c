package katsuyou

import "fmt"

// euphony is the sound change a godan ending undergoes before た and て.
type euphony struct {
	sound  string
	voiced bool
}

var euphonies = map[rune]euphony{
	'く': {sound: "い"},
	'ぐ': {sound: "い", voiced: true},
	'す': {sound: "し"},
	'つ': {sound: "っ"},
	'る': {sound: "っ"},
	'う': {sound: "っ"},
	'ぬ': {sound: "ん", voiced: true},
	'ぶ': {sound: "ん", voiced: true},
	'む': {sound: "ん", voiced: true},
}

// Stem returns the stem the register's suffixes attach to: the a column
// (negative) stem for Short, 知ら, and the i column (polite) stem for Long, 知り.
func (v Verb) Stem(form WordForm) (Word, error) {
	switch form {
	case Short:
		return v.naiStem()
	case Long:
		return v.masuStem()
	}
	return Word{}, unsupported(v, "stem", form)
}

// Dictionary returns the dictionary form: 知る, 知ります.
func (v Verb) Dictionary(form WordForm) (Word, error) {
	switch form {
	case Short:
		return v.word, nil
	case Long:
		return v.masu("ます")
	}
	return Word{}, unsupported(v, "dictionary", form)
}

// Negative returns the negative form: 知らない, 知りません.
func (v Verb) Negative(form WordForm) (Word, error) {
	switch form {
	case Short:
		// ない has no kanji spelling
		if v.irregular == aru {
			return Word{kana: "ない"}, nil
		}
		return v.nai("ない")
	case Long:
		return v.masu("ません")
	}
	return Word{}, unsupported(v, "negative", form)
}

// Past returns the past form: 知った, 知りました.
func (v Verb) Past(form WordForm) (Word, error) {
	switch form {
	case Short:
		return v.euphonic('た')
	case Long:
		return v.masu("ました")
	}
	return Word{}, unsupported(v, "past", form)
}

// NegativePast returns the negative past form: 知らなかった, 知りませんでした.
func (v Verb) NegativePast(form WordForm) (Word, error) {
	switch form {
	case Short:
		if v.irregular == aru {
			return Word{kana: "なかった"}, nil
		}
		return v.nai("なかった")
	case Long:
		return v.masu("ませんでした")
	}
	return Word{}, unsupported(v, "negative past", form)
}

// TeForm returns the te form: 知って. It has no polite variant.
func (v Verb) TeForm() (Word, error) {
	return v.euphonic('て')
}

// NegativeTeForm returns the negative te form: 知らなくて.
func (v Verb) NegativeTeForm() (Word, error) {
	negative, err := v.Negative(Short)
	if err != nil {
		return Word{}, err
	}
	return negative.ReplaceSuffix(1, "くて")
}

// Potential returns the potential form: 知れる, 知れます.
func (v Verb) Potential(form WordForm) (Word, error) {
	switch form {
	case Short:
		return v.potential("る")
	case Long:
		return v.potential("ます")
	}
	return Word{}, unsupported(v, "potential", form)
}

// NegativePotential returns the negative potential form: 知れない, 知れません.
func (v Verb) NegativePotential(form WordForm) (Word, error) {
	switch form {
	case Short:
		return v.potential("ない")
	case Long:
		return v.potential("ません")
	}
	return Word{}, unsupported(v, "negative potential", form)
}

// Imperative returns the plain imperative: 書け, 食べろ, しろ, 来い.
func (v Verb) Imperative() (Word, error) {
	switch v.irregular {
	case suru:
		return v.irregularForm("しろ", "為ろ"), nil
	case kuru:
		return v.irregularForm("こい", "来い"), nil
	case honorific:
		return v.word.ReplaceSuffix(1, "い")
	}
	if v.verbType == Ichidan {
		return v.word.ReplaceSuffix(1, "ろ")
	}
	return v.godanShift(ColumnE, "")
}

// NegativeImperative returns the prohibitive form: 書くな.
func (v Verb) NegativeImperative() (Word, error) {
	return v.word.Append("な"), nil
}

// Causative returns the causative form: 書かせる, 食べさせる.
func (v Verb) Causative() (Word, error) {
	switch v.irregular {
	case suru:
		return v.irregularForm("させる", "為せる"), nil
	case kuru:
		return v.irregularForm("こさせる", "来させる"), nil
	}
	if v.verbType == Ichidan {
		return v.word.ReplaceSuffix(1, "させる")
	}
	return v.nai("せる")
}

// NegativeCausative returns the negative causative form: 書かせない.
func (v Verb) NegativeCausative() (Word, error) {
	return v.negated(v.Causative)
}

// Passive returns the passive form: 書かれる, 食べられる.
func (v Verb) Passive() (Word, error) {
	switch v.irregular {
	case suru:
		return v.irregularForm("される", "為れる"), nil
	case kuru:
		return v.irregularForm("こられる", "来られる"), nil
	}
	if v.verbType == Ichidan {
		return v.word.ReplaceSuffix(1, "られる")
	}
	return v.nai("れる")
}

// NegativePassive returns the negative passive form: 書かれない.
func (v Verb) NegativePassive() (Word, error) {
	return v.negated(v.Passive)
}

// CausativePassive returns the causative passive form: 書かされる, 話させられる, 食べさせられる.
func (v Verb) CausativePassive() (Word, error) {
	switch v.irregular {
	case suru:
		return v.irregularForm("させられる", "為せられる"), nil
	case kuru:
		return v.irregularForm("こさせられる", "来させられる"), nil
	}
	if v.verbType == Ichidan {
		return v.word.ReplaceSuffix(1, "させられる")
	}
	// さされる is avoided for す verbs.
	if lastRune(v.word.kana) == 'す' {
		return v.nai("せられる")
	}
	return v.nai("される")
}

// NegativeCausativePassive returns the negative causative passive form: 書かされない.
func (v Verb) NegativeCausativePassive() (Word, error) {
	return v.negated(v.CausativePassive)
}

// Tara returns the conditional tara form: 書いたら.
func (v Verb) Tara() (Word, error) {
	past, err := v.Past(Short)
	if err != nil {
		return Word{}, err
	}
	return past.Append("ら"), nil
}

// NegativeTara returns the negative tara form: 書かなかったら.
func (v Verb) NegativeTara() (Word, error) {
	past, err := v.NegativePast(Short)
	if err != nil {
		return Word{}, err
	}
	return past.Append("ら"), nil
}

// Ba returns the conditional ba form: 書けば, 食べれば, すれば, 来れば.
func (v Verb) Ba() (Word, error) {
	switch v.irregular {
	case suru:
		return v.irregularForm("すれば", "為れば"), nil
	case kuru:
		return v.irregularForm("くれば", "来れば"), nil
	}
	if v.verbType == Ichidan {
		return v.word.ReplaceSuffix(1, "れば")
	}
	return v.godanShift(ColumnE, "ば")
}

// NegativeBa returns the negative ba form: 書かなければ.
func (v Verb) NegativeBa() (Word, error) {
	negative, err := v.Negative(Short)
	if err != nil {
		return Word{}, err
	}
	return negative.ReplaceSuffix(1, "ければ")
}

// Volitional returns the volitional form: 書こう, 書きましょう.
func (v Verb) Volitional(form WordForm) (Word, error) {
	switch form {
	case Short:
		switch v.irregular {
		case suru:
			return v.irregularForm("しよう", "為よう"), nil
		case kuru:
			return v.irregularForm("こよう", "来よう"), nil
		}
		if v.verbType == Ichidan {
			return v.word.ReplaceSuffix(1, "よう")
		}
		return v.godanShift(ColumnO, "う")
	case Long:
		return v.masu("ましょう")
	}
	return Word{}, unsupported(v, "volitional", form)
}

// NegativeVolitional returns the negative volitional form: 書くまい.
func (v Verb) NegativeVolitional() (Word, error) {
	return v.word.Append("まい"), nil
}

// Zu returns the literary negative form: 書かず, せず.
func (v Verb) Zu() (Word, error) {
	if v.irregular == suru {
		return v.irregularForm("せず", "為ず"), nil
	}
	return v.nai("ず")
}

// Desiderative returns the desiderative form: 書きたい.
func (v Verb) Desiderative() (Word, error) {
	return v.masu("たい")
}

// NegativeDesiderative returns the negative desiderative form: 書きたくない.
func (v Verb) NegativeDesiderative() (Word, error) {
	return v.masu("たくない")
}

// naiStem is the stem ない attaches to.
func (v Verb) naiStem() (Word, error) {
	switch v.irregular {
	case suru:
		return v.irregularForm("し", "為"), nil
	case kuru:
		return v.irregularForm("こ", "来"), nil
	}
	if v.verbType == Ichidan {
		return v.word.ReplaceSuffix(1, "")
	}
	return v.godanShift(ColumnA, "")
}

// masuStem is the stem ます attaches to.
func (v Verb) masuStem() (Word, error) {
	switch v.irregular {
	case suru:
		return v.irregularForm("し", "為"), nil
	case kuru:
		return v.irregularForm("き", "来"), nil
	case honorific:
		return v.word.ReplaceSuffix(1, "い")
	}
	if v.verbType == Ichidan {
		return v.word.ReplaceSuffix(1, "")
	}
	return v.godanShift(ColumnI, "")
}

// potentialStem is the stem potential suffixes attach to.
func (v Verb) potentialStem() (Word, error) {
	switch v.irregular {
	case suru:
		return v.irregularForm("でき", "出来"), nil
	case kuru:
		return v.irregularForm("こられ", "来られ"), nil
	}
	if v.verbType == Ichidan {
		return v.word.ReplaceSuffix(1, "られ")
	}
	return v.godanShift(ColumnE, "")
}

func (v Verb) nai(suffix string) (Word, error) {
	return v.stemWith(v.naiStem, suffix)
}

func (v Verb) masu(suffix string) (Word, error) {
	return v.stemWith(v.masuStem, suffix)
}

func (v Verb) potential(suffix string) (Word, error) {
	return v.stemWith(v.potentialStem, suffix)
}

func (v Verb) stemWith(stem func() (Word, error), suffix string) (Word, error) {
	w, err := stem()
	if err != nil {
		return Word{}, err
	}
	return w.Append(suffix), nil
}

// godanShift moves the final kana to column c and appends suffix.
func (v Verb) godanShift(c Column, suffix string) (Word, error) {
	shifted, err := shiftGodan(lastRune(v.word.kana), c)
	if err != nil {
		return Word{}, fmt.Errorf("%s: %w", v.word.kana, err)
	}
	return v.word.ReplaceSuffix(1, string(shifted)+suffix)
}

// euphonic builds the た and て forms, voicing the suffix after ぐ, ぬ, ぶ and む.
func (v Verb) euphonic(suffix rune) (Word, error) {
	switch v.irregular {
	case suru:
		return v.irregularForm("し"+string(suffix), "為"+string(suffix)), nil
	case kuru:
		return v.irregularForm("き"+string(suffix), "来"+string(suffix)), nil
	case iku:
		return v.irregularForm("いっ"+string(suffix), "行っ"+string(suffix)), nil
	}
	if v.verbType == Ichidan {
		return v.word.ReplaceSuffix(1, string(suffix))
	}

	last := lastRune(v.word.kana)
	e, ok := euphonies[last]
	if !ok {
		return Word{}, fmt.Errorf("%w: no euphonic rule for %q", ErrUnsupportedForm, last)
	}
	if e.voiced {
		voiced, ok := Voiced(suffix)
		if !ok {
			return Word{}, fmt.Errorf("%w: %q", ErrNotShiftable, suffix)
		}
		suffix = voiced
	}
	return v.word.ReplaceSuffix(1, e.sound+string(suffix))
}

// negated turns a form ending in る into its ない form.
func (v Verb) negated(form func() (Word, error)) (Word, error) {
	w, err := form()
	if err != nil {
		return Word{}, err
	}
	return w.ReplaceSuffix(1, "ない")
}

func unsupported(v Verb, name string, form WordForm) error {
	return fmt.Errorf("%w: %s %v of %q", ErrUnsupportedForm, name, form, v.word.kana)
}
