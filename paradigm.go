package katsuyou

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Form names a grammatical form produced by the engine.
type Form int

const (
	FormDictionary Form = iota
	FormStem
	FormNegative
	FormPast
	FormNegativePast
	FormTe
	FormNegativeTe
	FormPotential
	FormNegativePotential
	FormImperative
	FormNegativeImperative
	FormCausative
	FormNegativeCausative
	FormPassive
	FormNegativePassive
	FormCausativePassive
	FormNegativeCausativePassive
	FormTara
	FormNegativeTara
	FormBa
	FormNegativeBa
	FormVolitional
	FormNegativeVolitional
	FormZu
	FormDesiderative
	FormNegativeDesiderative
	FormAdverb
	FormAttributive
)

var formNames = map[Form]string{
	FormDictionary:               "dictionary",
	FormStem:                     "stem",
	FormNegative:                 "negative",
	FormPast:                     "past",
	FormNegativePast:             "negative past",
	FormTe:                       "te",
	FormNegativeTe:               "negative te",
	FormPotential:                "potential",
	FormNegativePotential:        "negative potential",
	FormImperative:               "imperative",
	FormNegativeImperative:       "negative imperative",
	FormCausative:                "causative",
	FormNegativeCausative:        "negative causative",
	FormPassive:                  "passive",
	FormNegativePassive:          "negative passive",
	FormCausativePassive:         "causative passive",
	FormNegativeCausativePassive: "negative causative passive",
	FormTara:                     "tara",
	FormNegativeTara:             "negative tara",
	FormBa:                       "ba",
	FormNegativeBa:               "negative ba",
	FormVolitional:               "volitional",
	FormNegativeVolitional:       "negative volitional",
	FormZu:                       "zu",
	FormDesiderative:             "desiderative",
	FormNegativeDesiderative:     "negative desiderative",
	FormAdverb:                   "adverb",
	FormAttributive:              "attributive",
}

func (f Form) String() string {
	if name, ok := formNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Form(%d)", int(f))
}

// Key identifies one cell of a Paradigm. Forms without a polite variant are stored under Short.
type Key struct {
	Form     Form
	WordForm WordForm
}

func (k Key) String() string {
	return fmt.Sprintf("%v/%v", k.Form, k.WordForm)
}

// Paradigm is the table of every form of a word, in a fixed order.
type Paradigm struct {
	entries *linkedhashmap.Map
}

func newParadigm() *Paradigm {
	return &Paradigm{entries: linkedhashmap.New()}
}

func (p *Paradigm) put(k Key, w Word) {
	p.entries.Put(k, w)
}

// Get returns the word stored for form in the given register.
func (p *Paradigm) Get(form Form, wf WordForm) (Word, bool) {
	v, ok := p.entries.Get(Key{Form: form, WordForm: wf})
	if !ok {
		return Word{}, false
	}
	return v.(Word), true
}

// Keys returns the keys in insertion order.
func (p *Paradigm) Keys() []Key {
	keys := make([]Key, 0, p.entries.Size())
	for _, k := range p.entries.Keys() {
		keys = append(keys, k.(Key))
	}
	return keys
}

func (p *Paradigm) Size() int {
	return p.entries.Size()
}

// Each calls f for every entry in insertion order.
func (p *Paradigm) Each(f func(Key, Word)) {
	p.entries.Each(func(k, v interface{}) {
		f(k.(Key), v.(Word))
	})
}

type verbRule struct {
	form Form
	// exactly one of inflect and single is set
	inflect func(Verb, WordForm) (Word, error)
	single  func(Verb) (Word, error)
}

var verbRules = []verbRule{
	{form: FormDictionary, inflect: Verb.Dictionary},
	{form: FormStem, inflect: Verb.Stem},
	{form: FormNegative, inflect: Verb.Negative},
	{form: FormPast, inflect: Verb.Past},
	{form: FormNegativePast, inflect: Verb.NegativePast},
	{form: FormTe, single: Verb.TeForm},
	{form: FormNegativeTe, single: Verb.NegativeTeForm},
	{form: FormPotential, inflect: Verb.Potential},
	{form: FormNegativePotential, inflect: Verb.NegativePotential},
	{form: FormImperative, single: Verb.Imperative},
	{form: FormNegativeImperative, single: Verb.NegativeImperative},
	{form: FormCausative, single: Verb.Causative},
	{form: FormNegativeCausative, single: Verb.NegativeCausative},
	{form: FormPassive, single: Verb.Passive},
	{form: FormNegativePassive, single: Verb.NegativePassive},
	{form: FormCausativePassive, single: Verb.CausativePassive},
	{form: FormNegativeCausativePassive, single: Verb.NegativeCausativePassive},
	{form: FormTara, single: Verb.Tara},
	{form: FormNegativeTara, single: Verb.NegativeTara},
	{form: FormBa, single: Verb.Ba},
	{form: FormNegativeBa, single: Verb.NegativeBa},
	{form: FormVolitional, inflect: Verb.Volitional},
	{form: FormNegativeVolitional, single: Verb.NegativeVolitional},
	{form: FormZu, single: Verb.Zu},
	{form: FormDesiderative, single: Verb.Desiderative},
	{form: FormNegativeDesiderative, single: Verb.NegativeDesiderative},
}

// ConjugateVerb computes every form of v. The first failing form aborts with its error.
func ConjugateVerb(v Verb) (*Paradigm, error) {
	p := newParadigm()
	for _, r := range verbRules {
		if r.single != nil {
			w, err := r.single(v)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", r.form, err)
			}
			p.put(Key{Form: r.form, WordForm: Short}, w)
			continue
		}
		for _, wf := range []WordForm{Short, Long} {
			w, err := r.inflect(v, wf)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", r.form, err)
			}
			p.put(Key{Form: r.form, WordForm: wf}, w)
		}
	}
	return p, nil
}

type adjectiveRule struct {
	form    Form
	inflect func(Adjective, WordForm) (Word, error)
	single  func(Adjective) (Word, error)
}

var adjectiveRules = []adjectiveRule{
	{form: FormDictionary, inflect: Adjective.Dictionary},
	{form: FormStem, inflect: Adjective.Stem},
	{form: FormNegative, inflect: Adjective.Negative},
	{form: FormPast, inflect: Adjective.Past},
	{form: FormNegativePast, inflect: Adjective.NegativePast},
	{form: FormTe, single: Adjective.TeForm},
	{form: FormNegativeTe, single: Adjective.NegativeTeForm},
	{form: FormAdverb, single: Adjective.Adverb},
	{form: FormBa, single: Adjective.Ba},
	{form: FormAttributive, single: Adjective.Attributive},
}

// ConjugateAdjective computes every form of a.
func ConjugateAdjective(a Adjective) (*Paradigm, error) {
	p := newParadigm()
	for _, r := range adjectiveRules {
		if r.single != nil {
			w, err := r.single(a)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", r.form, err)
			}
			p.put(Key{Form: r.form, WordForm: Short}, w)
			continue
		}
		for _, wf := range []WordForm{Short, Long} {
			w, err := r.inflect(a, wf)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", r.form, err)
			}
			p.put(Key{Form: r.form, WordForm: wf}, w)
		}
	}
	return p, nil
}
