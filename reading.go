package katsuyou

import "github.com/kotaroooo0/gojaconv/jaconv"

// Romaji returns the Hepburn romanization of the reading.
func (w Word) Romaji() string {
	return jaconv.ToHebon(w.kana)
}

// ReadingForm selects how a word is rendered by Render.
type ReadingForm int

const (
	Spelling ReadingForm = iota // kanji if present, otherwise kana
	Kana
	Romaji
)

// Render returns the word in the selected reading form.
func (w Word) Render(form ReadingForm) string {
	switch form {
	case Kana:
		return w.kana
	case Romaji:
		return w.Romaji()
	}
	return w.Reading()
}
