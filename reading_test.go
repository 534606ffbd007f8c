package katsuyou

import (
	"fmt"
	"testing"
)

func TestWord_Romaji(t *testing.T) {
	tests := []struct {
		kana string
		want string
	}{
		{kana: "おはよう", want: "ohayo"},
		{kana: "ちょっと", want: "chotto"},
		{kana: "たべる", want: "taberu"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("kana = %v, want = %v", tt.kana, tt.want), func(t *testing.T) {
			w := newTestWord(t, tt.kana, "")
			if got := w.Romaji(); got != tt.want {
				t.Errorf("Word.Romaji() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWord_Render(t *testing.T) {
	w := newTestWord(t, "たべる", "食べる")
	tests := []struct {
		form ReadingForm
		want string
	}{
		{form: Spelling, want: "食べる"},
		{form: Kana, want: "たべる"},
		{form: Romaji, want: "taberu"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("form = %v, want = %v", tt.form, tt.want), func(t *testing.T) {
			if got := w.Render(tt.form); got != tt.want {
				t.Errorf("Word.Render() = %v, want %v", got, tt.want)
			}
		})
	}
}
