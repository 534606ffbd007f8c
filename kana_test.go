package katsuyou

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want Syllable
		ok   bool
	}{
		{r: 'あ', want: Syllable{Row: RowVowel, Column: ColumnA}, ok: true},
		{r: 'が', want: Syllable{Row: RowG, Column: ColumnA}, ok: true},
		{r: 'り', want: Syllable{Row: RowR, Column: ColumnI}, ok: true},
		{r: 'ぷ', want: Syllable{Row: RowP, Column: ColumnU}, ok: true},
		{r: 'よ', want: Syllable{Row: RowY, Column: ColumnO}, ok: true},
		{r: 'を', want: Syllable{Row: RowW, Column: ColumnO}, ok: true},
		{r: 'ん', ok: false},
		{r: 'っ', ok: false},
		{r: 'ゃ', ok: false},
		{r: 'カ', ok: false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("r = %q", tt.r), func(t *testing.T) {
			got, ok := Classify(tt.r)
			require.Equal(t, tt.ok, ok)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff: (-want +got)\n%s", diff)
			}
		})
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		r    rune
		c    Column
		want rune
		err  error
	}{
		{r: 'り', c: ColumnA, want: 'ら'},
		{r: 'く', c: ColumnE, want: 'け'},
		{r: 'ぐ', c: ColumnI, want: 'ぎ'},
		{r: 'つ', c: ColumnO, want: 'と'},
		{r: 'む', c: ColumnU, want: 'む'},
		{r: 'う', c: ColumnA, want: 'あ'},
		{r: 'ゆ', c: ColumnE, err: ErrNotShiftable},
		{r: 'ん', c: ColumnA, err: ErrNotShiftable},
		{r: 'a', c: ColumnA, err: ErrNotShiftable},
		{r: 'か', c: Column(5), err: ErrNotShiftable},
		{r: 'か', c: Column(-1), err: ErrNotShiftable},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("r = %q, c = %v", tt.r, tt.c), func(t *testing.T) {
			got, err := Shift(tt.r, tt.c)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, string(tt.want), string(got))
		})
	}
}

func TestShiftGodan(t *testing.T) {
	got, err := shiftGodan('う', ColumnA)
	require.NoError(t, err)
	require.Equal(t, "わ", string(got))

	got, err = shiftGodan('う', ColumnE)
	require.NoError(t, err)
	require.Equal(t, "え", string(got))
}

func TestVoiced(t *testing.T) {
	tests := []struct {
		r    rune
		want rune
		ok   bool
	}{
		{r: 'て', want: 'で', ok: true},
		{r: 'た', want: 'だ', ok: true},
		{r: 'か', want: 'が', ok: true},
		{r: 'ほ', want: 'ぼ', ok: true},
		{r: 'な', ok: false},
		{r: 'ん', ok: false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("r = %q", tt.r), func(t *testing.T) {
			got, ok := Voiced(tt.r)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, string(tt.want), string(got))
		})
	}
}
