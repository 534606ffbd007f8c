package katsuyou

import "fmt"

// Row is a consonant row of the hiragana syllabary.
type Row int

const (
	RowVowel Row = iota // あ い う え お
	RowK
	RowG
	RowS
	RowZ
	RowT
	RowD
	RowN
	RowH
	RowB
	RowP
	RowM
	RowY
	RowR
	RowW
)

// Column is a vowel column of the hiragana syllabary.
type Column int

const (
	ColumnA Column = iota
	ColumnI
	ColumnU
	ColumnE
	ColumnO
)

func (c Column) String() string {
	switch c {
	case ColumnA:
		return "a"
	case ColumnI:
		return "i"
	case ColumnU:
		return "u"
	case ColumnE:
		return "e"
	case ColumnO:
		return "o"
	}
	return fmt.Sprintf("Column(%d)", int(c))
}

// Syllable is the position of a kana in the syllabary.
type Syllable struct {
	Row    Row
	Column Column
}

// 0 marks a cell with no kana.
var syllabary = [...][5]rune{
	RowVowel: {'あ', 'い', 'う', 'え', 'お'},
	RowK:     {'か', 'き', 'く', 'け', 'こ'},
	RowG:     {'が', 'ぎ', 'ぐ', 'げ', 'ご'},
	RowS:     {'さ', 'し', 'す', 'せ', 'そ'},
	RowZ:     {'ざ', 'じ', 'ず', 'ぜ', 'ぞ'},
	RowT:     {'た', 'ち', 'つ', 'て', 'と'},
	RowD:     {'だ', 'ぢ', 'づ', 'で', 'ど'},
	RowN:     {'な', 'に', 'ぬ', 'ね', 'の'},
	RowH:     {'は', 'ひ', 'ふ', 'へ', 'ほ'},
	RowB:     {'ば', 'び', 'ぶ', 'べ', 'ぼ'},
	RowP:     {'ぱ', 'ぴ', 'ぷ', 'ぺ', 'ぽ'},
	RowM:     {'ま', 'み', 'む', 'め', 'も'},
	RowY:     {'や', 0, 'ゆ', 0, 'よ'},
	RowR:     {'ら', 'り', 'る', 'れ', 'ろ'},
	RowW:     {'わ', 'ゐ', 0, 'ゑ', 'を'},
}

// voicing maps an unvoiced row to its dakuten row.
var voicing = map[Row]Row{
	RowK: RowG,
	RowS: RowZ,
	RowT: RowD,
	RowH: RowB,
}

var syllables = func() map[rune]Syllable {
	m := make(map[rune]Syllable)
	for row, cells := range syllabary {
		for col, r := range cells {
			if r == 0 {
				continue
			}
			m[r] = Syllable{Row: Row(row), Column: Column(col)}
		}
	}
	return m
}()

// Classify returns the row and column of r. ん, small kana and anything
// outside the syllabary report false.
func Classify(r rune) (Syllable, bool) {
	s, ok := syllables[r]
	return s, ok
}

// Shift returns the kana in the same row as r but in column c, e.g. り to ColumnA is ら.
func Shift(r rune, c Column) (rune, error) {
	if c < ColumnA || c > ColumnO {
		return 0, fmt.Errorf("%w: %q to %v", ErrNotShiftable, r, c)
	}
	s, ok := Classify(r)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotShiftable, r)
	}
	shifted := syllabary[s.Row][c]
	if shifted == 0 {
		return 0, fmt.Errorf("%w: %q has no %s column", ErrNotShiftable, r, c)
	}
	return shifted, nil
}

// Voiced returns the dakuten counterpart of r, e.g. て is で.
func Voiced(r rune) (rune, bool) {
	s, ok := Classify(r)
	if !ok {
		return 0, false
	}
	row, ok := voicing[s.Row]
	if !ok {
		return 0, false
	}
	return syllabary[row][s.Column], true
}

// shiftGodan is Shift with the godan exception that う moves to わ in the a column.
func shiftGodan(r rune, c Column) (rune, error) {
	if r == 'う' && c == ColumnA {
		return 'わ', nil
	}
	return Shift(r, c)
}
