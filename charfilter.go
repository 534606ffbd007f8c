package katsuyou

import (
	"sort"
	"strings"

	"github.com/kotaroooo0/gojaconv/jaconv"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// CharFilter rewrites a reading or spelling before it is stored in a Word.
type CharFilter interface {
	Filter(string) string
}

// WidthFoldCharFilter folds half-width katakana and full-width ASCII to their canonical width.
type WidthFoldCharFilter struct{}

func (WidthFoldCharFilter) Filter(s string) string {
	return width.Fold.String(s)
}

// NFCCharFilter composes combining dakuten and handakuten, e.g. か+U+3099 to が.
type NFCCharFilter struct{}

func (NFCCharFilter) Filter(s string) string {
	return norm.NFC.String(s)
}

// KatakanaCharFilter rewrites katakana as hiragana.
type KatakanaCharFilter struct{}

func (KatakanaCharFilter) Filter(s string) string {
	return jaconv.KatakanaToHiragana(s)
}

// MappingCharFilter replaces every key of the mapping with its value in a single pass.
// Replaced text is not scanned again, and the longest key wins where keys overlap.
type MappingCharFilter struct {
	replacer *strings.Replacer // key->valueに置き換える
}

func NewMappingCharFilter(mapper map[string]string) *MappingCharFilter {
	keys := make([]string, 0, len(mapper))
	for k := range mapper {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	oldnew := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		oldnew = append(oldnew, k, mapper[k])
	}
	return &MappingCharFilter{replacer: strings.NewReplacer(oldnew...)}
}

func (c *MappingCharFilter) Filter(s string) string {
	return c.replacer.Replace(s)
}

// Width folding must run before NFC so that half-width voiced marks compose.
var (
	kanaCharFilters  = []CharFilter{WidthFoldCharFilter{}, NFCCharFilter{}, KatakanaCharFilter{}}
	kanjiCharFilters = []CharFilter{WidthFoldCharFilter{}, NFCCharFilter{}}
)

func applyCharFilters(s string, filters []CharFilter) string {
	for _, f := range filters {
		s = f.Filter(s)
	}
	return s
}
