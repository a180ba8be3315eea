package gen

import (
	"strings"

	"github.com/unina-go/unina/fuzzyname"
	"github.com/unina-go/unina/hangul"
	"github.com/unina-go/unina/namecounter"
	"github.com/unina-go/unina/namerange"
)

const hangulSyllableStem = "HANGUL SYLLABLE"

// HangulSyllableGenerator answers Get/GetName for the Hangul Syllables
// block (U+AC00-U+D7A3) via the L-V-T composition grid in package hangul,
// rather than a compiled per-syllable name table.
type HangulSyllableGenerator struct{}

func NewHangulSyllableGenerator() HangulSyllableGenerator {
	return HangulSyllableGenerator{}
}

func (HangulSyllableGenerator) Get(fuzzyName string) (value int, nameType namerange.Type, ok bool) {
	stemFuzzy := fuzzyname.Fold(hangulSyllableStem, true)
	if !strings.HasPrefix(fuzzyName, stemFuzzy) {
		return 0, 0, false
	}
	v, matched := namecounter.Parse(fuzzyName[len(stemFuzzy):], namecounter.HangulSyllable, 0, hangul.SCount)
	if !matched {
		return 0, 0, false
	}
	return hangul.SBase + v, namerange.Strict, true
}

func (HangulSyllableGenerator) GetName(cp int) (name string, nameType namerange.Type, ok bool) {
	if cp < hangul.SBase || cp >= hangul.SBase+hangul.SCount {
		return "", 0, false
	}
	derived, err := namecounter.Derive(hangulSyllableStem, namecounter.HangulSyllable, cp-hangul.SBase)
	if err != nil {
		return "", 0, false
	}
	return derived, namerange.Strict, true
}
