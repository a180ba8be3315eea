package gen

import (
	"sort"
	"strings"

	"github.com/unina-go/unina/fuzzyname"
	"github.com/unina-go/unina/namecounter"
	"github.com/unina-go/unina/namerange"
)

// HexNameGenerator answers Get/GetName for a configured set of
// namecounter.HyphenHex families without expanding them into the compiled
// database.
type HexNameGenerator struct {
	families []FamilyTableEntry
}

// NewHexNameGenerator builds a generator over families, sorted by Low so
// that the first matching family in GetName is always the narrowest
// applicable one when ranges are registered without overlap.
func NewHexNameGenerator(families []FamilyTableEntry) *HexNameGenerator {
	fs := make([]FamilyTableEntry, len(families))
	copy(fs, families)
	sort.Slice(fs, func(i, j int) bool { return fs[i].Low < fs[j].Low })
	return &HexNameGenerator{families: fs}
}

// Get derives the code-point value and nameType for a fuzzy-folded query
// name, trying every registered family's stem in turn.
func (g *HexNameGenerator) Get(fuzzyName string) (value int, nameType namerange.Type, ok bool) {
	for _, f := range g.families {
		stemFuzzy := fuzzyname.Fold(f.Stem, true)
		if !strings.HasPrefix(fuzzyName, stemFuzzy) {
			continue
		}
		v, matched := namecounter.Parse(fuzzyName[len(stemFuzzy):], namecounter.HyphenHex, f.Low, f.High-f.Low+1)
		if !matched {
			continue
		}
		nt, err := f.NameType()
		if err != nil {
			continue
		}
		return v, nt, true
	}
	return 0, 0, false
}

// GetName derives the canonical name for cp, if some registered family's
// range covers it.
func (g *HexNameGenerator) GetName(cp int) (name string, nameType namerange.Type, ok bool) {
	for _, f := range g.families {
		if cp < f.Low || cp > f.High {
			continue
		}
		derived, err := namecounter.Derive(f.Stem, namecounter.HyphenHex, cp)
		if err != nil {
			return "", 0, false
		}
		nt, err := f.NameType()
		if err != nil {
			return "", 0, false
		}
		return derived, nt, true
	}
	return "", 0, false
}

// DefaultIdeographFamilies is the built-in hex-name family table for the
// ideograph blocks §12.2 adds algorithmic coverage for: CJK Unified,
// CJK Compatibility, Tangut, Khitan Small Script, and Nushu.
func DefaultIdeographFamilies() []FamilyTableEntry {
	return []FamilyTableEntry{
		{Name: "CJK Unified Ideographs", Stem: "CJK UNIFIED IDEOGRAPH-", Low: 0x4E00, High: 0x9FFF, NameTypeSpelling: ""},
		{Name: "CJK Unified Ideographs Extension A", Stem: "CJK UNIFIED IDEOGRAPH-", Low: 0x3400, High: 0x4DBF, NameTypeSpelling: ""},
		{Name: "CJK Compatibility Ideographs", Stem: "CJK COMPATIBILITY IDEOGRAPH-", Low: 0xF900, High: 0xFAFF, NameTypeSpelling: ""},
		{Name: "Tangut Ideographs", Stem: "TANGUT IDEOGRAPH-", Low: 0x17000, High: 0x187FF, NameTypeSpelling: ""},
		{Name: "Khitan Small Script Characters", Stem: "KHITAN SMALL SCRIPT CHARACTER-", Low: 0x18B00, High: 0x18CFF, NameTypeSpelling: ""},
		{Name: "Nushu Characters", Stem: "NUSHU CHARACTER-", Low: 0x1B170, High: 0x1B2FF, NameTypeSpelling: ""},
	}
}
