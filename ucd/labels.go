package ucd

import (
	"strings"

	"github.com/unina-go/unina/namecounter"
	"github.com/unina-go/unina/namerange"
)

// labelFamily is the tagged-variant replacement for the dynamic
// meta-label dispatcher §9 calls for: a compile-time enumeration of label
// families, each carrying the (stem, counter-kind, name-type) triple a
// matching <Label, First>/<Label, Last> pair expands to. A future UCD
// version adding a family is a data-only change to this table.
type labelFamily struct {
	name     string
	match    func(label string) bool
	stem     string
	counter  namecounter.Kind
	nameType namerange.Type
}

var labelFamilies = []labelFamily{
	{
		name:     "CJK Ideograph",
		match:    func(l string) bool { return strings.HasPrefix(l, "CJK Ideograph") },
		stem:     "CJK UNIFIED IDEOGRAPH-",
		counter:  namecounter.HyphenHex,
		nameType: namerange.Strict,
	},
	{
		name:     "CJK Compatibility Ideograph",
		match:    func(l string) bool { return strings.HasPrefix(l, "CJK Compatibility Ideograph") },
		stem:     "CJK COMPATIBILITY IDEOGRAPH-",
		counter:  namecounter.HyphenHex,
		nameType: namerange.Strict,
	},
	{
		name:     "Tangut Ideograph",
		match:    func(l string) bool { return strings.HasPrefix(l, "Tangut Ideograph") },
		stem:     "TANGUT IDEOGRAPH-",
		counter:  namecounter.HyphenHex,
		nameType: namerange.Strict,
	},
	{
		name:     "Khitan Small Script Character",
		match:    func(l string) bool { return strings.HasPrefix(l, "Khitan Small Script Character") },
		stem:     "KHITAN SMALL SCRIPT CHARACTER-",
		counter:  namecounter.HyphenHex,
		nameType: namerange.Strict,
	},
	{
		name:     "Nushu Character",
		match:    func(l string) bool { return strings.HasPrefix(l, "Nushu Character") },
		stem:     "NUSHU CHARACTER-",
		counter:  namecounter.HyphenHex,
		nameType: namerange.Strict,
	},
	{
		name:     "Hangul Syllable",
		match:    func(l string) bool { return l == "Hangul Syllable" },
		stem:     "HANGUL SYLLABLE",
		counter:  namecounter.HangulSyllable,
		nameType: namerange.Strict,
	},
	{
		name:     "Surrogate",
		match:    func(l string) bool { return strings.Contains(l, "Surrogate") },
		stem:     "SURROGATE-",
		counter:  namecounter.HyphenHex,
		nameType: namerange.Label,
	},
	{
		name:     "Private Use",
		match:    func(l string) bool { return strings.Contains(l, "Private Use") },
		stem:     "PRIVATE-USE-",
		counter:  namecounter.HyphenHex,
		nameType: namerange.Label,
	},
}

// matchLabelFamily returns the family a <Label, First/Last> label belongs
// to, if any is registered.
func matchLabelFamily(label string) (labelFamily, bool) {
	for _, f := range labelFamilies {
		if f.match(label) {
			return f, true
		}
	}
	return labelFamily{}, false
}
