package gen

// DefaultLabelFamilies is the built-in hex-name family table for the
// label-type ranges §4.4 assigns a stem-hyphen-hex counter: surrogate code
// points and private-use code points. These reuse the same
// HexNameGenerator machinery as the ideograph families, differing only in
// nameType (Label rather than the null/strict type).
func DefaultLabelFamilies() []FamilyTableEntry {
	return []FamilyTableEntry{
		{Name: "Surrogates", Stem: "SURROGATE-", Low: 0xD800, High: 0xDFFF, NameTypeSpelling: "LABEL"},
		{Name: "Private Use", Stem: "PRIVATE-USE-", Low: 0xE000, High: 0xF8FF, NameTypeSpelling: "LABEL"},
		{Name: "Supplementary Private Use Area-A", Stem: "PRIVATE-USE-", Low: 0xF0000, High: 0xFFFFD, NameTypeSpelling: "LABEL"},
		{Name: "Supplementary Private Use Area-B", Stem: "PRIVATE-USE-", Low: 0x100000, High: 0x10FFFD, NameTypeSpelling: "LABEL"},
	}
}
