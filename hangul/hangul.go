// Package hangul implements the L*V*T jamo grid used to compose and
// decompose the 11,172 precomposed Hangul syllables, and the longest-match
// parser that turns a romanized syllable tail back into a grid index.
package hangul

// Grid dimensions and base scalar, per the Unicode Hangul Syllable block.
const (
	SBase  = 0xAC00
	LCount = 19
	VCount = 21
	TCount = 28
	NCount = VCount * TCount
	SCount = LCount * NCount
)

// leadTable, vowelTable, and tailTable give the romanized sound for each
// jamo slot. The 12th leading slot (index 11) and the 0th trailing slot
// (index 0) are the empty string, since not every syllable carries a
// trailing consonant or (for the filler jamo) a leading one.
var (
	leadTable = [LCount]string{
		"G", "GG", "N", "D", "DD", "R", "M", "B", "BB",
		"S", "SS", "", "J", "JJ", "C", "K", "T", "P", "H",
	}
	vowelTable = [VCount]string{
		"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O",
		"WA", "WAE", "OE", "YO", "U", "WEO", "WE", "WI",
		"YU", "EU", "YI", "I",
	}
	tailTable = [TCount]string{
		"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG", "LM",
		"LB", "LS", "LT", "LP", "LH", "M", "B", "BS",
		"S", "SS", "NG", "J", "C", "K", "T", "P", "H",
	}
)

// ComposeIndex folds an (L, V, T) jamo triple into a single grid index in
// [0, SCount).
func ComposeIndex(l, v, t int) int {
	return l*NCount + v*TCount + t
}

// Compose returns the precomposed syllable scalar for a grid index.
func Compose(index int) (rune, bool) {
	if index < 0 || index >= SCount {
		return 0, false
	}
	return rune(SBase + index), true
}

// Decompose splits a syllable scalar into its (L, V, T) grid index, and
// reports whether r actually falls within the Hangul Syllable block.
func Decompose(r rune) (l, v, t int, ok bool) {
	if r < SBase || r >= SBase+SCount {
		return 0, 0, 0, false
	}
	index := int(r) - SBase
	l = index / NCount
	v = (index % NCount) / TCount
	t = index % TCount
	return l, v, t, true
}

// RomanSyllable renders the romanized syllable tail for a grid index, as
// used by the HANGUL-SYLLABLE name counter: "HANGUL SYLLABLE" + " " +
// RomanSyllable(value).
func RomanSyllable(index int) (string, bool) {
	if index < 0 || index >= SCount {
		return "", false
	}
	l := index / NCount
	v := (index % NCount) / TCount
	t := index % TCount
	return leadTable[l] + vowelTable[v] + tailTable[t], true
}

// ParseRomanSyllable performs the 3-stage left-to-right longest-match
// concatenation over {lead, vowel, tail} sounds described in §4.3. Each
// stage picks the longest table entry that is a prefix of what remains;
// ties go to the longest string, never to table order (which would be
// ambiguous here anyway, since no two entries in a stage share a length and
// a prefix relationship by construction of these tables... so longest-match
// is simply "the matching entry with the most characters"). The parse only
// succeeds if all three stages consume their sound and the cursor lands
// exactly on end-of-input.
func ParseRomanSyllable(tail string) (index int, ok bool) {
	rest := tail

	l, rest, ok := longestMatch(rest, leadTable[:])
	if !ok {
		return 0, false
	}
	v, rest, ok := longestMatch(rest, vowelTable[:])
	if !ok {
		return 0, false
	}
	t, rest, ok := longestMatch(rest, tailTable[:])
	if !ok || rest != "" {
		return 0, false
	}
	return ComposeIndex(l, v, t), true
}

// longestMatch finds the table entry that is the longest prefix of s,
// returning its index and the remainder of s past the match.
func longestMatch(s string, table []string) (bestIndex int, remainder string, ok bool) {
	bestLen := -1
	for i, candidate := range table {
		if len(candidate) < bestLen {
			continue
		}
		if len(candidate) > len(s) {
			continue
		}
		if s[:len(candidate)] != candidate {
			continue
		}
		if len(candidate) > bestLen {
			bestLen = len(candidate)
			bestIndex = i
		}
	}
	if bestLen < 0 {
		return 0, s, false
	}
	return bestIndex, s[bestLen:], true
}
