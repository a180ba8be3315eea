// Package fuzzyname implements UAX44-LM2 loose name matching: upper-casing,
// space/underscore removal, and medial-hyphen collapsing, plus the one
// documented exception for the Hangul Jungseong O-E vowel name.
package fuzzyname

import "strings"

const sentinel = '*'

// Fold applies UAX44-LM2 folding to input, returning the ordinary fuzzy
// form. When stemEndsBeforeCounter is true, a trailing "<alnum>-" has its
// hyphen dropped first - this is how a range's nameStem is fuzzy-folded
// before a counter tail is appended to it during the name-counter identity
// check (§4.2).
func Fold(input string, stemEndsBeforeCounter bool) string {
	s := strings.ToUpper(input)

	if stemEndsBeforeCounter && len(s) >= 2 {
		last := s[len(s)-1]
		if last == '-' && isAlnum(rune(s[len(s)-2])) {
			s = s[:len(s)-1]
		}
	}

	sentinelBearing := removeSpacesUnderscores(markMedialHyphens(s))
	working := strings.ReplaceAll(sentinelBearing, string(sentinel), "")

	if ordinary, ok := hangulJungseongException(sentinelBearing); ok {
		return ordinary
	}

	return working
}

// markMedialHyphens replaces every hyphen flanked by alphanumerics on both
// sides with the sentinel rune. Fold removes spaces/underscores afterwards;
// the sentinel survives that removal so the exception check below can still
// tell a medial hyphen apart from one that bordered a space.
func markMedialHyphens(s string) string {
	r := []rune(s)
	out := make([]rune, 0, len(r))
	for i, c := range r {
		if c == '-' && i > 0 && i < len(r)-1 && isAlnum(r[i-1]) && isAlnum(r[i+1]) {
			out = append(out, sentinel)
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

func removeSpacesUnderscores(s string) string {
	r := []rune(s)
	out := make([]rune, 0, len(r))
	for _, c := range r {
		if c == ' ' || c == '_' {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

// hangulJungseongException implements §4.1 rule 6. sentinelForm has had
// spaces/underscores stripped but still carries the sentinel in place of
// medial hyphens, so a literal '-' remaining in it is necessarily
// non-medial (e.g. a leading hyphen) and disqualifies the exception.
func hangulJungseongException(sentinelForm string) (string, bool) {
	const prefix = "HANGULJUNGSEONG"
	if !strings.HasPrefix(sentinelForm, prefix) {
		return "", false
	}
	if strings.ContainsRune(sentinelForm, '-') {
		return "", false
	}
	switch {
	case strings.HasSuffix(sentinelForm, "O"+string(sentinel)+"E"):
		return prefix + "O-E", true
	case strings.HasSuffix(sentinelForm, "OE"):
		return prefix + "OE", true
	default:
		return "", false
	}
}

func isAlnum(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
