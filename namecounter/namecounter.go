// Package namecounter implements the stem + counter(kind, value) name
// algebra: deriving a full name from a stem and a counter value, and
// parsing a fuzzy-folded tail back into a counter value. Three kinds are
// supported, matching the ranges a name range can carry: NONE, HYPHEN-HEX,
// and HANGUL-SYLLABLE.
package namecounter

import (
	"fmt"
	"regexp"

	"github.com/unina-go/unina/fuzzyname"
	"github.com/unina-go/unina/hangul"
	"github.com/unina-go/unina/internal/invariant"
)

// Kind identifies how a name range's tail is algorithmically generated.
type Kind int

const (
	// None means the full name equals the stem; a range of this kind
	// always has length 1.
	None Kind = iota
	// HyphenHex appends uppercase, zero-padded hex to a stem that already
	// ends in "-" (e.g. "CJK UNIFIED IDEOGRAPH-" + "4E00").
	HyphenHex
	// HangulSyllable appends " " followed by a romanized Hangul syllable.
	HangulSyllable
)

func (k Kind) String() string {
	switch k {
	case None:
		return "NONE"
	case HyphenHex:
		return "HYPHEN-HEX"
	case HangulSyllable:
		return "HANGUL-SYLLABLE"
	default:
		return "UNKNOWN"
	}
}

// hyphenHexPattern matches exactly the regular language named in §4.2:
// 4 hex digits, or a non-zero-leading 5-digit form, or "10" + 4 hex digits
// (covering the full [0, 0x10FFFF] code-point range without ambiguity).
var hyphenHexPattern = regexp.MustCompile(`^([0-9A-F]{4}|[1-9A-F][0-9A-F]{4}|10[0-9A-F]{4})$`)

// MaxHexValue is the largest value HYPHEN-HEX can encode, per §3's code
// point range.
const MaxHexValue = 0x10FFFF

// Derive renders the full name for stem+counter(kind, value). value is
// always a code point derived by the caller (InitialHeadPoint+i, or a
// Hangul syllable index), never raw untrusted input, so a negative value
// or one past the Unicode range indicates a bug in the caller's range
// arithmetic, not bad source data.
func Derive(stem string, kind Kind, value int) (string, error) {
	invariant.InRange(value, 0, MaxHexValue, "namecounter.Derive value")

	switch kind {
	case None:
		return stem, nil
	case HyphenHex:
		return stem + hexPad(value), nil
	case HangulSyllable:
		roman, ok := hangul.RomanSyllable(value)
		if !ok {
			return "", fmt.Errorf("namecounter: HANGUL-SYLLABLE value %d out of grid range", value)
		}
		return stem + " " + roman, nil
	default:
		return "", fmt.Errorf("namecounter: unknown counter kind %d", kind)
	}
}

// hexPad formats value as uppercase hex, zero-padded to at least 4 digits,
// never exceeding 6.
func hexPad(value int) string {
	s := fmt.Sprintf("%04X", value)
	if len(s) > 6 {
		s = s[len(s)-6:]
	}
	return s
}

// Parse recovers the counter value encoded in fuzzyTail - the portion of a
// fuzzy-folded name remaining after the caller has already verified the
// name starts with the fuzzy-folded stem and stripped that prefix. It
// returns ok=false if fuzzyTail does not encode a value in
// [initialValue, initialValue+length).
func Parse(fuzzyTail string, kind Kind, initialValue, length int) (value int, ok bool) {
	switch kind {
	case None:
		if fuzzyTail != "" {
			return 0, false
		}
		return initialValue, true
	case HyphenHex:
		if !hyphenHexPattern.MatchString(fuzzyTail) {
			return 0, false
		}
		n := 0
		for i := 0; i < len(fuzzyTail); i++ {
			n = n*16 + hexDigitValue(fuzzyTail[i])
		}
		if n < initialValue || n >= initialValue+length {
			return 0, false
		}
		return n, true
	case HangulSyllable:
		index, ok := hangul.ParseRomanSyllable(fuzzyTail)
		if !ok {
			return 0, false
		}
		if index < initialValue || index >= initialValue+length {
			return 0, false
		}
		return index, true
	default:
		return 0, false
	}
}

func hexDigitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 0
	}
}

// CheckIdentity runs the name-counter identity invariant obligation of
// §4.2: deriving a name from (stem, kind, value), fuzzy-folding it, and
// parsing the fold back out against the fuzzy-folded stem must reproduce
// value exactly. It reports the mismatch rather than panicking, so callers
// (the compiler) can decide how to surface an InvariantViolation.
func CheckIdentity(stem string, kind Kind, value, rangeInitial, rangeLength int) error {
	derived, err := Derive(stem, kind, value)
	if err != nil {
		return err
	}
	fuzzyFull := fuzzyname.Fold(derived, false)
	fuzzyStem := fuzzyname.Fold(stem, true)
	if len(fuzzyFull) < len(fuzzyStem) || fuzzyFull[:len(fuzzyStem)] != fuzzyStem {
		return fmt.Errorf("namecounter: derived name %q does not fuzzy-start with stem %q", derived, stem)
	}
	tail := fuzzyFull[len(fuzzyStem):]
	got, ok := Parse(tail, kind, rangeInitial, rangeLength)
	if !ok || got != value {
		return fmt.Errorf("namecounter: identity check failed for stem %q kind %s value %d: parse(%q) = (%d, %v)",
			stem, kind, value, tail, got, ok)
	}
	return nil
}
