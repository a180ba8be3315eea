// Package namerange defines the canonical compile-time name range and the
// reader-side name entry, along with the total orders the UCD parser and
// the database compiler rely on.
package namerange

import (
	"bytes"

	"github.com/unina-go/unina/namecounter"
)

// Type is a name's classification. The zero value, Strict, represents the
// "null" nameType of §3 (a character's primary Name property value).
type Type int

const (
	Strict Type = iota
	Correction
	Control
	Alternate
	Label
	Figment
	Abbreviation
	Sequence
)

// preferenceOrder is the exact ordering named in §3: "correction, null,
// sequence, control, alternate, label, figment, abbreviation".
var preferenceOrder = map[Type]int{
	Correction:   0,
	Strict:       1,
	Sequence:     2,
	Control:      3,
	Alternate:    4,
	Label:        5,
	Figment:      6,
	Abbreviation: 7,
}

// String returns the uppercase external spelling of t, or "" for Strict
// (the strict/null type is never written out as a nameType string).
func (t Type) String() string {
	switch t {
	case Strict:
		return ""
	case Correction:
		return "CORRECTION"
	case Control:
		return "CONTROL"
	case Alternate:
		return "ALTERNATE"
	case Label:
		return "LABEL"
	case Figment:
		return "FIGMENT"
	case Abbreviation:
		return "ABBREVIATION"
	case Sequence:
		return "SEQUENCE"
	default:
		return "UNKNOWN"
	}
}

// Lowercase is the form getNameEntries reports nameType in.
func (t Type) Lowercase() string {
	switch t {
	case Strict:
		return ""
	default:
		s := t.String()
		out := make([]byte, len(s))
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			out[i] = c
		}
		return string(out)
	}
}

// ParseType resolves the uppercase spelling of a nameType back to a Type.
func ParseType(s string) (Type, bool) {
	switch s {
	case "":
		return Strict, true
	case "CORRECTION":
		return Correction, true
	case "CONTROL":
		return Control, true
	case "ALTERNATE":
		return Alternate, true
	case "LABEL":
		return Label, true
	case "FIGMENT":
		return Figment, true
	case "ABBREVIATION":
		return Abbreviation, true
	case "SEQUENCE":
		return Sequence, true
	default:
		return 0, false
	}
}

// Range is the canonical compile-time entity described in §3: a contiguous
// span of head points sharing a stem, counter kind, and name type.
type Range struct {
	InitialHeadPoint    int
	Length              int
	NameStem            string
	NameCounterType     namecounter.Kind
	NameCounterInitial  int
	NameType            Type
	TailScalarArray     []rune // non-nil only when NameType == Sequence
}

// DerivedName renders the full name of the i'th head point covered by r
// (i must be in [0, r.Length)).
func (r Range) DerivedName(i int) (string, error) {
	return namecounter.Derive(r.NameStem, r.NameCounterType, r.NameCounterInitial+i)
}

// HeadPoint returns the head point of the i'th entry covered by r.
func (r Range) HeadPoint(i int) int {
	return r.InitialHeadPoint + i
}

// Less implements the §3 total order over ranges: by initial head point,
// then length, then tail-scalar-array lexicographic order, then name-type
// preference. This is the order the UCD parser emits ranges in.
func Less(a, b Range) bool {
	if a.InitialHeadPoint != b.InitialHeadPoint {
		return a.InitialHeadPoint < b.InitialHeadPoint
	}
	if a.Length != b.Length {
		return a.Length < b.Length
	}
	if c := compareRunes(a.TailScalarArray, b.TailScalarArray); c != 0 {
		return c < 0
	}
	return preferenceOrder[a.NameType] < preferenceOrder[b.NameType]
}

func compareRunes(a, b []rune) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Entry is the reader-side (name, nameType) pair of §3.
type Entry struct {
	Name     string
	NameType Type
}

// EntryLess sorts entries first by type preference, then lexicographically
// by name (DUCET-like byte compare suffices: UCD names are ASCII).
func EntryLess(a, b Entry) bool {
	pa, pb := preferenceOrder[a.NameType], preferenceOrder[b.NameType]
	if pa != pb {
		return pa < pb
	}
	return bytes.Compare([]byte(a.Name), []byte(b.Name)) < 0
}
