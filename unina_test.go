package unina

import (
	"testing"

	"github.com/unina-go/unina/dbfmt"
	"github.com/unina-go/unina/namecounter"
	"github.com/unina-go/unina/namerange"
)

func testRanges() []namerange.Range {
	return []namerange.Range{
		{InitialHeadPoint: 0x20, Length: 1, NameStem: "SPACE", NameCounterType: namecounter.None, NameType: namerange.Strict},
		{InitialHeadPoint: 0x41, Length: 1, NameStem: "LATIN CAPITAL LETTER A", NameCounterType: namecounter.None, NameType: namerange.Strict},
		{InitialHeadPoint: 0x20D1, Length: 1, NameStem: "COMBINING RIGHT HARPOON ABOVE", NameCounterType: namecounter.None, NameType: namerange.Strict},
		{InitialHeadPoint: 0xFE18, Length: 1, NameStem: "PRESENTATION FORM FOR VERTICAL RIGHT WHITE LENTICULAR BRACKET", NameCounterType: namecounter.None, NameType: namerange.Correction},
		{InitialHeadPoint: 0xFE18, Length: 1, NameStem: "PRESENTATION FORM FOR VERTICAL RIGHT WHITE LENTICULAR BRAKCET", NameCounterType: namecounter.None, NameType: namerange.Strict},
		{InitialHeadPoint: 0x30, Length: 1, NameStem: "KEYCAP DIGIT ZERO", NameCounterType: namecounter.None, NameType: namerange.Sequence, TailScalarArray: []rune{0xFE0F, 0x20E3}},
	}
}

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	data, err := dbfmt.Compile(testRanges(), dbfmt.DefaultCompileOptions())
	if err != nil {
		t.Fatal(err)
	}
	lib, err := NewLibrary(data)
	if err != nil {
		t.Fatal(err)
	}
	return lib
}

func TestGetSpace(t *testing.T) {
	lib := newTestLibrary(t)
	value, ok, err := lib.Get("SPACE")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || value != " " {
		t.Fatalf("got %q, %v", value, ok)
	}
}

func TestGetConcatenatesMultipleNames(t *testing.T) {
	lib := newTestLibrary(t)
	value, ok, err := lib.Get("Latin Capital Letter A", "combining right harpoon above")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || value != "A⃑" {
		t.Fatalf("got %q, %v", value, ok)
	}
}

func TestGetConcatenationIsAbsentIfAnyNameIsUnknown(t *testing.T) {
	lib := newTestLibrary(t)
	value, ok, err := lib.Get("SPACE", "NOT A REAL NAME AT ALL")
	if err != nil {
		t.Fatal(err)
	}
	if ok || value != "" {
		t.Fatalf("got %q, %v", value, ok)
	}
}

func TestGetPreferredNamePrefersCorrection(t *testing.T) {
	lib := newTestLibrary(t)
	name, ok, err := lib.GetPreferredName(string(rune(0xFE18)))
	if err != nil {
		t.Fatal(err)
	}
	if !ok || name != "PRESENTATION FORM FOR VERTICAL RIGHT WHITE LENTICULAR BRACKET" {
		t.Fatalf("got %q, %v", name, ok)
	}
}

func TestGetNameEntriesReturnsStrictNameAndCorrection(t *testing.T) {
	lib := newTestLibrary(t)
	entries, err := lib.GetNameEntries(string(rune(0xFE18)))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %+v", entries)
	}
	if entries[0].NameType != namerange.Correction {
		t.Fatalf("expected the correction first, got %+v", entries[0])
	}
}

func TestGetKeycapSequence(t *testing.T) {
	lib := newTestLibrary(t)
	value, ok, err := lib.Get("KEYCAP DIGIT ZERO")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected KEYCAP DIGIT ZERO to resolve")
	}
	entries, err := lib.GetNameEntries(value)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].NameType != namerange.Sequence {
		t.Fatalf("got %+v", entries)
	}
}

func TestGetFallsBackToCJKGenerator(t *testing.T) {
	lib := newTestLibrary(t)
	value, ok, err := lib.Get("CJK UNIFIED IDEOGRAPH-4E00")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || value != string(rune(0x4E00)) {
		t.Fatalf("got %q, %v", value, ok)
	}

	if _, ok, err := lib.Get("CJK UNIFIED IDEOGRAPH-4DFF"); err != nil {
		t.Fatal(err)
	} else if ok {
		t.Fatal("expected 0x4DFF to be undefined")
	}
}

func TestGetFallsBackToHangulGenerator(t *testing.T) {
	lib := newTestLibrary(t)
	value, ok, err := lib.Get("HANGUL SYLLABLE PWILH")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || value != string(rune(0xD4DB)) {
		t.Fatalf("got %q, %v", value, ok)
	}
}

func TestGetUnknownNameReturnsAbsentNotError(t *testing.T) {
	lib := newTestLibrary(t)
	value, ok, err := lib.Get("NOT A REAL NAME AT ALL")
	if err != nil {
		t.Fatal(err)
	}
	if ok || value != "" {
		t.Fatalf("expected an absent result, got %q, %v", value, ok)
	}
}

func TestSuggestRanksCloseNames(t *testing.T) {
	lib := newTestLibrary(t)
	suggestions, err := lib.Suggest("SPAC", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) == 0 || suggestions[0] != "SPACE" {
		t.Fatalf("got %+v", suggestions)
	}
}
