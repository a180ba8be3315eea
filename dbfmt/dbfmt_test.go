package dbfmt

import (
	"testing"

	"github.com/unina-go/unina/namecounter"
	"github.com/unina-go/unina/namerange"
)

func sampleRanges() []namerange.Range {
	return []namerange.Range{
		{InitialHeadPoint: 0x20, Length: 1, NameStem: "SPACE", NameCounterType: namecounter.None, NameType: namerange.Strict},
		{InitialHeadPoint: 0x41, Length: 1, NameStem: "LATIN CAPITAL LETTER A", NameCounterType: namecounter.None, NameType: namerange.Strict},
		{InitialHeadPoint: 0x42, Length: 1, NameStem: "LATIN CAPITAL LETTER B", NameCounterType: namecounter.None, NameType: namerange.Strict},
		{InitialHeadPoint: 0x1, Length: 1, NameStem: "CONTROL-", NameCounterType: namecounter.HyphenHex, NameCounterInitial: 1, NameType: namerange.Label},
		{InitialHeadPoint: 0xFE18, Length: 1, NameStem: "PRESENTATION FORM FOR VERTICAL RIGHT WHITE LENTICULAR BRACKET", NameCounterType: namecounter.None, NameType: namerange.Correction},
		{InitialHeadPoint: 0x30, Length: 1, NameStem: "KEYCAP DIGIT ZERO", NameCounterType: namecounter.None, NameType: namerange.Sequence, TailScalarArray: []rune{0xFE0F, 0x20E3}},
	}
}

func TestCompileReadRoundTrip(t *testing.T) {
	ranges := sampleRanges()
	data, err := Compile(ranges, DefaultCompileOptions())
	if err != nil {
		t.Fatal(err)
	}

	r, err := New(data)
	if err != nil {
		t.Fatal(err)
	}

	value, ok, err := r.Get(foldForCompare("SPACE"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok || value != " " {
		t.Fatalf("get(SPACE) = %q, %v", value, ok)
	}

	value, ok, err = r.Get(foldForCompare("LATIN CAPITAL LETTER B"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok || value != "B" {
		t.Fatalf("get(LATIN CAPITAL LETTER B) = %q, %v", value, ok)
	}

	value, ok, err = r.Get(foldForCompare("NO SUCH NAME"))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("expected no match, got %q", value)
	}
}

func TestCompileReadKeycapSequence(t *testing.T) {
	data, err := Compile(sampleRanges(), DefaultCompileOptions())
	if err != nil {
		t.Fatal(err)
	}
	r, err := New(data)
	if err != nil {
		t.Fatal(err)
	}

	value, ok, err := r.Get(foldForCompare("KEYCAP DIGIT ZERO"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a match for KEYCAP DIGIT ZERO")
	}

	entries, err := r.GetNameEntries(value)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name != "KEYCAP DIGIT ZERO" || entries[0].NameType != namerange.Sequence {
		t.Fatalf("got %+v", entries)
	}
}

func TestCompileReadControlLabel(t *testing.T) {
	data, err := Compile(sampleRanges(), DefaultCompileOptions())
	if err != nil {
		t.Fatal(err)
	}
	r, err := New(data)
	if err != nil {
		t.Fatal(err)
	}

	entries, err := r.GetNameEntries("")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name != "CONTROL-0001" || entries[0].NameType != namerange.Label {
		t.Fatalf("got %+v", entries)
	}
}

func TestCompileExcludesAlgorithmicByDefault(t *testing.T) {
	ranges := []namerange.Range{
		{InitialHeadPoint: 0x4E00, Length: 10, NameStem: "CJK UNIFIED IDEOGRAPH-", NameCounterType: namecounter.HyphenHex, NameCounterInitial: 0x4E00, NameType: namerange.Strict},
	}
	data, err := Compile(ranges, DefaultCompileOptions())
	if err != nil {
		t.Fatal(err)
	}
	r, err := New(data)
	if err != nil {
		t.Fatal(err)
	}
	_, ok, err := r.Get(foldForCompare("CJK UNIFIED IDEOGRAPH-4E00"))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected CJK range to be excluded from the compiled database by default")
	}
}
