package ucd

import (
	"strings"
	"testing"

	"github.com/unina-go/unina/namecounter"
	"github.com/unina-go/unina/namerange"
)

func TestParseUnicodeDataBareName(t *testing.T) {
	data := "0020;SPACE;Zs;0;WS;;;;;N;;;;;\n"
	ranges, err := ParseUnicodeData(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(ranges) != 1 || ranges[0].NameStem != "SPACE" || ranges[0].InitialHeadPoint != 0x20 {
		t.Fatalf("got %+v", ranges)
	}
}

func TestParseUnicodeDataControl(t *testing.T) {
	data := "0001;<control>;Cc;0;BN;;;;;N;START OF HEADING;;;;\n"
	ranges, err := ParseUnicodeData(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(ranges) != 1 {
		t.Fatalf("got %+v", ranges)
	}
	r := ranges[0]
	if r.NameStem != "CONTROL-" || r.NameCounterType != namecounter.HyphenHex || r.NameCounterInitial != 1 || r.NameType != namerange.Label {
		t.Errorf("got %+v", r)
	}
}

func TestParseUnicodeDataCJKRange(t *testing.T) {
	data := "4E00;<CJK Ideograph, First>;Lo;0;L;;;;;N;;;;;\n" +
		"9FFF;<CJK Ideograph, Last>;Lo;0;L;;;;;N;;;;;\n"
	ranges, err := ParseUnicodeData(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(ranges) != 1 {
		t.Fatalf("got %+v", ranges)
	}
	r := ranges[0]
	if r.InitialHeadPoint != 0x4E00 || r.Length != 0x9FFF-0x4E00+1 || r.NameStem != "CJK UNIFIED IDEOGRAPH-" {
		t.Errorf("got %+v", r)
	}
}

func TestParseUnicodeDataUnmatchedLast(t *testing.T) {
	data := "9FFF;<CJK Ideograph, Last>;Lo;0;L;;;;;N;;;;;\n"
	if _, err := ParseUnicodeData(strings.NewReader(data)); err == nil {
		t.Fatal("expected error for unmatched Last")
	}
}

func TestParseUnicodeDataUnclosedFirst(t *testing.T) {
	data := "4E00;<CJK Ideograph, First>;Lo;0;L;;;;;N;;;;;\n"
	if _, err := ParseUnicodeData(strings.NewReader(data)); err == nil {
		t.Fatal("expected error for unclosed First")
	}
}

func TestParseUnicodeDataUnknownPlaceholder(t *testing.T) {
	data := "0001;<made-up-thing>;Cc;0;BN;;;;;N;;;;;\n"
	if _, err := ParseUnicodeData(strings.NewReader(data)); err == nil {
		t.Fatal("expected error for unknown placeholder")
	}
}

func TestParseNameAliases(t *testing.T) {
	data := "FE18;PRESENTATION FORM FOR VERTICAL RIGHT WHITE LENTICULAR BRACKET;correction;\n"
	ranges, err := ParseNameAliases(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(ranges) != 1 || ranges[0].NameType != namerange.Correction {
		t.Fatalf("got %+v", ranges)
	}
}

func TestParseNamedSequences(t *testing.T) {
	data := "KEYCAP DIGIT ZERO;0030 FE0F 20E3\n"
	ranges, err := ParseNamedSequences(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(ranges) != 1 {
		t.Fatalf("got %+v", ranges)
	}
	r := ranges[0]
	if r.InitialHeadPoint != 0x30 || len(r.TailScalarArray) != 2 || r.TailScalarArray[0] != 0xFE0F || r.TailScalarArray[1] != 0x20E3 {
		t.Errorf("got %+v", r)
	}
}

func TestInjectNoncharacters(t *testing.T) {
	ranges := InjectNoncharacters()
	want := 32 + 17*2
	if len(ranges) != want {
		t.Fatalf("got %d noncharacter ranges, want %d", len(ranges), want)
	}
}

func TestNormalizeLiftsHyphenHexSuffix(t *testing.T) {
	ranges := []namerange.Range{
		{InitialHeadPoint: 0xFE00, Length: 1, NameStem: "VARIATION SELECTOR-FE00", NameCounterType: namecounter.None, NameType: namerange.Strict},
	}
	out, err := Normalize(ranges)
	if err != nil {
		t.Fatal(err)
	}
	if out[0].NameCounterType != namecounter.HyphenHex || out[0].NameStem != "VARIATION SELECTOR-" || out[0].NameCounterInitial != 0xFE00 {
		t.Errorf("got %+v", out[0])
	}
}

func TestNormalizeSortsByHeadPoint(t *testing.T) {
	ranges := []namerange.Range{
		{InitialHeadPoint: 0x41, Length: 1, NameStem: "B", NameCounterType: namecounter.None},
		{InitialHeadPoint: 0x40, Length: 1, NameStem: "A", NameCounterType: namecounter.None},
	}
	out, err := Normalize(ranges)
	if err != nil {
		t.Fatal(err)
	}
	if out[0].NameStem != "A" || out[1].NameStem != "B" {
		t.Errorf("got %+v", out)
	}
}

func TestCBORRoundTrip(t *testing.T) {
	ranges := []namerange.Range{
		{InitialHeadPoint: 0x30, Length: 1, NameStem: "KEYCAP DIGIT ZERO", NameType: namerange.Sequence, TailScalarArray: []rune{0xFE0F, 0x20E3}},
	}
	data, err := EncodeRangesCBOR(ranges)
	if err != nil {
		t.Fatal(err)
	}
	out, err := DecodeRangesCBOR(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].NameStem != "KEYCAP DIGIT ZERO" || len(out[0].TailScalarArray) != 2 {
		t.Errorf("round trip mismatch: %+v", out)
	}
}
