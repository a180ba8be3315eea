package gen

import (
	"testing"

	"github.com/unina-go/unina/fuzzyname"
	"github.com/unina-go/unina/namerange"
)

func TestHexNameGeneratorRoundTrip(t *testing.T) {
	g := NewHexNameGenerator(DefaultIdeographFamilies())

	name, nt, ok := g.GetName(0x4E00)
	if !ok || name != "CJK UNIFIED IDEOGRAPH-4E00" || nt != namerange.Strict {
		t.Fatalf("GetName(0x4E00) = %q, %v, %v", name, nt, ok)
	}

	value, nt, ok := g.Get(fuzzyname.Fold(name, false))
	if !ok || value != 0x4E00 || nt != namerange.Strict {
		t.Fatalf("Get(%q) = %d, %v, %v", name, value, nt, ok)
	}

	if _, _, ok := g.GetName(0x4DFF); ok {
		t.Fatal("expected 0x4DFF to fall outside every registered family")
	}
}

func TestLabelFamiliesProduceLabelType(t *testing.T) {
	g := NewHexNameGenerator(DefaultLabelFamilies())

	name, nt, ok := g.GetName(0xD800)
	if !ok || name != "SURROGATE-D800" || nt != namerange.Label {
		t.Fatalf("GetName(0xD800) = %q, %v, %v", name, nt, ok)
	}
}

func TestHangulSyllableGeneratorRoundTrip(t *testing.T) {
	g := NewHangulSyllableGenerator()

	name, nt, ok := g.GetName(0xD4DB)
	if !ok || nt != namerange.Strict {
		t.Fatalf("GetName(0xD4DB) = %q, %v, %v", name, nt, ok)
	}

	value, _, ok := g.Get(fuzzyname.Fold(name, false))
	if !ok || value != 0xD4DB {
		t.Fatalf("Get(%q) = %d, %v", name, value, ok)
	}
}

func TestLoadFamilyTableRejectsUnknownNameType(t *testing.T) {
	data := []byte(`[{"name":"x","stem":"X-","low":0,"high":1,"nameType":"NOT-A-TYPE"}]`)
	if _, err := LoadFamilyTable(data); err == nil {
		t.Fatal("expected an error for an unknown nameType spelling")
	}
}

func TestLoadFamilyTableRejectsInvertedRange(t *testing.T) {
	data := []byte(`[{"name":"x","stem":"X-","low":5,"high":1,"nameType":"LABEL"}]`)
	if _, err := LoadFamilyTable(data); err == nil {
		t.Fatal("expected an error for low > high")
	}
}

func TestLoadFamilyTableAcceptsValidTable(t *testing.T) {
	data := []byte(`[{"name":"x","stem":"X-","low":0,"high":15,"nameType":""}]`)
	entries, err := LoadFamilyTable(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Stem != "X-" {
		t.Fatalf("got %+v", entries)
	}
}
