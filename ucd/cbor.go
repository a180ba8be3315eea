package ucd

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/unina-go/unina/namecounter"
	"github.com/unina-go/unina/namerange"
)

// canonicalRange is the wire shape used for deterministic CBOR encoding.
// It mirrors namerange.Range field-for-field but with exported, stable
// field names independent of the in-memory struct's layout, so a later
// field reorder in Range never changes the encoded bytes.
type canonicalRange struct {
	InitialHeadPoint   int64
	Length             int64
	NameStem           string
	NameCounterType    int64
	NameCounterInitial int64
	NameType           int64
	TailScalarArray    []int64
}

// EncodeRangesCBOR produces a deterministic CBOR encoding of a normalized,
// sorted range list, for golden-file regression testing of the UCD parser
// without hand-maintaining large Go literal fixtures.
func EncodeRangesCBOR(ranges []namerange.Range) ([]byte, error) {
	canon := make([]canonicalRange, len(ranges))
	for i, r := range ranges {
		tail := make([]int64, len(r.TailScalarArray))
		for j, s := range r.TailScalarArray {
			tail[j] = int64(s)
		}
		canon[i] = canonicalRange{
			InitialHeadPoint:   int64(r.InitialHeadPoint),
			Length:             int64(r.Length),
			NameStem:           r.NameStem,
			NameCounterType:    int64(r.NameCounterType),
			NameCounterInitial: int64(r.NameCounterInitial),
			NameType:           int64(r.NameType),
			TailScalarArray:    tail,
		}
	}

	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("ucd: create CBOR encoder: %w", err)
	}
	data, err := encMode.Marshal(canon)
	if err != nil {
		return nil, fmt.Errorf("ucd: CBOR encoding failed: %w", err)
	}
	return data, nil
}

// DecodeRangesCBOR is the inverse of EncodeRangesCBOR, used by tests that
// diff a freshly parsed snapshot against a checked-in golden encoding.
func DecodeRangesCBOR(data []byte) ([]namerange.Range, error) {
	var canon []canonicalRange
	if err := cbor.Unmarshal(data, &canon); err != nil {
		return nil, fmt.Errorf("ucd: CBOR decoding failed: %w", err)
	}
	ranges := make([]namerange.Range, len(canon))
	for i, c := range canon {
		var tail []rune
		if len(c.TailScalarArray) > 0 {
			tail = make([]rune, len(c.TailScalarArray))
			for j, s := range c.TailScalarArray {
				tail[j] = rune(s)
			}
		}
		ranges[i] = namerange.Range{
			InitialHeadPoint:   int(c.InitialHeadPoint),
			Length:             int(c.Length),
			NameStem:           c.NameStem,
			NameCounterType:    namecounter.Kind(c.NameCounterType),
			NameCounterInitial: int(c.NameCounterInitial),
			NameType:           namerange.Type(c.NameType),
			TailScalarArray:    tail,
		}
	}
	return ranges, nil
}
