package ucd

import (
	"github.com/unina-go/unina/namecounter"
	"github.com/unina-go/unina/namerange"
)

// InjectNoncharacters yields the singleton label ranges for every
// noncharacter code point: 0xFDD0..0xFDEF, and per plane p in [0, 17),
// p*0x10000+0xFFFE and +0xFFFF. None of these appear by name in the UCD
// source files, so the parser must supply them directly.
func InjectNoncharacters() []namerange.Range {
	var ranges []namerange.Range
	newRange := func(head int) namerange.Range {
		return namerange.Range{
			InitialHeadPoint:   head,
			Length:             1,
			NameStem:           "NONCHARACTER-",
			NameCounterType:    namecounter.HyphenHex,
			NameCounterInitial: head,
			NameType:           namerange.Label,
		}
	}
	for head := 0xFDD0; head <= 0xFDEF; head++ {
		ranges = append(ranges, newRange(head))
	}
	for plane := 0; plane < 17; plane++ {
		base := plane * 0x10000
		ranges = append(ranges, newRange(base+0xFFFE))
		ranges = append(ranges, newRange(base+0xFFFF))
	}
	return ranges
}
