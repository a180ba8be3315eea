package ucd

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/unina-go/unina/errs"
	"github.com/unina-go/unina/namecounter"
	"github.com/unina-go/unina/namerange"
)

// liftPattern recognizes a stem whose tail is already a hyphen-hex
// suffix (e.g. a literal "VARIATION SELECTOR-FE00" name read straight out
// of UnicodeData.txt with no counter attached yet).
var liftPattern = regexp.MustCompile(`^(.+)-([0-9A-F]{4}|[1-9A-F][0-9A-F]{4}|10[0-9A-F]{4})$`)

// liftHyphenHexSuffix re-examines a NONE-counter range's stem and, if it
// ends in what parse() would recognize as a HYPHEN-HEX tail, rewrites the
// range to carry that tail as an explicit counter instead of a literal
// stem suffix - per §4.4's post-collection normalization step.
func liftHyphenHexSuffix(r namerange.Range) namerange.Range {
	if r.NameCounterType != namecounter.None {
		return r
	}
	m := liftPattern.FindStringSubmatch(r.NameStem)
	if m == nil {
		return r
	}
	value, err := strconv.ParseInt(m[2], 16, 32)
	if err != nil {
		return r
	}
	r.NameStem = m[1] + "-"
	r.NameCounterType = namecounter.HyphenHex
	r.NameCounterInitial = int(value)
	return r
}

// Normalize applies the post-collection steps of §4.4: lift literal
// hyphen-hex suffixes into explicit counters, sort by the §3 total order,
// then run the name-counter identity invariant over every derived entry.
func Normalize(ranges []namerange.Range) ([]namerange.Range, error) {
	lifted := make([]namerange.Range, len(ranges))
	for i, r := range ranges {
		lifted[i] = liftHyphenHexSuffix(r)
	}

	sort.SliceStable(lifted, func(i, j int) bool { return namerange.Less(lifted[i], lifted[j]) })

	if err := checkIdentityInvariant(lifted); err != nil {
		return nil, err
	}
	return lifted, nil
}

func checkIdentityInvariant(ranges []namerange.Range) error {
	for _, r := range ranges {
		for i := 0; i < r.Length; i++ {
			value := r.NameCounterInitial + i
			if err := namecounter.CheckIdentity(r.NameStem, r.NameCounterType, value, r.NameCounterInitial, r.Length); err != nil {
				return fmt.Errorf("%w: range starting at U+%04X: %v", errs.ErrInvariantViolation, r.InitialHeadPoint, err)
			}
		}
	}
	return nil
}
