// Package ucd streams the three UCD source files into a sorted sequence of
// canonical name ranges (§4.4), pairing <Label, First>/<Label, Last> lines,
// dispatching meta-labels through a compile-time family table, and
// injecting the noncharacter ranges the UCD itself never lists by name.
package ucd

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/unina-go/unina/errs"
	"github.com/unina-go/unina/namecounter"
	"github.com/unina-go/unina/namerange"
)

var rangeLabelPattern = regexp.MustCompile(`^<(.+), (First|Last)>$`)

// stripComment removes a trailing "#"-to-end-of-line comment and surrounding
// whitespace, per §4.4's "lines are stripped of #-to-newline comments and
// surrounding whitespace" rule.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// fieldSplitPattern implements the `\s*;\s*` field delimiter.
var fieldSplitPattern = regexp.MustCompile(`\s*;\s*`)

func splitFields(line string) []string {
	return fieldSplitPattern.Split(line, -1)
}

// lines yields each stripped, non-blank line of r.
func lines(r io.Reader, yield func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}
		if err := yield(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseScalarHex(s string) (int, error) {
	v, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad scalar hex %q: %v", errs.ErrMalformedLine, s, err)
	}
	return int(v), nil
}

// pendingFirst tracks an open <Label, First> awaiting its matching Last.
type pendingFirst struct {
	label     string
	headPoint int
}

// ParseUnicodeData streams UnicodeData.txt, emitting one range per bare
// name or <control> entry and one range per closed <Label, First>/<Label,
// Last> pair.
func ParseUnicodeData(r io.Reader) ([]namerange.Range, error) {
	var ranges []namerange.Range
	var pending *pendingFirst

	err := lines(r, func(line string) error {
		fields := splitFields(line)
		if len(fields) < 2 {
			return fmt.Errorf("%w: UnicodeData.txt line has fewer than 2 fields: %q", errs.ErrMalformedLine, line)
		}
		head, err := parseScalarHex(fields[0])
		if err != nil {
			return err
		}
		nameField := fields[1]

		if !strings.HasPrefix(nameField, "<") || !strings.HasSuffix(nameField, ">") {
			ranges = append(ranges, namerange.Range{
				InitialHeadPoint: head,
				Length:           1,
				NameStem:         nameField,
				NameCounterType:  namecounter.None,
				NameType:         namerange.Strict,
			})
			return nil
		}

		if nameField == "<control>" {
			ranges = append(ranges, namerange.Range{
				InitialHeadPoint:   head,
				Length:             1,
				NameStem:           "CONTROL-",
				NameCounterType:    namecounter.HyphenHex,
				NameCounterInitial: head,
				NameType:           namerange.Label,
			})
			return nil
		}

		m := rangeLabelPattern.FindStringSubmatch(nameField)
		if m == nil {
			return fmt.Errorf("%w: %q", errs.ErrUnknownPlaceholder, nameField)
		}
		label, kind := m[1], m[2]

		switch kind {
		case "First":
			if pending != nil {
				return fmt.Errorf("%w: nested <%s, First> while <%s, First> still open", errs.ErrUnmatchedRangeLabel, label, pending.label)
			}
			pending = &pendingFirst{label: label, headPoint: head}
			return nil
		case "Last":
			if pending == nil || pending.label != label {
				return fmt.Errorf("%w: <%s, Last> with no matching First", errs.ErrUnmatchedRangeLabel, label)
			}
			family, ok := matchLabelFamily(label)
			if !ok {
				return fmt.Errorf("%w: no family registered for label %q", errs.ErrUnknownPlaceholder, label)
			}
			length := head - pending.headPoint + 1
			if length < 1 {
				return fmt.Errorf("%w: <%s, Last> head point precedes First", errs.ErrUnmatchedRangeLabel, label)
			}
			counterInitial := 0
			if family.counter == namecounter.HyphenHex {
				counterInitial = pending.headPoint
			}
			ranges = append(ranges, namerange.Range{
				InitialHeadPoint:   pending.headPoint,
				Length:             length,
				NameStem:           family.stem,
				NameCounterType:    family.counter,
				NameCounterInitial: counterInitial,
				NameType:           family.nameType,
			})
			pending = nil
			return nil
		default:
			return fmt.Errorf("%w: %q", errs.ErrUnknownPlaceholder, nameField)
		}
	})
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, fmt.Errorf("%w: <%s, First> never closed", errs.ErrUnmatchedRangeLabel, pending.label)
	}
	return ranges, nil
}

// ParseNameAliases streams NameAliases.txt: "scalar;alias;type[;...]".
func ParseNameAliases(r io.Reader) ([]namerange.Range, error) {
	var ranges []namerange.Range
	err := lines(r, func(line string) error {
		fields := splitFields(line)
		if len(fields) < 3 {
			return fmt.Errorf("%w: NameAliases.txt line has fewer than 3 fields: %q", errs.ErrMalformedLine, line)
		}
		head, err := parseScalarHex(fields[0])
		if err != nil {
			return err
		}
		nameType, ok := namerange.ParseType(strings.ToUpper(fields[2]))
		if !ok {
			return fmt.Errorf("%w: unknown alias type %q", errs.ErrMalformedLine, fields[2])
		}
		ranges = append(ranges, namerange.Range{
			InitialHeadPoint: head,
			Length:           1,
			NameStem:         fields[1],
			NameCounterType:  namecounter.None,
			NameType:         nameType,
		})
		return nil
	})
	return ranges, err
}

// ParseNamedSequences streams NamedSequences.txt: "name;scalar scalar...".
func ParseNamedSequences(r io.Reader) ([]namerange.Range, error) {
	var ranges []namerange.Range
	err := lines(r, func(line string) error {
		fields := splitFields(line)
		if len(fields) < 2 {
			return fmt.Errorf("%w: NamedSequences.txt line has fewer than 2 fields: %q", errs.ErrMalformedLine, line)
		}
		scalarFields := strings.Fields(fields[1])
		if len(scalarFields) == 0 {
			return fmt.Errorf("%w: NamedSequences.txt entry with no scalars: %q", errs.ErrMalformedLine, line)
		}
		head, err := parseScalarHex(scalarFields[0])
		if err != nil {
			return err
		}
		tail := make([]rune, 0, len(scalarFields)-1)
		for _, hx := range scalarFields[1:] {
			v, err := parseScalarHex(hx)
			if err != nil {
				return err
			}
			tail = append(tail, rune(v))
		}
		ranges = append(ranges, namerange.Range{
			InitialHeadPoint: head,
			Length:           1,
			NameStem:         fields[0],
			NameCounterType:  namecounter.None,
			NameType:         namerange.Sequence,
			TailScalarArray:  tail,
		})
		return nil
	})
	return ranges, err
}
