package dbfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/mod/semver"

	"github.com/unina-go/unina/errs"
	"github.com/unina-go/unina/internal/invariant"
	"github.com/unina-go/unina/namerange"
	"github.com/unina-go/unina/search"
	"github.com/unina-go/unina/wtf8"
)

// Reader mounts a compiled database byte-string and answers lookups via
// prefix-reconstructing binary search. Construction is the only mutating
// act; every method afterward is a pure read over the parsed vectors and
// the backing bytes, safe for concurrent use (§5).
type Reader struct {
	raw []byte

	numEntries int

	textSeq        []byte // the concatenated per-entry text block
	sepOffsets     []int  // cumulative end offsets, len == numEntries
	prefixLength   []int
	ancestorIndex  []int
	headScalar     []int
}

// New mounts dbBytes, parsing and validating its directory. It returns
// errs.ErrCorruptDatabase (wrapped with context) for any structural
// problem: bad JSON, an unsupported format version, an out-of-range
// pointer, or a non-hex digit in a vector.
func New(dbBytes []byte) (*Reader, error) {
	sep := bytes.IndexByte(dbBytes, startOfText)
	if sep < 0 {
		return nil, fmt.Errorf("%w: no 0x03 directory terminator found", errs.ErrCorruptDatabase)
	}

	var dir directory
	if err := json.Unmarshal(dbBytes[:sep], &dir); err != nil {
		return nil, fmt.Errorf("%w: directory JSON: %v", errs.ErrCorruptDatabase, err)
	}
	if !semver.IsValid(dir.FormatVersion) {
		return nil, fmt.Errorf("%w: invalid formatVersion %q", errs.ErrCorruptDatabase, dir.FormatVersion)
	}
	if semver.Compare(dir.FormatVersion, MinSupportedFormatVersion) < 0 ||
		semver.Compare(dir.FormatVersion, MaxSupportedFormatVersion) > 0 {
		return nil, fmt.Errorf("%w: unsupported formatVersion %q", errs.ErrCorruptDatabase, dir.FormatVersion)
	}
	if dir.NumOfEntries < 0 {
		return nil, fmt.Errorf("%w: negative numOfEntries", errs.ErrCorruptDatabase)
	}

	body := dbBytes[sep+1:]
	n := dir.NumOfEntries

	textEnd := dir.TextSequenceDirectory.TotalTextBytes
	if textEnd < 0 || textEnd > len(body) {
		return nil, fmt.Errorf("%w: textSequence length out of range", errs.ErrCorruptDatabase)
	}
	textSeq := body[:textEnd]

	sepOffsets, err := readHexVector(body, dir.TextSequenceDirectory.SeparatorPointer, dir.TextSequenceDirectory.SeparatorWidth, n)
	if err != nil {
		return nil, fmt.Errorf("%w: separation vector: %v", errs.ErrCorruptDatabase, err)
	}
	prefixLength, err := readHexVector(body, dir.NamePrefixLengthVectorPointer, dir.NamePrefixLengthVectorDirectory.Width, n)
	if err != nil {
		return nil, fmt.Errorf("%w: name-prefix-length vector: %v", errs.ErrCorruptDatabase, err)
	}
	ancestorIndex, err := readHexVector(body, dir.AncestorPathIndexVectorPointer, dir.AncestorPathIndexVectorDirectory.Width, n)
	if err != nil {
		return nil, fmt.Errorf("%w: ancestor-path-index vector: %v", errs.ErrCorruptDatabase, err)
	}
	headScalar, err := readHexVector(body, dir.HeadScalarVectorPointer, dir.HeadScalarVectorDirectory.Width, n)
	if err != nil {
		return nil, fmt.Errorf("%w: head-scalar vector: %v", errs.ErrCorruptDatabase, err)
	}

	// readHexVector always returns exactly count elements on success; a
	// mismatch here would mean the reader's own parsing is inconsistent,
	// not that the database bytes are untrustworthy.
	invariant.Invariant(len(sepOffsets) == n && len(prefixLength) == n && len(ancestorIndex) == n && len(headScalar) == n,
		"dbfmt: parsed vector lengths must all equal numOfEntries %d", n)

	return &Reader{
		raw:           dbBytes,
		numEntries:    n,
		textSeq:       textSeq,
		sepOffsets:    sepOffsets,
		prefixLength:  prefixLength,
		ancestorIndex: ancestorIndex,
		headScalar:    headScalar,
	}, nil
}

func readHexVector(body []byte, pointer, width, count int) ([]int, error) {
	if width <= 0 {
		if count == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("non-positive width %d for %d entries", width, count)
	}
	end := pointer + width*count
	if pointer < 0 || end > len(body) {
		return nil, fmt.Errorf("pointer/width out of range: pointer=%d width=%d count=%d bodyLen=%d", pointer, width, count, len(body))
	}
	out := make([]int, count)
	for i := 0; i < count; i++ {
		chunk := body[pointer+i*width : pointer+(i+1)*width]
		v, err := strconv.ParseInt(string(chunk), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("non-hex digit at vector entry %d: %v", i, err)
		}
		out[i] = int(v)
	}
	return out, nil
}

func (r *Reader) suffixText(i int) ([]byte, error) {
	start := 0
	if i > 0 {
		start = r.sepOffsets[i-1]
	}
	end := r.sepOffsets[i]
	if start < 0 || end > len(r.textSeq) || start > end {
		return nil, fmt.Errorf("%w: entry %d text span [%d,%d) out of range", errs.ErrCorruptDatabase, i, start, end)
	}
	return r.textSeq[start:end], nil
}

// entryInfo reconstructs entry i's full derived name using the donor
// ancestor's name at depth ancestorIndex[i] in stack, and returns the
// decoded name suffix, nameType, and tail scalars alongside it so callers
// don't have to re-decode the text.
func (r *Reader) entryInfo(i int, stack []string) (name string, nameType namerange.Type, tail []rune, err error) {
	raw, err := r.suffixText(i)
	if err != nil {
		return "", 0, nil, err
	}
	suffix, nameType, tail, err := decodeText(string(raw))
	if err != nil {
		return "", 0, nil, fmt.Errorf("%w: %v", errs.ErrCorruptDatabase, err)
	}

	prefixLen := r.prefixLength[i]
	if prefixLen == 0 {
		return suffix, nameType, tail, nil
	}
	depth := r.ancestorIndex[i]
	if depth < 0 || depth >= len(stack) {
		return "", 0, nil, fmt.Errorf("%w: entry %d ancestor depth %d out of range (stack depth %d)", errs.ErrCorruptDatabase, i, depth, len(stack))
	}
	donor := stack[depth]
	if prefixLen > len(donor) {
		return "", 0, nil, fmt.Errorf("%w: entry %d prefix length %d exceeds donor length %d", errs.ErrCorruptDatabase, i, prefixLen, len(donor))
	}
	return donor[:prefixLen] + suffix, nameType, tail, nil
}

// walk drives the prefix-reconstructing median descent over [0, numEntries)
// described in §4.7/§9: at each median it reconstructs the full entry name
// from the ancestor stack built up so far, hands it to onVisit, and
// recurses per the returned direction.
func (r *Reader) walk(onVisit func(i int, name string, nameType namerange.Type, tail []rune) (search.Direction, error)) error {
	return r.walkRange(0, r.numEntries, nil, onVisit)
}

func (r *Reader) walkRange(lo, hi int, stack []string, onVisit func(int, string, namerange.Type, []rune) (search.Direction, error)) error {
	if lo >= hi {
		return nil
	}
	median := (lo + hi - 1) / 2
	name, nameType, tail, err := r.entryInfo(median, stack)
	if err != nil {
		return err
	}
	dir, err := onVisit(median, name, nameType, tail)
	if err != nil {
		return err
	}

	next := make([]string, len(stack), len(stack)+1)
	copy(next, stack)
	next = append(next, name)

	switch dir {
	case search.Before:
		return r.walkRange(lo, median, next, onVisit)
	case search.After:
		return r.walkRange(median+1, hi, next, onVisit)
	case search.BeforeAndAfter:
		if err := r.walkRange(lo, median, next, onVisit); err != nil {
			return err
		}
		return r.walkRange(median+1, hi, next, onVisit)
	case search.Done:
		return nil
	default:
		return nil
	}
}

// Get runs the binary search of §4.7's state machine: reconstruct, fold,
// compare, descend. It returns ok=false (no error) if nothing matches.
func (r *Reader) Get(fuzzyName string) (value string, ok bool, err error) {
	var foundHead int
	var foundTail []rune
	found := false

	walkErr := r.walk(func(i int, name string, nameType namerange.Type, tail []rune) (search.Direction, error) {
		ef := foldForCompare(name)
		c := bytes.Compare([]byte(fuzzyName), []byte(ef))
		switch {
		case c == 0:
			found = true
			foundHead = r.headScalar[i]
			foundTail = tail
			return search.Done, nil
		case c < 0:
			return search.Before, nil
		default:
			return search.After, nil
		}
	})
	if walkErr != nil {
		return "", false, walkErr
	}
	if !found {
		return "", false, nil
	}
	return wtf8.EncodeString(foundHead, foundTail), true, nil
}

// GetNameEntries performs the head-scalar-pruned full traversal of §4.7:
// since no total order relates head scalars to the fuzzy-name order the
// table is sorted by, every entry must be visited (BeforeAndAfter
// throughout), but the head-scalar compare lets each visit reject a
// mismatch without a full fuzzy-fold.
func (r *Reader) GetNameEntries(value string) ([]namerange.Entry, error) {
	codePoints := wtf8.DecodeAll(value)
	if len(codePoints) == 0 {
		return nil, nil
	}
	targetHead := codePoints[0]
	targetTail := codePoints[1:]

	var entries []namerange.Entry
	err := r.walk(func(i int, name string, nameType namerange.Type, tail []rune) (search.Direction, error) {
		if r.headScalar[i] == targetHead && tailMatches(tail, targetTail) {
			entries = append(entries, namerange.Entry{Name: name, NameType: nameType})
		}
		return search.BeforeAndAfter, nil
	})
	if err != nil {
		return nil, err
	}
	sortEntries(entries)
	return entries, nil
}

// AllNames returns every entry's reconstructed name, in no particular
// order. It exists to back fuzzy-suggestion ranking (SPEC_FULL.md §11.5),
// which needs the full name universe rather than a single lookup.
func (r *Reader) AllNames() ([]string, error) {
	names := make([]string, 0, r.numEntries)
	err := r.walk(func(i int, name string, nameType namerange.Type, tail []rune) (search.Direction, error) {
		names = append(names, name)
		return search.BeforeAndAfter, nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func tailMatches(tail []rune, target []int) bool {
	if len(tail) != len(target) {
		return false
	}
	for i := range tail {
		if int(tail[i]) != target[i] {
			return false
		}
	}
	return true
}
