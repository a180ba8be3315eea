package dbfmt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/unina-go/unina/fuzzyname"
	"github.com/unina-go/unina/internal/invariant"
	"github.com/unina-go/unina/namerange"
	"github.com/unina-go/unina/search"
)

// expandedEntry is one logical name-range entry after expansion, carrying
// everything the compiler needs: its full derived name, that name's fuzzy
// fold (the sort key), and the decoded payload the reader must recover.
type expandedEntry struct {
	Name      string
	FuzzyName string
	HeadPoint int
	NameType  namerange.Type
	Tail      []rune
}

// foldForCompare is the single fuzzy-fold used both when compiling the
// sort key and when comparing an incoming query name during a read.
func foldForCompare(name string) string {
	return fuzzyname.Fold(name, false)
}

func sortEntries(entries []namerange.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return namerange.EntryLess(entries[i], entries[j])
	})
}

func isAlgorithmicStem(stem string) bool {
	for _, s := range algorithmicStems {
		if strings.HasPrefix(stem, s) {
			return true
		}
	}
	return false
}

// expand lowers a normalized range collection into individual entries,
// one per code point or sequence the range denotes, dropping any range
// whose stem belongs to an algorithmic family unless opts says otherwise.
func expand(ranges []namerange.Range, opts CompileOptions) ([]expandedEntry, error) {
	var entries []expandedEntry
	for _, r := range ranges {
		if !opts.IncludeAlgorithmicFamilies && isAlgorithmicStem(r.NameStem) {
			continue
		}
		for i := 0; i < r.Length; i++ {
			name, err := r.DerivedName(i)
			if err != nil {
				return nil, fmt.Errorf("dbfmt: deriving name for %s[%d]: %w", r.NameStem, i, err)
			}
			entries = append(entries, expandedEntry{
				Name:      name,
				FuzzyName: foldForCompare(name),
				HeadPoint: r.HeadPoint(i),
				NameType:  r.NameType,
				Tail:      r.TailScalarArray,
			})
		}
	}
	return entries, nil
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// widthFor returns the hex-digit width needed to represent max, at least 1.
func widthFor(max int) int {
	width := 1
	for v := max; v >= 16; v /= 16 {
		width++
	}
	return width
}

func maxInts(values []int) int {
	m := 0
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

func hexVector(values []int, width int) string {
	var b strings.Builder
	b.Grow(len(values) * width)
	for _, v := range values {
		fmt.Fprintf(&b, "%0*X", width, v)
	}
	return b.String()
}

// Compile builds the byte-string described in package dbfmt's doc comment
// from a normalized, sorted-by-head-point range collection (the output of
// ucd.Normalize). Ranges are first fuzzy-sorted independently of that
// head-point order, since that is the order the reader's binary search
// depends on.
func Compile(ranges []namerange.Range, opts CompileOptions) ([]byte, error) {
	entries, err := expand(ranges, opts)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].FuzzyName < entries[j].FuzzyName
	})
	for i := 1; i < len(entries); i++ {
		invariant.Invariant(entries[i-1].FuzzyName <= entries[i].FuzzyName, "dbfmt: entries must be sorted by fuzzy name, index %d", i)
	}

	n := len(entries)
	prefixLength := make([]int, n)
	ancestorPathIndex := make([]int, n)

	for i := 0; i < n; i++ {
		path := search.AncestorPath(i, n)
		ancestors := path[:len(path)-1]
		bestLen, bestDepth := 0, 0
		for depth, a := range ancestors {
			lcp := commonPrefixLen(entries[a].Name, entries[i].Name)
			if lcp > bestLen {
				bestLen = lcp
				bestDepth = depth
			}
		}
		prefixLength[i] = bestLen
		ancestorPathIndex[i] = bestDepth
	}

	texts := make([]string, n)
	headScalars := make([]int, n)
	for i, e := range entries {
		suffix := e.Name[prefixLength[i]:]
		texts[i] = encodeText(suffix, e.NameType, e.Tail)
		headScalars[i] = e.HeadPoint
	}

	var textBuf strings.Builder
	sepOffsets := make([]int, n)
	for i, t := range texts {
		textBuf.WriteString(t)
		sepOffsets[i] = textBuf.Len()
	}
	totalTextBytes := textBuf.Len()

	sepWidth := widthFor(totalTextBytes)
	prefixWidth := widthFor(maxInts(prefixLength))
	ancestorWidth := widthFor(maxInts(ancestorPathIndex))
	headWidth := widthFor(maxInts(headScalars))

	sepVector := hexVector(sepOffsets, sepWidth)
	prefixVector := hexVector(prefixLength, prefixWidth)
	ancestorVector := hexVector(ancestorPathIndex, ancestorWidth)
	headVector := hexVector(headScalars, headWidth)

	var body strings.Builder
	body.WriteString(textBuf.String())
	body.WriteString(blockSeparator)
	sepPointer := body.Len()
	body.WriteString(sepVector)

	body.WriteString(blockSeparator)
	prefixPointer := body.Len()
	body.WriteString(prefixVector)

	body.WriteString(blockSeparator)
	ancestorPointer := body.Len()
	body.WriteString(ancestorVector)

	body.WriteString(blockSeparator)
	headPointer := body.Len()
	body.WriteString(headVector)

	dir := directory{
		NumOfEntries:        n,
		FormatVersion:       FormatVersion,
		TextSequencePointer: 0,
		TextSequenceDirectory: textSequenceDirectory{
			SeparatorPointer: sepPointer,
			SeparatorWidth:   sepWidth,
			TotalTextBytes:   totalTextBytes,
		},
		NamePrefixLengthVectorPointer:   prefixPointer,
		NamePrefixLengthVectorDirectory: vectorDirectory{Width: prefixWidth},
		AncestorPathIndexVectorPointer:  ancestorPointer,
		AncestorPathIndexVectorDirectory: vectorDirectory{
			Width: ancestorWidth,
		},
		HeadScalarVectorPointer:   headPointer,
		HeadScalarVectorDirectory: vectorDirectory{Width: headWidth},
	}

	dirJSON, err := json.Marshal(dir)
	if err != nil {
		return nil, fmt.Errorf("dbfmt: marshaling directory: %w", err)
	}

	out := make([]byte, 0, len(dirJSON)+1+body.Len())
	out = append(out, dirJSON...)
	out = append(out, startOfText)
	out = append(out, body.String()...)
	return out, nil
}
