// Package unina is the Unicode character name database: given a compiled
// database byte-string, it answers name-to-character and
// character-to-name lookups, falling back to algorithmic generators for
// the ideograph, Hangul-syllable, surrogate, and private-use families the
// compiled database omits by default.
package unina

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/unina-go/unina/dbfmt"
	"github.com/unina-go/unina/fuzzyname"
	"github.com/unina-go/unina/gen"
	"github.com/unina-go/unina/namerange"
	"github.com/unina-go/unina/ucd"
	"github.com/unina-go/unina/wtf8"
)

// Library mounts a compiled database and the algorithmic generators that
// cover the families the database excludes.
type Library struct {
	reader     *dbfmt.Reader
	ideographs *gen.HexNameGenerator
	labels     *gen.HexNameGenerator
	hangul     gen.HangulSyllableGenerator
	digest     [32]byte
}

// NewLibrary mounts dbBytes and wires up the default algorithmic
// generators (SPEC_FULL.md §12.1/§12.2).
func NewLibrary(dbBytes []byte) (*Library, error) {
	r, err := dbfmt.New(dbBytes)
	if err != nil {
		return nil, err
	}
	return &Library{
		reader:     r,
		ideographs: gen.NewHexNameGenerator(gen.DefaultIdeographFamilies()),
		labels:     gen.NewHexNameGenerator(gen.DefaultLabelFamilies()),
		hangul:     gen.NewHangulSyllableGenerator(),
		digest:     dbfmt.Digest(dbBytes),
	}, nil
}

// Digest returns the BLAKE2b-256 digest of the mounted database's bytes.
func (l *Library) Digest() [32]byte {
	return l.digest
}

// Get resolves names to the concatenation of the characters (or
// sequences) they denote (§4.8/§6): each name is fuzzy-folded
// and looked up independently, and the results are concatenated in order.
// A name need not be pre-folded; Get applies UAX44-LM2 folding itself. A
// name that resolves to nothing is not an error - it simply makes the
// overall result absent, reported by the second return value.
func (l *Library) Get(names ...string) (string, bool, error) {
	var b strings.Builder
	for _, name := range names {
		value, ok, err := l.get(name)
		if err != nil {
			return "", false, err
		}
		if !ok {
			return "", false, nil
		}
		b.WriteString(value)
	}
	return b.String(), true, nil
}

// get resolves a single already-unfolded name, consulting the compiled
// database first and falling back to the algorithmic generators.
func (l *Library) get(name string) (string, bool, error) {
	folded := fuzzyname.Fold(name, false)

	if value, ok, err := l.reader.Get(folded); err != nil {
		return "", false, err
	} else if ok {
		return value, true, nil
	}

	for _, g := range []interface {
		Get(string) (int, namerange.Type, bool)
	}{l.ideographs, l.labels} {
		if value, _, ok := g.Get(folded); ok {
			return wtf8.EncodeCodePoint(value), true, nil
		}
	}
	if value, _, ok := l.hangul.Get(folded); ok {
		return wtf8.EncodeCodePoint(value), true, nil
	}

	return "", false, nil
}

// GetNameEntries returns every (name, nameType) entry denoting value,
// sorted per namerange.EntryLess (most-preferred nameType first, then
// lexicographically). When value is a single code point that falls in a
// generated family, it also folds in the algorithmic generators' entry.
func (l *Library) GetNameEntries(value string) ([]namerange.Entry, error) {
	entries, err := l.reader.GetNameEntries(value)
	if err != nil {
		return nil, err
	}

	codePoints := wtf8.DecodeAll(value)
	if len(codePoints) == 1 {
		head := codePoints[0]
		for _, g := range []interface {
			GetName(int) (string, namerange.Type, bool)
		}{l.ideographs, l.labels} {
			if name, nt, ok := g.GetName(head); ok {
				entries = append(entries, namerange.Entry{Name: name, NameType: nt})
			}
		}
		if name, nt, ok := l.hangul.GetName(head); ok {
			entries = append(entries, namerange.Entry{Name: name, NameType: nt})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool { return namerange.EntryLess(entries[i], entries[j]) })
	return entries, nil
}

// GetPreferredName returns the single best display name for value: the
// first entry GetNameEntries would return, per the §3 type-preference
// order (a correction outranks the null/strict name, which outranks
// everything else).
func (l *Library) GetPreferredName(value string) (string, bool, error) {
	entries, err := l.GetNameEntries(value)
	if err != nil {
		return "", false, err
	}
	if len(entries) == 0 {
		return "", false, nil
	}
	return entries[0].Name, true, nil
}

// Suggest ranks the limit closest known names to name by edit distance,
// for surfacing near-miss corrections after a failed Get (SPEC_FULL.md
// §11.5). It returns fewer than limit results if the database doesn't
// have that many names, and none at all if name doesn't fuzzily resemble
// anything.
func (l *Library) Suggest(name string, limit int) ([]string, error) {
	all, err := l.reader.AllNames()
	if err != nil {
		return nil, err
	}
	ranks := fuzzy.RankFindFold(name, all)
	sort.Sort(ranks)

	if limit > len(ranks) {
		limit = len(ranks)
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = ranks[i].Target
	}
	return out, nil
}

// BuildDatabase compiles a normalized range collection (ucd.Normalize's
// output) into the byte-string NewLibrary mounts. opts controls whether
// algorithmic families are expanded into the database or left to the
// generators; BuildDatabaseFromUCD below is the usual entry point.
func BuildDatabase(ranges []namerange.Range, opts dbfmt.CompileOptions) ([]byte, error) {
	return dbfmt.Compile(ranges, opts)
}

// BuildDatabaseFromUCD parses the three source files of §4.3, injects the
// noncharacter ranges, normalizes and sorts the result, and compiles it
// with the default options (algorithmic families excluded).
func BuildDatabaseFromUCD(unicodeData, nameAliases, namedSequences []byte) ([]byte, error) {
	ranges, err := ucd.ParseUnicodeData(bytes.NewReader(unicodeData))
	if err != nil {
		return nil, fmt.Errorf("unina: parsing UnicodeData.txt: %w", err)
	}
	aliases, err := ucd.ParseNameAliases(bytes.NewReader(nameAliases))
	if err != nil {
		return nil, fmt.Errorf("unina: parsing NameAliases.txt: %w", err)
	}
	sequences, err := ucd.ParseNamedSequences(bytes.NewReader(namedSequences))
	if err != nil {
		return nil, fmt.Errorf("unina: parsing NamedSequences.txt: %w", err)
	}

	all := make([]namerange.Range, 0, len(ranges)+len(aliases)+len(sequences))
	all = append(all, ranges...)
	all = append(all, aliases...)
	all = append(all, sequences...)
	all = append(all, ucd.InjectNoncharacters()...)

	normalized, err := ucd.Normalize(all)
	if err != nil {
		return nil, fmt.Errorf("unina: normalizing ranges: %w", err)
	}

	return dbfmt.Compile(normalized, dbfmt.DefaultCompileOptions())
}
