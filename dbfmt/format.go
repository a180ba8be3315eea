// Package dbfmt compiles a sorted, normalized name-range collection into
// the immutable, self-describing byte-string of §4.6/§6, and reads that
// byte-string back with prefix-reconstructing binary search (§4.7).
//
// Byte layout (bit-exact, per §6):
//
//	directory-JSON  0x03  textSequence  "\n\n"  namePrefixLenVector
//	  "\n\n"  ancestorPathIndexVector  "\n\n"  headScalarVector
//
// The "\n\n" separators are cosmetic only - every block is located by the
// byte offsets recorded in the directory, never by scanning for them.
package dbfmt

const (
	// startOfText is the single byte separating the JSON directory from
	// the body.
	startOfText = 0x03

	blockSeparator = "\n\n"

	// FormatVersion is the semver string written into every compiled
	// database's directory.
	FormatVersion = "v1.0.0"

	// MinSupportedFormatVersion and MaxSupportedFormatVersion bound the
	// directory formatVersion values this reader build accepts.
	MinSupportedFormatVersion = "v1.0.0"
	MaxSupportedFormatVersion = "v1.999.999"
)

// vectorDirectory describes one fixed-width hex-integer vector: its width
// in hex digits (the body offset is carried alongside it in Directory,
// not here, since every vector in this format is referenced by a sibling
// "...VectorPointer" field).
type vectorDirectory struct {
	Width int `json:"width"`
}

// textSequenceDirectory describes the variable-length text block and its
// trailing separation vector.
type textSequenceDirectory struct {
	SeparatorPointer int `json:"separatorPointer"`
	SeparatorWidth   int `json:"separatorWidth"`
	TotalTextBytes   int `json:"totalTextBytes"`
}

// directory is the JSON object prefixing every compiled database.
type directory struct {
	NumOfEntries  int    `json:"numOfEntries"`
	FormatVersion string `json:"formatVersion"`

	TextSequencePointer   int                   `json:"textSequencePointer"`
	TextSequenceDirectory textSequenceDirectory `json:"textSequenceDirectory"`

	NamePrefixLengthVectorPointer   int             `json:"namePrefixLengthVectorPointer"`
	NamePrefixLengthVectorDirectory vectorDirectory `json:"namePrefixLengthVectorDirectory"`

	AncestorPathIndexVectorPointer   int             `json:"ancestorPathIndexVectorPointer"`
	AncestorPathIndexVectorDirectory vectorDirectory `json:"ancestorPathIndexVectorDirectory"`

	HeadScalarVectorPointer   int             `json:"headScalarVectorPointer"`
	HeadScalarVectorDirectory vectorDirectory `json:"headScalarVectorDirectory"`
}

// CompileOptions configures the database compiler.
type CompileOptions struct {
	// IncludeAlgorithmicFamilies, when true, compiles name ranges
	// belonging to a family the façade can also generate algorithmically
	// (CJK/Tangut/Khitan/Nushu ideographs, Hangul syllables, surrogates,
	// private-use labels) into the database instead of excluding them.
	// Default false: those families are served by the generators in the
	// gen package, keeping the compiled database within the §2 size
	// budget. See SPEC_FULL.md §12.1.
	IncludeAlgorithmicFamilies bool
}

// DefaultCompileOptions returns the options the top-level façade uses when
// building a production database.
func DefaultCompileOptions() CompileOptions {
	return CompileOptions{IncludeAlgorithmicFamilies: false}
}

// algorithmicStems lists the NameStem prefixes a registered gen generator
// already covers at query time.
var algorithmicStems = []string{
	"CJK UNIFIED IDEOGRAPH-",
	"CJK COMPATIBILITY IDEOGRAPH-",
	"TANGUT IDEOGRAPH-",
	"KHITAN SMALL SCRIPT CHARACTER-",
	"NUSHU CHARACTER-",
	"HANGUL SYLLABLE",
	"SURROGATE-",
	"PRIVATE-USE-",
}
