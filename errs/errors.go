// Package errs defines the error taxonomy shared by the UCD parser, the
// database compiler, and the database reader.
//
// Compile-time errors (MalformedLine, UnmatchedRangeLabel,
// UnknownPlaceholder, InvariantViolation) are never recovered from - a
// malformed UCD or a newly introduced label variant demands human
// attention, so callers are expected to propagate them rather than retry.
// CorruptDatabase and BadInput are the two errors a running application can
// plausibly see at its own boundary (a bad database blob, a bad caller
// argument) and are designed to be tested with errors.Is.
package errs

import "errors"

var (
	// ErrBadInput is returned when a public API received a value of the
	// wrong shape (for example a non-string name argument).
	ErrBadInput = errors.New("unina: bad input")

	// ErrMalformedLine is returned when a UCD source line cannot be split
	// into the fields its file format requires.
	ErrMalformedLine = errors.New("unina: malformed UCD line")

	// ErrUnmatchedRangeLabel is returned when a <Label, First>/<Label, Last>
	// pairing in UnicodeData.txt fails to close, or closes against a
	// mismatched label.
	ErrUnmatchedRangeLabel = errors.New("unina: unmatched range label")

	// ErrUnknownPlaceholder is returned when UnicodeData.txt carries an
	// angle-bracket name-field placeholder with no registered handling.
	ErrUnknownPlaceholder = errors.New("unina: unknown placeholder")

	// ErrInvariantViolation is returned when the name-counter identity
	// invariant fails to hold for some compiled range. Fatal at compile
	// time; never expected in a shipped database.
	ErrInvariantViolation = errors.New("unina: invariant violation")

	// ErrCorruptDatabase is returned when the reader rejects a byte-string
	// as a malformed database (bad directory JSON, truncated block,
	// non-hex digits, out-of-range pointers).
	ErrCorruptDatabase = errors.New("unina: corrupt database")
)
