package dbfmt

import "golang.org/x/crypto/blake2b"

// Digest returns the BLAKE2b-256 digest of a compiled database's bytes,
// giving callers a cheap way to detect that two databases are identical
// (or that one loaded on disk matches what was just compiled) without a
// byte-for-byte compare. See SPEC_FULL.md §11.1.
func Digest(dbBytes []byte) [32]byte {
	return blake2b.Sum256(dbBytes)
}
