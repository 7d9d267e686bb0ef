// Package symmetric wraps the SHA3-256, SHA3-512, SHAKE128 and SHAKE256
// primitives that K-PKE and ML-KEM build their seed expansion and
// Fujisaki-Okamoto re-encryption on, per FIPS 203 section 4.1. It reaches
// for golang.org/x/crypto/sha3 rather than rolling a SHA-3 implementation,
// following the rest of this module's corpus in preferring the ecosystem
// package over a hand-rolled one for anything beyond the standard library.
package symmetric

import "golang.org/x/crypto/sha3"

// H is the hash function H(s) = SHA3-256(s).
func H(s []byte) [32]byte {
	return sha3.Sum256(s)
}

// G is the hash function G(s) = SHA3-512(s), split into two 32-byte
// halves (first, second) as FIPS 203 (4.5) requires.
func G(s []byte) (first, second [32]byte) {
	full := sha3.Sum512(s)
	copy(first[:], full[:32])
	copy(second[:], full[32:])
	return
}

// J is the hash function J(s) = SHAKE256(s) truncated to 32 bytes, used
// by ML-KEM's implicit-rejection branch.
func J(s []byte) [32]byte {
	var out [32]byte
	sha3.ShakeSum256(out[:], s)
	return out
}
