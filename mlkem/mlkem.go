// Package mlkem implements the IND-CCA ML-KEM key encapsulation
// mechanism (FIPS 203 Algorithms 16-18), built atop package kpke via the
// Fujisaki-Okamoto transform: a re-encryption equality check on
// decapsulation, falling back to a deterministic pseudorandom key
// (implicit rejection) instead of an error when that check fails.
//
// As with package kpke, no Number-Theoretic Transform is used and no
// constant-time discipline is applied: the Decaps re-encryption
// comparison below is observably timing-variant, a simplification
// spec.md's non-goals explicitly accept for this implementation.
package mlkem

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/tuneinsight/mlkem/kpke"
	"github.com/tuneinsight/mlkem/kyber"
	"github.com/tuneinsight/mlkem/symmetric"
)

// ErrInvalidArgument is returned for wrong-length keys, ciphertexts, or
// seeds passed to this package's operations.
var ErrInvalidArgument = errors.New("mlkem: invalid argument")

// KeyGenInternal runs ML-KEM.KeyGen_internal (Algorithm 16): it derives a
// K-PKE key pair from the 32-byte seed d and assembles the ML-KEM
// decryption key dk = dk_PKE || ek || H(ek) || z.
func KeyGenInternal(params kyber.ParameterSet, d, z []byte) (ek, dk []byte, err error) {
	if len(z) != 32 {
		return nil, nil, fmt.Errorf("mlkem.KeyGenInternal: %w: z must be 32 bytes, got %d", ErrInvalidArgument, len(z))
	}

	ekPKE, dkPKE, err := kpke.KeyGen(params, d)
	if err != nil {
		return nil, nil, err
	}

	h := symmetric.H(ekPKE)

	dk = make([]byte, 0, params.DecryptionKeySize())
	dk = append(dk, dkPKE...)
	dk = append(dk, ekPKE...)
	dk = append(dk, h[:]...)
	dk = append(dk, z...)

	return ekPKE, dk, nil
}

// EncapsInternal runs ML-KEM.Encaps_internal (Algorithm 17): it derives
// the shared key K and encryption randomness r from
// G(m || H(ek)), encrypts m under ek with randomness r, and returns
// (K, c).
func EncapsInternal(params kyber.ParameterSet, ek, m []byte) (k, c []byte, err error) {
	if len(ek) != params.EncapsulationKeySize() {
		return nil, nil, fmt.Errorf("mlkem.EncapsInternal: %w: ek must be %d bytes, got %d", ErrInvalidArgument, params.EncapsulationKeySize(), len(ek))
	}
	if len(m) != 32 {
		return nil, nil, fmt.Errorf("mlkem.EncapsInternal: %w: m must be 32 bytes, got %d", ErrInvalidArgument, len(m))
	}

	h := symmetric.H(ek)
	kArr, r := symmetric.G(append(append([]byte{}, m...), h[:]...))

	c, err = kpke.Encrypt(params, ek, m, r[:])
	if err != nil {
		return nil, nil, err
	}

	return kArr[:], c, nil
}

// DecapsInternal runs ML-KEM.Decaps_internal (Algorithm 18). It decrypts
// c under the embedded K-PKE decryption key to recover a candidate
// plaintext m', re-derives (K', r') = G(m' || h), and re-encrypts m'
// under r' to obtain a candidate ciphertext c'. If c' equals c, K' is
// the shared key; otherwise decapsulation returns the deterministic
// pseudorandom value J(z || c) instead of failing (implicit rejection).
// Decaps never returns an error on the content of c — only on a
// structurally malformed dk or c.
func DecapsInternal(params kyber.ParameterSet, dk, c []byte) ([]byte, error) {
	if len(dk) != params.DecryptionKeySize() {
		return nil, fmt.Errorf("mlkem.DecapsInternal: %w: dk must be %d bytes, got %d", ErrInvalidArgument, params.DecryptionKeySize(), len(dk))
	}
	if len(c) != params.CiphertextSize() {
		return nil, fmt.Errorf("mlkem.DecapsInternal: %w: c must be %d bytes, got %d", ErrInvalidArgument, params.CiphertextSize(), len(c))
	}

	dkPKESize := params.DecryptionKeySizePKE()
	ekSize := params.EncapsulationKeySize()

	dkPKE := dk[0:dkPKESize]
	ekPKE := dk[dkPKESize : dkPKESize+ekSize]
	h := dk[dkPKESize+ekSize : dkPKESize+ekSize+32]
	z := dk[dkPKESize+ekSize+32 : dkPKESize+ekSize+64]

	mPrime, err := kpke.Decrypt(params, dkPKE, c)
	if err != nil {
		return nil, err
	}

	kPrime, rPrime := symmetric.G(append(append([]byte{}, mPrime...), h...))

	cPrime, err := kpke.Encrypt(params, ekPKE, mPrime, rPrime[:])
	if err != nil {
		return nil, err
	}

	if bytes.Equal(c, cPrime) {
		return kPrime[:], nil
	}

	rejection := symmetric.J(append(append([]byte{}, z...), c...))
	return rejection[:], nil
}

// KeyGen draws fresh random seeds d and z and delegates to
// KeyGenInternal. The caller's entropy source is an external
// collaborator; this is one of only three points in the module that
// consumes randomness.
func KeyGen(params kyber.ParameterSet) (ek, dk []byte, err error) {
	d, err := randomBytes(32)
	if err != nil {
		return nil, nil, err
	}
	z, err := randomBytes(32)
	if err != nil {
		return nil, nil, err
	}
	return KeyGenInternal(params, d, z)
}

// Encaps draws a fresh random 32-byte message m and delegates to
// EncapsInternal, returning the shared key K and ciphertext c.
func Encaps(params kyber.ParameterSet, ek []byte) (k, c []byte, err error) {
	m, err := randomBytes(32)
	if err != nil {
		return nil, nil, err
	}
	return EncapsInternal(params, ek, m)
}

// Decaps recovers the shared key K from ciphertext c under decryption
// key dk. It never fails on the content of c: a tampered or mismatched
// ciphertext triggers implicit rejection rather than an error.
func Decaps(params kyber.ParameterSet, dk, c []byte) ([]byte, error) {
	return DecapsInternal(params, dk, c)
}
