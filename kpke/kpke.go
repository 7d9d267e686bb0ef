// Package kpke implements K-PKE, the lattice-based public-key encryption
// primitive ML-KEM is built on (FIPS 203 Algorithms 13-15), with the
// Number-Theoretic Transform omitted: every value that the standard
// stores in the NTT domain is stored here in the coefficient domain, per
// this module's non-goals around cross-implementation interoperability.
package kpke

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/mlkem/algebra"
	"github.com/tuneinsight/mlkem/kyber"
	"github.com/tuneinsight/mlkem/symmetric"
)

// ErrInvalidArgument is returned for wrong-length keys, ciphertexts, or
// seeds passed to this package's operations.
var ErrInvalidArgument = errors.New("kpke: invalid argument")

// KeyGen runs K-PKE.KeyGen (Algorithm 13) on the 32-byte seed d, returning
// the encryption key ek = ByteEncode12(t) || rho (length 384k+32) and the
// decryption key dk = ByteEncode12(s) (length 384k).
func KeyGen(params kyber.ParameterSet, d []byte) (ek, dk []byte, err error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	if len(d) != 32 {
		return nil, nil, fmt.Errorf("kpke.KeyGen: %w: seed must be 32 bytes, got %d", ErrInvalidArgument, len(d))
	}

	rho, sigma := symmetric.G(append(append([]byte{}, d...), byte(params.K)))

	prf, err := symmetric.NewPRF(sigma[:])
	if err != nil {
		return nil, nil, err
	}

	a, err := kyber.SampleMatrix(rho[:], params.K)
	if err != nil {
		return nil, nil, err
	}

	s, err := kyber.CBDVector(params.K, params.Eta1, prf)
	if err != nil {
		return nil, nil, err
	}
	e, err := kyber.CBDVector(params.K, params.Eta2, prf)
	if err != nil {
		return nil, nil, err
	}

	as, err := a.MulVec(s)
	if err != nil {
		return nil, nil, err
	}
	t, err := as.Add(e)
	if err != nil {
		return nil, nil, err
	}

	tEnc, err := kyber.EncodeVec12(t)
	if err != nil {
		return nil, nil, err
	}
	ek = append(tEnc, rho[:]...)

	dk, err = kyber.EncodeVec12(s)
	if err != nil {
		return nil, nil, err
	}

	return ek, dk, nil
}

// Encrypt runs K-PKE.Encrypt (Algorithm 14): it encrypts the 32-byte
// plaintext m under encryption key ek with the 32-byte randomness r,
// returning the ciphertext
// c = ByteEncode_du(Compress_du(u)) || ByteEncode_dv(Compress_dv(v)).
func Encrypt(params kyber.ParameterSet, ek, m, r []byte) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(ek) != params.EncapsulationKeySize() {
		return nil, fmt.Errorf("kpke.Encrypt: %w: ek must be %d bytes, got %d", ErrInvalidArgument, params.EncapsulationKeySize(), len(ek))
	}
	if len(m) != 32 {
		return nil, fmt.Errorf("kpke.Encrypt: %w: m must be 32 bytes, got %d", ErrInvalidArgument, len(m))
	}
	if len(r) != 32 {
		return nil, fmt.Errorf("kpke.Encrypt: %w: r must be 32 bytes, got %d", ErrInvalidArgument, len(r))
	}

	tBytes := ek[:384*params.K]
	rho := ek[384*params.K:]

	t, err := kyber.DecodeVec12(tBytes, params.K)
	if err != nil {
		return nil, err
	}
	a, err := kyber.SampleMatrix(rho, params.K)
	if err != nil {
		return nil, err
	}

	prf, err := symmetric.NewPRF(r)
	if err != nil {
		return nil, err
	}

	rVec, err := kyber.CBDVector(params.K, params.Eta1, prf)
	if err != nil {
		return nil, err
	}
	e1, err := kyber.CBDVector(params.K, params.Eta2, prf)
	if err != nil {
		return nil, err
	}
	e2, err := kyber.CBDFromPRF(params.Eta2, prf)
	if err != nil {
		return nil, err
	}

	mu, err := messagePolynomial(m)
	if err != nil {
		return nil, err
	}

	at, err := algebra.Transpose(a)
	if err != nil {
		return nil, err
	}
	u, err := at.MulVec(rVec)
	if err != nil {
		return nil, err
	}
	u, err = u.Add(e1)
	if err != nil {
		return nil, err
	}

	tr, err := t.Inner(rVec)
	if err != nil {
		return nil, err
	}
	v, err := tr.Add(e2)
	if err != nil {
		return nil, err
	}
	v, err = v.Add(mu)
	if err != nil {
		return nil, err
	}

	uEnc, err := kyber.EncodeCompressedVec(u, params.Du)
	if err != nil {
		return nil, err
	}
	vEnc, err := kyber.EncodeCompressed(v, params.Dv)
	if err != nil {
		return nil, err
	}

	return append(uEnc, vEnc...), nil
}

// Decrypt runs K-PKE.Decrypt (Algorithm 15): it always returns 32 bytes,
// which may be meaningless for a malformed or tampered ciphertext. K-PKE
// carries no authentication of its own; that weakness is what ML-KEM's
// Decaps_internal re-encryption check compensates for.
func Decrypt(params kyber.ParameterSet, dk, c []byte) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(dk) != params.DecryptionKeySizePKE() {
		return nil, fmt.Errorf("kpke.Decrypt: %w: dk must be %d bytes, got %d", ErrInvalidArgument, params.DecryptionKeySizePKE(), len(dk))
	}
	if len(c) != params.CiphertextSize() {
		return nil, fmt.Errorf("kpke.Decrypt: %w: c must be %d bytes, got %d", ErrInvalidArgument, params.CiphertextSize(), len(c))
	}

	uSize := 32 * params.Du * params.K
	c1, c2 := c[:uSize], c[uSize:]

	u, err := kyber.DecodeDecompressedVec(c1, params.K, params.Du)
	if err != nil {
		return nil, err
	}
	v, err := kyber.DecodeDecompressed(c2, params.Dv)
	if err != nil {
		return nil, err
	}

	s, err := kyber.DecodeVec12(dk, params.K)
	if err != nil {
		return nil, err
	}

	su, err := s.Inner(u)
	if err != nil {
		return nil, err
	}
	w, err := v.Sub(su)
	if err != nil {
		return nil, err
	}

	return kyber.EncodeCompressed(w, 1)
}

// messagePolynomial decodes a 32-byte plaintext into the ring element
// mu, where bit i becomes coefficient round(q/2) if set, 0 otherwise:
// mu = Decompress_1(ByteDecode_1(m)).
func messagePolynomial(m []byte) (algebra.ModPol, error) {
	return kyber.DecodeDecompressed(m, 1)
}
