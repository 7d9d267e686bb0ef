// Package kyber attaches Kyber-specific behaviour — compression,
// serialization, and sampling — to the generic ring elements exported by
// package algebra. It mirrors the style of this module's teacher package
// (parameter sets as named literal values, e.g. bgv.ParametersLiteral)
// rather than the source material's subclassing of the algebraic types.
package kyber

import "fmt"

// Q is the coefficient modulus shared by every ML-KEM parameter set.
const Q int64 = 3329

// N is the ring degree shared by every ML-KEM parameter set.
const N int = 256

// Eta2 is the error distribution parameter shared by every parameter
// set; only Eta1 (the secret/noise-at-keygen parameter) varies.
const Eta2 int = 2

// ParameterSet names one of the three ML-KEM parameter sets from FIPS
// 203 section 8, table 2: the module rank k, the CBD widths eta1/eta2,
// and the ciphertext compression widths du/dv.
type ParameterSet struct {
	Name string
	K    int
	Eta1 int
	Eta2 int
	Du   int
	Dv   int
}

var (
	// ML_KEM512 is the 128-bit-security parameter set.
	ML_KEM512 = ParameterSet{Name: "ML-KEM-512", K: 2, Eta1: 3, Eta2: Eta2, Du: 10, Dv: 4}
	// ML_KEM768 is the 192-bit-security parameter set.
	ML_KEM768 = ParameterSet{Name: "ML-KEM-768", K: 3, Eta1: 2, Eta2: Eta2, Du: 10, Dv: 4}
	// ML_KEM1024 is the 256-bit-security parameter set.
	ML_KEM1024 = ParameterSet{Name: "ML-KEM-1024", K: 4, Eta1: 2, Eta2: Eta2, Du: 11, Dv: 5}
)

// EncapsulationKeySize returns the byte length of a K-PKE/ML-KEM
// encapsulation (public) key: ByteEncode_12(t) || rho.
func (p ParameterSet) EncapsulationKeySize() int {
	return 384*p.K + 32
}

// DecryptionKeySizePKE returns the byte length of a bare K-PKE
// decryption key: ByteEncode_12(s).
func (p ParameterSet) DecryptionKeySizePKE() int {
	return 384 * p.K
}

// DecryptionKeySize returns the byte length of an ML-KEM decryption key:
// dk_PKE || ek || H(ek) || z.
func (p ParameterSet) DecryptionKeySize() int {
	return p.DecryptionKeySizePKE() + p.EncapsulationKeySize() + 32 + 32
}

// CiphertextSize returns the byte length of a K-PKE/ML-KEM ciphertext:
// ByteEncode_du(Compress_du(u)) || ByteEncode_dv(Compress_dv(v)).
func (p ParameterSet) CiphertextSize() int {
	return 32 * (p.Du*p.K + p.Dv)
}

// Validate reports whether p names a structurally sound parameter set:
// its module rank must fall within the {2,3,4} range FIPS 203 defines.
// Callers that accept a caller-supplied ParameterSet rather than one of
// the ML_KEM512/768/1024 values should call this before using it.
func (p ParameterSet) Validate() error {
	if p.K < 2 || p.K > 4 {
		return fmt.Errorf("kyber.ParameterSet: %w: k=%d outside {2,3,4}", ErrUnsupported, p.K)
	}
	return nil
}
