/*
Package mlkem is the root of a cryptographic library implementing the
ML-KEM (Kyber) post-quantum key encapsulation mechanism, standardized in
FIPS 203, with the Number-Theoretic Transform deliberately omitted in
favor of a coefficient-domain polynomial representation.

The library is organized bottom-up:

  - algebra: the generic ring R_q = Z_q[X]/(X^n+1) arithmetic layer.
  - symmetric: SHA3-256/512 and SHAKE128/256 wrappers, including the
    stateful XOF and PRF contexts used to expand seeds.
  - bitpack: bidirectional bit/byte/integer conversions.
  - kyber: Kyber-specific extensions over the algebra layer — compression,
    serialization, uniform and centered-binomial sampling.
  - kpke: the inner K-PKE public-key encryption scheme.
  - mlkem: the IND-CCA ML-KEM construction built atop K-PKE via the
    Fujisaki-Okamoto transform.

This implementation intentionally does not interoperate with other FIPS
203 implementations: values the standard stores in the NTT domain are
stored here in the positional/coefficient domain instead, and no attempt
is made at constant-time arithmetic.
*/
package mlkem
