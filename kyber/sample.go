package kyber

import (
	"fmt"

	"github.com/tuneinsight/mlkem/algebra"
	"github.com/tuneinsight/mlkem/symmetric"
)

// UniformFromSeed generates a pseudo-random ring element from a 34-byte
// input (a 32-byte seed plus a 2-byte index suffix), by absorbing it
// into a SHAKE128 XOF context and repeatedly squeezing 3 bytes at a
// time. FIPS 203's SampleNTT interprets its output as coefficients in
// the NTT domain; per spec.md's non-goals this module reinterprets the
// same byte stream directly as coefficients in the positional domain.
//
// Each 3-byte squeeze yields two candidate 12-bit integers via a
// little-endian nibble split (d1 is the low 12 bits of the 24-bit word,
// d2 the high 12 bits); a candidate is accepted as the next coefficient
// iff it is strictly less than q, and rejected otherwise. The loop
// terminates once n=256 coefficients have been collected; termination
// probability per triple exceeds 0.81, so no bound is imposed on the
// number of squeezes.
func UniformFromSeed(seed []byte) (algebra.ModPol, error) {
	if len(seed) != 34 {
		return algebra.ModPol{}, fmt.Errorf("kyber.UniformFromSeed: %w: seed must be 34 bytes, got %d", ErrInvalidArgument, len(seed))
	}

	ctx := symmetric.NewXOF()
	ctx.Absorb(seed)

	coeffs := make([]algebra.ModInt, 0, N)
	for len(coeffs) < N {
		triple, err := ctx.Squeeze(3)
		if err != nil {
			return algebra.ModPol{}, err
		}

		d1 := int64(triple[0]) | int64(triple[1]&0x0f)<<8
		d2 := int64(triple[1]>>4) | int64(triple[2])<<4

		if d1 < Q {
			c, err := algebra.NewModInt(d1, Q)
			if err != nil {
				return algebra.ModPol{}, err
			}
			coeffs = append(coeffs, c)
		}
		if d2 < Q && len(coeffs) < N {
			c, err := algebra.NewModInt(d2, Q)
			if err != nil {
				return algebra.ModPol{}, err
			}
			coeffs = append(coeffs, c)
		}
	}

	return algebra.NewModPol(Q, N, coeffs)
}
