package kyber

import (
	"fmt"

	"github.com/tuneinsight/mlkem/algebra"
	"github.com/tuneinsight/mlkem/bitpack"
	"github.com/tuneinsight/mlkem/symmetric"
)

// CBDFromPRF draws 64*eta bytes from prf and produces one ring element
// of n=256 centered-binomial-distributed coefficients: each consecutive
// block of 2*eta bits yields one coefficient, equal to the sum of the
// block's first eta bits minus the sum of its last eta bits, landing in
// [-eta, eta].
func CBDFromPRF(eta int, prf *symmetric.PRF) (algebra.ModPol, error) {
	raw, err := prf.Next(eta)
	if err != nil {
		return algebra.ModPol{}, err
	}
	if len(raw) != 64*eta {
		return algebra.ModPol{}, fmt.Errorf("kyber.CBDFromPRF: %w: PRF returned %d bytes, want %d", ErrInvalidArgument, len(raw), 64*eta)
	}

	bits := bitpack.BitsFromBytes(raw)

	coeffs := make([]algebra.ModInt, N)
	for i := 0; i < N; i++ {
		block := bits[i*2*eta : (i+1)*2*eta]
		var sum int64
		for _, b := range block[:eta] {
			sum += int64(b)
		}
		for _, b := range block[eta:] {
			sum -= int64(b)
		}
		c, err := algebra.NewModInt(sum, Q)
		if err != nil {
			return algebra.ModPol{}, err
		}
		coeffs[i] = c
	}

	return algebra.NewModPol(Q, N, coeffs)
}

// CBDVector draws k independent CBD_eta ring elements from prf, in
// order, returning them as a Vec. The PRF's counter is shared and
// advances by one per element, matching FIPS 203's loop over
// Algorithm 8 in Algorithms 13 and 14.
func CBDVector(k, eta int, prf *symmetric.PRF) (algebra.Vec, error) {
	elems := make([]algebra.ModPol, k)
	for i := 0; i < k; i++ {
		p, err := CBDFromPRF(eta, prf)
		if err != nil {
			return algebra.Vec{}, err
		}
		elems[i] = p
	}
	return algebra.NewVec(elems)
}
