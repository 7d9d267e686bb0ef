package kyber

import (
	"fmt"

	"github.com/tuneinsight/mlkem/algebra"
)

// SampleMatrix builds the public k*k matrix A from a 32-byte seed rho.
// Entry A[i][j] is UniformFromSeed(rho || byte(j) || byte(i)): the seed
// suffix is (column, row), not (row, column). This byte order is
// mandatory for agreement with the FIPS 203 test vectors that exercise
// the coefficient-domain reinterpretation of SampleNTT.
func SampleMatrix(rho []byte, k int) (algebra.Mat, error) {
	if len(rho) != 32 {
		return algebra.Mat{}, fmt.Errorf("kyber.SampleMatrix: %w: rho must be 32 bytes, got %d", ErrInvalidArgument, len(rho))
	}
	if k < 2 || k > 4 {
		return algebra.Mat{}, fmt.Errorf("kyber.SampleMatrix: %w: k=%d outside {2,3,4}", ErrUnsupported, k)
	}

	rows := make([]algebra.Vec, k)
	for i := 0; i < k; i++ {
		entries := make([]algebra.ModPol, k)
		for j := 0; j < k; j++ {
			seed := make([]byte, 0, 34)
			seed = append(seed, rho...)
			seed = append(seed, byte(j), byte(i))

			p, err := UniformFromSeed(seed)
			if err != nil {
				return algebra.Mat{}, err
			}
			entries[j] = p
		}
		row, err := algebra.NewVec(entries)
		if err != nil {
			return algebra.Mat{}, err
		}
		rows[i] = row
	}

	return algebra.NewMat(rows)
}
