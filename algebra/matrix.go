package algebra

import "fmt"

// Mat is a square k*k matrix of ring elements: an ordered sequence of k
// rows, each a Vec of length k.
type Mat struct {
	rows []Vec
}

// NewMat builds a matrix from k rows, each a Vec of length k.
func NewMat(rows []Vec) (Mat, error) {
	k := len(rows)
	if k == 0 {
		return Mat{}, fmt.Errorf("algebra.NewMat: %w: matrix must have at least one row", ErrInvalidArgument)
	}
	rr := make([]Vec, k)
	for i, row := range rows {
		if row.K() != k {
			return Mat{}, fmt.Errorf("algebra.NewMat: %w: row %d has length %d, matrix is %dx%d", ErrInvalidArgument, i, row.K(), k, k)
		}
		rr[i] = row
	}
	return Mat{rows: rr}, nil
}

// K returns the matrix dimension.
func (m Mat) K() int { return len(m.rows) }

// Row returns the i-th row.
func (m Mat) Row(i int) Vec { return m.rows[i] }

// MulVec maps each row of m to its inner product with v, returning the
// resulting vector m @ v.
func (m Mat) MulVec(v Vec) (Vec, error) {
	if v.K() != len(m.rows) {
		return Vec{}, fmt.Errorf("algebra.Mat.MulVec: %w: vector length %d, matrix is %dx%d", ErrInvalidArgument, v.K(), len(m.rows), len(m.rows))
	}
	out := make([]ModPol, len(m.rows))
	for i, row := range m.rows {
		p, err := row.Inner(v)
		if err != nil {
			return Vec{}, err
		}
		out[i] = p
	}
	return NewVec(out)
}

// Transpose returns the transpose of m, swapping row and column indices.
func Transpose(m Mat) (Mat, error) {
	k := m.K()
	rows := make([][]ModPol, k)
	for i := range rows {
		rows[i] = make([]ModPol, k)
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			rows[j][i] = m.rows[i].At(j)
		}
	}
	out := make([]Vec, k)
	for i, r := range rows {
		v, err := NewVec(r)
		if err != nil {
			return Mat{}, err
		}
		out[i] = v
	}
	return NewMat(out)
}

// Size is the maximum size of any entry in the matrix.
func (m Mat) Size() int64 {
	var max int64
	for _, row := range m.rows {
		if s := row.Size(); s > max {
			max = s
		}
	}
	return max
}
