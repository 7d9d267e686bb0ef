package algebra

import "fmt"

// Vec is an element of R_q^k: an ordered sequence of k ring elements
// sharing a common (q, n).
type Vec struct {
	v []ModPol
}

// NewVec builds a vector from k ring elements, k >= 1, all sharing the
// same modulus and degree.
func NewVec(v []ModPol) (Vec, error) {
	if len(v) == 0 {
		return Vec{}, fmt.Errorf("algebra.NewVec: %w: vector must have at least one element", ErrInvalidArgument)
	}
	q, n := v[0].Q(), v[0].N()
	vv := make([]ModPol, len(v))
	for i, p := range v {
		if p.Q() != q || p.N() != n {
			return Vec{}, fmt.Errorf("algebra.NewVec: %w: element %d has shape (q=%d,n=%d), want (q=%d,n=%d)", ErrInvalidArgument, i, p.Q(), p.N(), q, n)
		}
		vv[i] = p
	}
	return Vec{v: vv}, nil
}

// K returns the number of ring elements in the vector.
func (v Vec) K() int { return len(v.v) }

// At returns the i-th ring element of the vector.
func (v Vec) At(i int) ModPol { return v.v[i] }

// Elems returns a copy of the vector's elements.
func (v Vec) Elems() []ModPol {
	out := make([]ModPol, len(v.v))
	copy(out, v.v)
	return out
}

func (v Vec) sameShape(other Vec) error {
	if len(v.v) != len(other.v) {
		return fmt.Errorf("algebra.Vec: %w: length mismatch %d vs %d", ErrInvalidArgument, len(v.v), len(other.v))
	}
	return nil
}

// Add returns v + other, element-wise.
func (v Vec) Add(other Vec) (Vec, error) {
	if err := v.sameShape(other); err != nil {
		return Vec{}, err
	}
	out := make([]ModPol, len(v.v))
	for i := range out {
		var err error
		if out[i], err = v.v[i].Add(other.v[i]); err != nil {
			return Vec{}, err
		}
	}
	return Vec{v: out}, nil
}

// Sub returns v - other, element-wise.
func (v Vec) Sub(other Vec) (Vec, error) {
	if err := v.sameShape(other); err != nil {
		return Vec{}, err
	}
	out := make([]ModPol, len(v.v))
	for i := range out {
		var err error
		if out[i], err = v.v[i].Sub(other.v[i]); err != nil {
			return Vec{}, err
		}
	}
	return Vec{v: out}, nil
}

// Inner returns the inner product of v and other: the ring-element sum of
// the pointwise ring products v[i]*other[i]. The fold starts from the
// explicit zero element of R_q rather than the fragile v[0]-v[0]
// bootstrapping trick.
func (v Vec) Inner(other Vec) (ModPol, error) {
	if err := v.sameShape(other); err != nil {
		return ModPol{}, err
	}
	acc, err := ZeroPol(v.v[0].Q(), v.v[0].N())
	if err != nil {
		return ModPol{}, err
	}
	for i := range v.v {
		prod, err := v.v[i].Mul(other.v[i])
		if err != nil {
			return ModPol{}, err
		}
		if acc, err = acc.Add(prod); err != nil {
			return ModPol{}, err
		}
	}
	return acc, nil
}

// Size is the maximum size of any element in the vector.
func (v Vec) Size() int64 {
	var max int64
	for _, p := range v.v {
		if s := p.Size(); s > max {
			max = s
		}
	}
	return max
}
