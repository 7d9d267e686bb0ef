package algebra

import "fmt"

// ModPol is an element of the ring R_q = Z_q[X]/(X^n+1): the coefficient
// vector c[0] + c[1]X + ... + c[n-1]X^(n-1), reduced modulo X^n+1. All
// coefficients share the same modulus q.
type ModPol struct {
	q int64
	n int
	c []ModInt
}

// NewModPol builds the ring element with the given coefficients. len(c)
// must equal n, and n must be positive.
func NewModPol(q int64, n int, c []ModInt) (ModPol, error) {
	if n <= 0 {
		return ModPol{}, fmt.Errorf("algebra.NewModPol: %w: n must be positive, got %d", ErrInvalidArgument, n)
	}
	if len(c) != n {
		return ModPol{}, fmt.Errorf("algebra.NewModPol: %w: expected %d coefficients, got %d", ErrInvalidArgument, n, len(c))
	}
	cc := make([]ModInt, n)
	for i, ci := range c {
		if ci.Q() != q {
			return ModPol{}, fmt.Errorf("algebra.NewModPol: %w: coefficient %d has modulus %d, want %d", ErrInvalidArgument, i, ci.Q(), q)
		}
		cc[i] = ci
	}
	return ModPol{q: q, n: n, c: cc}, nil
}

// ZeroPol returns the additive identity of R_q with n coefficients.
func ZeroPol(q int64, n int) (ModPol, error) {
	zero, err := NewModInt(0, q)
	if err != nil {
		return ModPol{}, err
	}
	c := make([]ModInt, n)
	for i := range c {
		c[i] = zero
	}
	return NewModPol(q, n, c)
}

// Q returns the coefficient modulus.
func (p ModPol) Q() int64 { return p.q }

// N returns the ring degree (number of coefficients).
func (p ModPol) N() int { return p.n }

// Coeffs returns a copy of the coefficient vector, in ascending degree
// order (Coeffs()[i] is the coefficient of X^i).
func (p ModPol) Coeffs() []ModInt {
	out := make([]ModInt, p.n)
	copy(out, p.c)
	return out
}

func (p ModPol) sameShape(other ModPol) error {
	if p.q != other.q || p.n != other.n {
		return fmt.Errorf("algebra.ModPol: %w: shape mismatch (q=%d,n=%d) vs (q=%d,n=%d)", ErrInvalidArgument, p.q, p.n, other.q, other.n)
	}
	return nil
}

// Add returns p + other, coefficient-wise. The degree cannot increase, so
// no reduction modulo X^n+1 is needed.
func (p ModPol) Add(other ModPol) (ModPol, error) {
	if err := p.sameShape(other); err != nil {
		return ModPol{}, err
	}
	c := make([]ModInt, p.n)
	for i := range c {
		var err error
		if c[i], err = p.c[i].Add(other.c[i]); err != nil {
			return ModPol{}, err
		}
	}
	return ModPol{q: p.q, n: p.n, c: c}, nil
}

// Sub returns p - other, coefficient-wise.
func (p ModPol) Sub(other ModPol) (ModPol, error) {
	if err := p.sameShape(other); err != nil {
		return ModPol{}, err
	}
	c := make([]ModInt, p.n)
	for i := range c {
		var err error
		if c[i], err = p.c[i].Sub(other.c[i]); err != nil {
			return ModPol{}, err
		}
	}
	return ModPol{q: p.q, n: p.n, c: c}, nil
}

// Mul returns p * other, the negacyclic convolution modulo X^n+1: a
// partial product at index k = i+j is added to coefficient k if k < n,
// and subtracted from coefficient k-n otherwise, since X^n == -1 in this
// ring.
func (p ModPol) Mul(other ModPol) (ModPol, error) {
	if err := p.sameShape(other); err != nil {
		return ModPol{}, err
	}
	acc, err := ZeroPol(p.q, p.n)
	if err != nil {
		return ModPol{}, err
	}
	c := acc.c
	for i, a := range p.c {
		for j, b := range other.c {
			prod, err := a.Mul(b)
			if err != nil {
				return ModPol{}, err
			}
			k := i + j
			if k >= p.n {
				k -= p.n
				if c[k], err = c[k].Sub(prod); err != nil {
					return ModPol{}, err
				}
			} else {
				if c[k], err = c[k].Add(prod); err != nil {
					return ModPol{}, err
				}
			}
		}
	}
	return ModPol{q: p.q, n: p.n, c: c}, nil
}

// Equal reports whether p and other carry identical coefficients.
func (p ModPol) Equal(other ModPol) bool {
	if p.q != other.q || p.n != other.n {
		return false
	}
	for i := range p.c {
		if !p.c[i].Equal(other.c[i]) {
			return false
		}
	}
	return true
}

// Size is the maximum size of any coefficient.
func (p ModPol) Size() int64 {
	var max int64
	for _, ci := range p.c {
		if s := ci.Size(); s > max {
			max = s
		}
	}
	return max
}
