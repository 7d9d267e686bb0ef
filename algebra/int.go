// Package algebra implements the generic algebraic layer that K-PKE and
// ML-KEM are built on: modular integers, ring elements of
// R_q = Z_q[X]/(X^n+1), and vectors/matrices thereof. The package knows
// nothing about Kyber; parameter-specific extensions (compression,
// serialization, sampling) live in the sibling kyber package.
package algebra

import "fmt"

// ModInt is an element of Z_q, represented by its unique representative r
// in [0, q). Values are immutable: every arithmetic operation returns a
// new ModInt rather than mutating the receiver.
type ModInt struct {
	r int64
	q int64
}

// NewModInt builds the class of v modulo q. q must be strictly positive.
func NewModInt(v, q int64) (ModInt, error) {
	if q <= 0 {
		return ModInt{}, fmt.Errorf("algebra.NewModInt: %w: modulus must be positive, got %d", ErrInvalidArgument, q)
	}
	return ModInt{r: reduce(v, q), q: q}, nil
}

// reduce returns v mod q in [0, q), for q > 0. Go's % operator keeps the
// sign of the dividend, so negative values need an extra correction.
func reduce(v, q int64) int64 {
	r := v % q
	if r < 0 {
		r += q
	}
	return r
}

// R returns the representative of m in [0, q).
func (m ModInt) R() int64 { return m.r }

// Q returns the modulus of m.
func (m ModInt) Q() int64 { return m.q }

func (m ModInt) sameModulus(other ModInt) error {
	if m.q != other.q {
		return fmt.Errorf("algebra.ModInt: %w: mismatched moduli %d and %d", ErrInvalidArgument, m.q, other.q)
	}
	return nil
}

// Add returns m + other mod q.
func (m ModInt) Add(other ModInt) (ModInt, error) {
	if err := m.sameModulus(other); err != nil {
		return ModInt{}, err
	}
	return ModInt{r: reduce(m.r+other.r, m.q), q: m.q}, nil
}

// Sub returns m - other mod q.
func (m ModInt) Sub(other ModInt) (ModInt, error) {
	if err := m.sameModulus(other); err != nil {
		return ModInt{}, err
	}
	return ModInt{r: reduce(m.r-other.r, m.q), q: m.q}, nil
}

// Mul returns m * other mod q.
func (m ModInt) Mul(other ModInt) (ModInt, error) {
	if err := m.sameModulus(other); err != nil {
		return ModInt{}, err
	}
	return ModInt{r: reduce(m.r*other.r, m.q), q: m.q}, nil
}

// Equal reports whether m and other carry the same representative and
// modulus.
func (m ModInt) Equal(other ModInt) bool {
	return m.r == other.r && m.q == other.q
}

// Size is the signed-magnitude norm min(r, q-r), the distance of the
// representative from 0 on the symmetric interval (-q/2, q/2].
func (m ModInt) Size() int64 {
	alt := m.q - m.r
	if alt < m.r {
		return alt
	}
	return m.r
}

// String renders m the way a debugger or failing test assertion would
// want to see it.
func (m ModInt) String() string {
	return fmt.Sprintf("ModInt(%d, %d)", m.r, m.q)
}
