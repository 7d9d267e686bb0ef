package algebra_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/mlkem/algebra"
)

// cmpOpts allows cmp to look at ModInt/ModPol's unexported fields
// directly, rather than requiring exported accessor methods on every
// comparison. Used only by tests, to render a readable diff on failure
// instead of testify's opaque "expected true, got false".
var cmpOpts = cmp.AllowUnexported(algebra.ModInt{}, algebra.ModPol{})

func requireEqualPol(t *testing.T, want, got algebra.ModPol) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
		t.Fatalf("ModPol mismatch (-want +got):\n%s", diff)
	}
}

func mustInt(t *testing.T, v, q int64) algebra.ModInt {
	t.Helper()
	m, err := algebra.NewModInt(v, q)
	require.NoError(t, err)
	return m
}

func mustPol(t *testing.T, q int64, n int, vals []int64) algebra.ModPol {
	t.Helper()
	c := make([]algebra.ModInt, n)
	for i, v := range vals {
		c[i] = mustInt(t, v, q)
	}
	p, err := algebra.NewModPol(q, n, c)
	require.NoError(t, err)
	return p
}

// Test_Slide26PolynomialMultiplication reproduces spec.md's worked example
// with q=41, n=4: (32 + 0X + 17X^2 + 22X^3) * (11 + 7X + 19X^2 + X^3)
// = 39 + 35X + 35X^2 + 24X^3.
func Test_Slide26PolynomialMultiplication(t *testing.T) {
	f := mustPol(t, 41, 4, []int64{32, 0, 17, 22})
	g := mustPol(t, 41, 4, []int64{11, 7, 19, 1})

	got, err := f.Mul(g)
	require.NoError(t, err)

	want := mustPol(t, 41, 4, []int64{39, 35, 35, 24})
	requireEqualPol(t, want, got)
}

// Test_Slide35SizeUnderMultiplication reproduces spec.md's size example
// with q=41, n=4: f = 1+X-2X^2+2X^3, g = -2+2X^2-X^3;
// size(f)=2, size(g)=2, size(f*g)=8.
func Test_Slide35SizeUnderMultiplication(t *testing.T) {
	f := mustPol(t, 41, 4, []int64{1, 1, -2, 2})
	g := mustPol(t, 41, 4, []int64{-2, 0, 2, -1})

	require.EqualValues(t, 2, f.Size())
	require.EqualValues(t, 2, g.Size())

	fg, err := f.Mul(g)
	require.NoError(t, err)
	require.EqualValues(t, 8, fg.Size())
}

// Test_Slide39MLWEInstance builds a toy MLWE instance t = A@s + e with
// q=541, n=4: a 3x2 matrix A, a secret s and an error e, both of size 1.
// Since algebra.Mat models only square matrices (the only shape K-PKE
// needs), the 3x2 product A@s is computed here as three row/vector inner
// products instead of going through Mat. The test checks the sizes of s
// and e and that size(t) lies within [0, q/2]; it does not check an
// exact value of size(t).
func Test_Slide39MLWEInstance(t *testing.T) {
	const q = 541

	vec := func(vals ...[]int64) algebra.Vec {
		elems := make([]algebra.ModPol, len(vals))
		for i, v := range vals {
			elems[i] = mustPol(t, q, 4, v)
		}
		v, err := algebra.NewVec(elems)
		require.NoError(t, err)
		return v
	}

	rows := []algebra.Vec{
		vec([]int64{1, 2, 3, 4}, []int64{5, 6, 7, 8}),
		vec([]int64{9, 10, 11, 12}, []int64{13, 14, 15, 16}),
		vec([]int64{17, 18, 19, 20}, []int64{21, 22, 23, 24}),
	}

	s := vec([]int64{1, -1, 0, 1}, []int64{0, 1, -1, 1})
	e := vec([]int64{1, 1, 1, 1}, []int64{1, 1, 1, 1}, []int64{1, 1, 1, 1})

	require.EqualValues(t, 1, s.Size())
	require.EqualValues(t, 1, e.Size())

	tElems := make([]algebra.ModPol, len(rows))
	for i, row := range rows {
		prod, err := row.Inner(s)
		require.NoError(t, err)
		tElems[i] = prod
	}
	tVec, err := algebra.NewVec(tElems)
	require.NoError(t, err)

	result, err := tVec.Add(e)
	require.NoError(t, err)
	require.LessOrEqual(t, result.Size(), int64(q/2))
}

func TestModIntArithmeticLaws(t *testing.T) {
	a := mustInt(t, 17, 41)
	b := mustInt(t, 23, 41)
	c := mustInt(t, 5, 41)

	ab, err := a.Add(b)
	require.NoError(t, err)
	ba, err := b.Add(a)
	require.NoError(t, err)
	require.True(t, ab.Equal(ba), "addition must commute")

	lhs, err := a.Add(b)
	require.NoError(t, err)
	lhs, err = lhs.Add(c)
	require.NoError(t, err)

	rhs, err := b.Add(c)
	require.NoError(t, err)
	rhs, err = a.Add(rhs)
	require.NoError(t, err)
	require.True(t, lhs.Equal(rhs), "addition must associate")

	require.GreaterOrEqual(t, a.Size(), int64(0))
	require.LessOrEqual(t, a.Size(), int64(41/2))
}

func TestMatTransposeInvolution(t *testing.T) {
	p := func(vals []int64) algebra.ModPol { return mustPol(t, 41, 4, vals) }
	v := func(vals ...algebra.ModPol) algebra.Vec {
		vv, err := algebra.NewVec(vals)
		require.NoError(t, err)
		return vv
	}

	m, err := algebra.NewMat([]algebra.Vec{
		v(p([]int64{1, 0, 0, 0}), p([]int64{0, 1, 0, 0})),
		v(p([]int64{0, 0, 1, 0}), p([]int64{0, 0, 0, 1})),
	})
	require.NoError(t, err)

	tt, err := algebra.Transpose(m)
	require.NoError(t, err)
	tt2, err := algebra.Transpose(tt)
	require.NoError(t, err)

	for i := 0; i < m.K(); i++ {
		for j := 0; j < m.K(); j++ {
			requireEqualPol(t, m.Row(i).At(j), tt2.Row(i).At(j))
		}
	}
}

func TestVecInnerProductCommutes(t *testing.T) {
	p := func(vals []int64) algebra.ModPol { return mustPol(t, 41, 4, vals) }
	a, err := algebra.NewVec([]algebra.ModPol{p([]int64{1, 2, 3, 4}), p([]int64{4, 3, 2, 1})})
	require.NoError(t, err)
	b, err := algebra.NewVec([]algebra.ModPol{p([]int64{5, 6, 7, 8}), p([]int64{8, 7, 6, 5})})
	require.NoError(t, err)

	ab, err := a.Inner(b)
	require.NoError(t, err)
	ba, err := b.Inner(a)
	require.NoError(t, err)
	requireEqualPol(t, ab, ba)
}
