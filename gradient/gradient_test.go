package gradient_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/prismfit/gradient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGradient_VariableAndConstant verifies the seed derivative vectors:
// a variable carries a unit vector, a constant carries all zeros.
func TestGradient_VariableAndConstant(t *testing.T) {
	v := gradient.Variable(3, 1, 2.5)
	assert.Equal(t, 2.5, v.Value(), "variable value")
	assert.Equal(t, []float64{0, 1, 0}, v.Partials(), "variable unit seed")
	assert.Equal(t, 3, v.Freedom(), "freedom count")

	c := gradient.Constant(3, 7.0)
	assert.Equal(t, 7.0, c.Value(), "constant value")
	assert.Equal(t, []float64{0, 0, 0}, c.Partials(), "constant zero seed")
}

// TestGradient_VariableBadIndex verifies that an out-of-range variable index
// panics with ErrFreedomMismatch.
func TestGradient_VariableBadIndex(t *testing.T) {
	assert.PanicsWithValue(t, gradient.ErrFreedomMismatch, func() {
		gradient.Variable(3, 3, 1.0)
	}, "index == n must panic")
	assert.PanicsWithValue(t, gradient.ErrFreedomMismatch, func() {
		gradient.Variable(3, -1, 1.0)
	}, "negative index must panic")
}

// TestGradient_FreedomMismatchPanics verifies that combining Gradients over
// different numbers of free variables panics with ErrFreedomMismatch.
func TestGradient_FreedomMismatchPanics(t *testing.T) {
	a := gradient.Variable(2, 0, 1)
	b := gradient.Variable(3, 0, 1)
	assert.PanicsWithValue(t, gradient.ErrFreedomMismatch, func() { a.Add(b) })
	assert.PanicsWithValue(t, gradient.ErrFreedomMismatch, func() { a.Mul(b) })
}

// TestGradient_ArithmeticRules checks the calculus rules on a known pair:
// u = x (value 3), v = y (value 4) over two free variables.
func TestGradient_ArithmeticRules(t *testing.T) {
	u := gradient.Variable(2, 0, 3)
	v := gradient.Variable(2, 1, 4)

	sum := u.Add(v)
	assert.Equal(t, 7.0, sum.Value())
	assert.Equal(t, []float64{1, 1}, sum.Partials(), "(u+v)' = u'+v'")

	diff := u.Sub(v)
	assert.Equal(t, -1.0, diff.Value())
	assert.Equal(t, []float64{1, -1}, diff.Partials(), "(u-v)' = u'-v'")

	prod := u.Mul(v)
	assert.Equal(t, 12.0, prod.Value())
	assert.Equal(t, []float64{4, 3}, prod.Partials(), "(uv)' = u'v+uv'")

	quot := u.Div(v)
	assert.Equal(t, 0.75, quot.Value())
	assert.InDelta(t, 1.0/4, quot.Partial(0), 1e-15, "∂(u/v)/∂u = 1/v")
	assert.InDelta(t, -3.0/16, quot.Partial(1), 1e-15, "∂(u/v)/∂v = -u/v²")

	scaled := u.Scale(-2)
	assert.Equal(t, -6.0, scaled.Value())
	assert.Equal(t, []float64{-2, 0}, scaled.Partials())

	shifted := u.AddScalar(math.Pi)
	assert.InDelta(t, 3+math.Pi, shifted.Value(), 1e-15)
	assert.Equal(t, []float64{1, 0}, shifted.Partials(), "adding a scalar keeps partials")

	neg := v.Neg()
	assert.Equal(t, -4.0, neg.Value())
	assert.Equal(t, []float64{0, -1}, neg.Partials())
}

// TestGradient_SinCos checks the trigonometric derivatives at a generic angle.
func TestGradient_SinCos(t *testing.T) {
	x := gradient.Variable(1, 0, 0.7)

	sin := x.Sin()
	assert.InDelta(t, math.Sin(0.7), sin.Value(), 1e-15)
	assert.InDelta(t, math.Cos(0.7), sin.Partial(0), 1e-15, "(sin x)' = cos x")

	cos := x.Cos()
	assert.InDelta(t, math.Cos(0.7), cos.Value(), 1e-15)
	assert.InDelta(t, -math.Sin(0.7), cos.Partial(0), 1e-15, "(cos x)' = -sin x")

	s, c := x.SinCos()
	assert.Equal(t, sin.Value(), s.Value(), "SinCos sin matches Sin")
	assert.Equal(t, cos.Value(), c.Value(), "SinCos cos matches Cos")
}

// TestGradient_Immutability verifies that operations never mutate operands
// and that Partials returns a defensive copy.
func TestGradient_Immutability(t *testing.T) {
	u := gradient.Variable(2, 0, 3)
	v := gradient.Variable(2, 1, 4)
	_ = u.Add(v)
	_ = u.Mul(v)
	assert.Equal(t, []float64{1, 0}, u.Partials(), "u untouched by Add/Mul")
	assert.Equal(t, []float64{0, 1}, v.Partials(), "v untouched by Add/Mul")

	p := u.Partials()
	p[0] = 99
	assert.Equal(t, []float64{1, 0}, u.Partials(), "Partials returns a copy")
}

// TestGradient_MatchesCentralDifference compares the propagated derivatives
// of a composite trigonometric expression (shaped like the pin-offset
// formula) against central finite differences, at several in-domain angles.
func TestGradient_MatchesCentralDifference(t *testing.T) {
	// f(a, b) = (d(1+sin a) - (d+2h)cos a) / (2 sin a) + sin(a+b)
	const d, h = 12.0, 3.5
	f := func(a, b float64) float64 {
		return (d*(1+math.Sin(a))-(d+2*h)*math.Cos(a))/(2*math.Sin(a)) +
			math.Sin(a+b)
	}
	fg := func(a, b gradient.Gradient) gradient.Gradient {
		sa, ca := a.SinCos()
		num := sa.AddScalar(1).Scale(d).Sub(ca.Scale(d + 2*h))
		return num.Div(sa.Scale(2)).Add(a.Add(b).Sin())
	}

	const step = 1e-6
	for _, ab := range [][2]float64{
		{math.Pi / 3, math.Pi / 3},
		{math.Pi / 4, math.Pi / 2},
		{1.2, 0.4},
		{0.3, 2.0},
	} {
		a := gradient.Variable(2, 0, ab[0])
		b := gradient.Variable(2, 1, ab[1])
		g := fg(a, b)

		require.InDelta(t, f(ab[0], ab[1]), g.Value(), 1e-12, "value at %v", ab)

		dfda := (f(ab[0]+step, ab[1]) - f(ab[0]-step, ab[1])) / (2 * step)
		dfdb := (f(ab[0], ab[1]+step) - f(ab[0], ab[1]-step)) / (2 * step)
		assert.InEpsilon(t, dfda, g.Partial(0), 1e-6, "∂f/∂a at %v", ab)
		assert.InEpsilon(t, dfdb, g.Partial(1), 1e-6, "∂f/∂b at %v", ab)
	}
}
