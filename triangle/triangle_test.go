package triangle_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/prismfit/measure"
	"github.com/katalvlaran/prismfit/triangle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// theoretical is the closed-form measurement value, computed independently
// of the dual-number machinery for cross-checking.
func theoretical(r, alphaA, alphaB, d, h float64) float64 {
	offset := func(a float64) float64 {
		sin, cos := math.Sincos(a)
		return (d*(1+sin) - (d+2*h)*cos) / (2 * sin)
	}
	return 2*r*math.Sin(alphaA+alphaB) + offset(alphaA) + offset(alphaB)
}

// TestNew_DomainValidation verifies that out-of-domain geometries are
// rejected with ErrInvalidGeometry and in-domain ones are accepted.
func TestNew_DomainValidation(t *testing.T) {
	for _, tc := range []struct {
		name   string
		r      float64
		alpha1 float64
		alpha2 float64
	}{
		{"zero radius", 0, math.Pi / 3, math.Pi / 3},
		{"negative radius", -1, math.Pi / 3, math.Pi / 3},
		{"zero alpha1", 20, 0, math.Pi / 3},
		{"zero alpha2", 20, math.Pi / 3, 0},
		{"negative alpha1", 20, -0.1, math.Pi / 3},
		{"angle sum at pi", 20, math.Pi / 2, math.Pi / 2},
		{"angle sum above pi", 20, 2 * math.Pi / 3, 2 * math.Pi / 3},
	} {
		_, err := triangle.New(tc.r, tc.alpha1, tc.alpha2)
		assert.ErrorIs(t, err, triangle.ErrInvalidGeometry, tc.name)
	}

	tri, err := triangle.New(20, math.Pi/3, math.Pi/3)
	require.NoError(t, err)
	assert.Equal(t, 20.0, tri.R())
}

// TestTriangle_AngleSumInvariant verifies that α₁+α₂+α₃ is exactly π for
// arbitrary in-domain constructions — α₃ is derived, never stored.
func TestTriangle_AngleSumInvariant(t *testing.T) {
	for _, angles := range [][2]float64{
		{math.Pi / 3, math.Pi / 3},
		{math.Pi / 4, math.Pi / 4},
		{0.7853981, 1.0471975},
		{0.1, 3.0},
		{1.5707963, 1.5707962},
	} {
		tri, err := triangle.New(20, angles[0], angles[1])
		require.NoError(t, err, "angles %v", angles)
		assert.Equal(t, math.Pi, tri.Alpha1()+tri.Alpha2()+tri.Alpha3(),
			"angle sum must be exactly π for %v", angles)
	}
}

// TestTriangle_Side verifies the law-of-sines side lengths: each face is
// 2R·sin of the opposite angle.
func TestTriangle_Side(t *testing.T) {
	const r = 20.03
	tri, err := triangle.New(r, math.Pi/4, math.Pi/3) // α₃ = 5π/12
	require.NoError(t, err)

	assert.InDelta(t, 2*r*math.Sin(tri.Alpha3()), tri.Side(triangle.FaceA1A2), 1e-12)
	assert.InDelta(t, 2*r*math.Sin(tri.Alpha1()), tri.Side(triangle.FaceA2A3), 1e-12)
	assert.InDelta(t, 2*r*math.Sin(tri.Alpha2()), tri.Side(triangle.FaceA3A1), 1e-12)
}

// TestTheoreticalMeasurement_Value cross-checks the dual-number evaluation
// against the independently coded closed form, for every top vertex.
func TestTheoreticalMeasurement_Value(t *testing.T) {
	const r, a1, a2 = 20.03, 1.0, 1.2
	a3 := math.Pi - a1 - a2
	tri, err := triangle.New(r, a1, a2)
	require.NoError(t, err)

	cases := []struct {
		top            measure.Vertex
		alphaA, alphaB float64
	}{
		{measure.A1, a2, a3},
		{measure.A2, a1, a3},
		{measure.A3, a1, a2},
	}
	for _, tc := range cases {
		obs := measure.ObservedMeasurement{Top: tc.top, D: 12, H: 3.5}
		got := tri.TheoreticalMeasurement(obs)
		want := theoretical(r, tc.alphaA, tc.alphaB, 12, 3.5)
		assert.InDelta(t, want, got.Value(), 1e-12, "top %s", tc.top)
	}
}

// TestTheoreticalMeasurement_ZeroSpacer checks the equilateral, zero-height
// configuration against the simplified hand formula
// m = 2R·sin(2α) + d·(1+sin α − cos α)/sin α.
func TestTheoreticalMeasurement_ZeroSpacer(t *testing.T) {
	const r, d = 20.03, 20.0
	alpha := math.Pi / 3
	tri, err := triangle.New(r, alpha, alpha)
	require.NoError(t, err)

	sin, cos := math.Sincos(alpha)
	want := 2*r*math.Sin(2*alpha) + d*(1+sin-cos)/sin

	got := tri.TheoreticalMeasurement(measure.ObservedMeasurement{Top: measure.A3, D: d, H: 0})
	assert.InDelta(t, want, got.Value(), 1e-12)
}

// TestTheoreticalMeasurement_GradientMatchesCentralDifference verifies the
// analytic partials against central finite differences over a grid of
// in-domain geometries and pin/spacer combinations, including the chain-rule
// contribution of the derived α₃.
func TestTheoreticalMeasurement_GradientMatchesCentralDifference(t *testing.T) {
	value := func(r, a1, a2 float64, obs measure.ObservedMeasurement) float64 {
		tri, err := triangle.New(r, a1, a2)
		require.NoError(t, err)
		return tri.TheoreticalMeasurement(obs).Value()
	}

	const step = 1e-6
	geometries := [][3]float64{
		{20.03, math.Pi / 3, math.Pi / 3},
		{40.0, math.Pi / 4, math.Pi / 4},
		{60.0, math.Pi / 4, math.Pi / 3},
		{5.0, 0.4, 2.2},
	}
	pins := [][2]float64{{12, 0}, {20, 3.7}, {8, 2.5}, {15, 0}}

	for _, geo := range geometries {
		r, a1, a2 := geo[0], geo[1], geo[2]
		for _, pin := range pins {
			for _, top := range []measure.Vertex{measure.A1, measure.A2, measure.A3} {
				obs := measure.ObservedMeasurement{Top: top, D: pin[0], H: pin[1]}

				tri, err := triangle.New(r, a1, a2)
				require.NoError(t, err)
				grad := tri.TheoreticalMeasurement(obs).Partials()

				numR := (value(r+step, a1, a2, obs) - value(r-step, a1, a2, obs)) / (2 * step)
				numA1 := (value(r, a1+step, a2, obs) - value(r, a1-step, a2, obs)) / (2 * step)
				numA2 := (value(r, a1, a2+step, obs) - value(r, a1, a2-step, obs)) / (2 * step)

				assert.InEpsilon(t, numR, grad[triangle.ParamR], 1e-6,
					"∂m/∂R geo=%v pin=%v top=%s", geo, pin, top)
				assert.InEpsilon(t, numA1, grad[triangle.ParamAlpha1], 1e-6,
					"∂m/∂α₁ geo=%v pin=%v top=%s", geo, pin, top)
				assert.InEpsilon(t, numA2, grad[triangle.ParamAlpha2], 1e-6,
					"∂m/∂α₂ geo=%v pin=%v top=%s", geo, pin, top)
			}
		}
	}
}
