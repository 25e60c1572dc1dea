package triangle

import (
	"errors"
	"math"

	"github.com/katalvlaran/prismfit/gradient"
	"github.com/katalvlaran/prismfit/measure"
)

// Indices of the free parameters in every parameter vector and Jacobian
// column ordering used across the module.
const (
	// ParamR is the circumradius index.
	ParamR = 0
	// ParamAlpha1 is the first angle index.
	ParamAlpha1 = 1
	// ParamAlpha2 is the second angle index.
	ParamAlpha2 = 2
	// Params is the total number of free parameters. α₃ is not one of them.
	Params = 3
)

// ErrInvalidGeometry indicates construction parameters outside the model
// domain: R ≤ 0, α₁ ≤ 0, α₂ ≤ 0, or α₁+α₂ ≥ π (which would make the derived
// α₃ non-positive).
var ErrInvalidGeometry = errors.New("triangle: geometry outside valid domain")

// Triangle is one candidate rule cross-section: circumradius and two free
// angles as dual numbers, plus the derived third angle. Immutable; build a
// fresh Triangle for every candidate parameter vector.
type Triangle struct {
	r  gradient.Gradient
	a1 gradient.Gradient
	a2 gradient.Gradient
	a3 gradient.Gradient
}

// New validates (r, alpha1, alpha2) and builds a Triangle. The third angle
// is always computed as π − α₁ − α₂; deriving it here (rather than storing a
// fourth parameter) makes the angle-sum constraint structural.
func New(r, alpha1, alpha2 float64) (*Triangle, error) {
	if r <= 0 || alpha1 <= 0 || alpha2 <= 0 || alpha1+alpha2 >= math.Pi {
		return nil, ErrInvalidGeometry
	}
	gr := gradient.Variable(Params, ParamR, r)
	g1 := gradient.Variable(Params, ParamAlpha1, alpha1)
	g2 := gradient.Variable(Params, ParamAlpha2, alpha2)
	g3 := g1.Add(g2).AddScalar(-math.Pi).Neg()
	return &Triangle{r: gr, a1: g1, a2: g2, a3: g3}, nil
}

// R returns the circumradius.
func (t *Triangle) R() float64 { return t.r.Value() }

// Alpha1 returns the first angle, in radians.
func (t *Triangle) Alpha1() float64 { return t.a1.Value() }

// Alpha2 returns the second angle, in radians.
func (t *Triangle) Alpha2() float64 { return t.a2.Value() }

// Alpha3 returns the derived third angle π − α₁ − α₂, in radians.
func (t *Triangle) Alpha3() float64 { return t.a3.Value() }

// Side returns the length of a face: by the law of sines it is 2R·sin of the
// angle at the opposite vertex.
func (t *Triangle) Side(f Face) float64 {
	var opposite gradient.Gradient
	switch f {
	case FaceA2A3:
		opposite = t.a1
	case FaceA3A1:
		opposite = t.a2
	default:
		opposite = t.a3
	}
	return 2 * t.r.Value() * math.Sin(opposite.Value())
}

// TheoreticalMeasurement predicts the measured distance for one observation
// against this candidate geometry. The result carries the exact partials
// with respect to (R, α₁, α₂); wherever the derived α₃ enters, its
// chain-rule contribution is already folded in.
func (t *Triangle) TheoreticalMeasurement(obs measure.ObservedMeasurement) gradient.Gradient {
	alphaA, alphaB := t.bottomAngles(obs.Top)
	return t.bottomLength(alphaA, alphaB).
		Add(pinOffset(alphaA, obs.D, obs.H)).
		Add(pinOffset(alphaB, obs.D, obs.H))
}

// bottomAngles returns the two angles adjacent to the measured base for the
// given top vertex.
func (t *Triangle) bottomAngles(top measure.Vertex) (alphaA, alphaB gradient.Gradient) {
	switch top {
	case measure.A1:
		return t.a2, t.a3
	case measure.A2:
		return t.a1, t.a3
	default:
		return t.a1, t.a2
	}
}

// bottomLength computes the base side length 2R·sin(αA+αB).
func (t *Triangle) bottomLength(alphaA, alphaB gradient.Gradient) gradient.Gradient {
	return t.r.Scale(2).Mul(alphaA.Add(alphaB).Sin())
}

// pinOffset computes how far beyond the base vertex a pin of diameter d on a
// spacer of height h protrudes, for the face meeting the base at angle α:
//
//	[d·(1+sin α) − (d+2h)·cos α] / (2·sin α)
//
// Safe over the constructor domain: 0 < α < π keeps sin α > 0.
func pinOffset(alpha gradient.Gradient, d, h float64) gradient.Gradient {
	sin, cos := alpha.SinCos()
	return sin.AddScalar(1).Scale(d).
		Sub(cos.Scale(d + 2*h)).
		Div(sin.Scale(2))
}

// contactLocation is the distance of the pin/face contact point from the
// base vertex at angle α, measured along the face:
//
//	l(α) = (2h + d·(1−cos α)) / (2·sin α)
func contactLocation(alpha, d, h float64) float64 {
	sin, cos := math.Sincos(alpha)
	return (2*h + d*(1-cos)) / (2 * sin)
}
