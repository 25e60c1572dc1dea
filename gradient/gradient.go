package gradient

import (
	"errors"
	"math"
)

// ErrFreedomMismatch signals that two Gradients built over different numbers
// of free variables were combined. This is a programmer error, not a runtime
// condition, so the arithmetic methods panic with this sentinel instead of
// returning it.
var ErrFreedomMismatch = errors.New("gradient: freedom count mismatch")

// Gradient is a dual number: a value plus its first partial derivatives with
// respect to a fixed set of free variables. The zero Gradient is a constant 0
// over zero free variables and is of limited use; build values with Variable
// or Constant.
type Gradient struct {
	value float64
	grad  []float64
}

// Variable returns the index-th free variable of an n-variable expression,
// holding the given value. Its derivative vector is the index-th unit vector.
// Panics if index is outside [0, n).
func Variable(n, index int, value float64) Gradient {
	if index < 0 || index >= n {
		panic(ErrFreedomMismatch)
	}
	g := make([]float64, n)
	g[index] = 1
	return Gradient{value: value, grad: g}
}

// Constant returns a constant over n free variables: all partials are zero.
func Constant(n int, value float64) Gradient {
	return Gradient{value: value, grad: make([]float64, n)}
}

// Value returns the scalar value.
func (g Gradient) Value() float64 { return g.value }

// Freedom returns the number of free variables.
func (g Gradient) Freedom() int { return len(g.grad) }

// Partial returns ∂g/∂x_index. Panics if index is out of range.
func (g Gradient) Partial(index int) float64 {
	if index < 0 || index >= len(g.grad) {
		panic(ErrFreedomMismatch)
	}
	return g.grad[index]
}

// Partials returns a copy of the derivative vector, preserving immutability.
func (g Gradient) Partials() []float64 {
	out := make([]float64, len(g.grad))
	copy(out, g.grad)
	return out
}

// Add returns g + o.
func (g Gradient) Add(o Gradient) Gradient {
	g.mustMatch(o)
	sum := make([]float64, len(g.grad))
	for i := range sum {
		sum[i] = g.grad[i] + o.grad[i]
	}
	return Gradient{value: g.value + o.value, grad: sum}
}

// Sub returns g − o.
func (g Gradient) Sub(o Gradient) Gradient {
	g.mustMatch(o)
	diff := make([]float64, len(g.grad))
	for i := range diff {
		diff[i] = g.grad[i] - o.grad[i]
	}
	return Gradient{value: g.value - o.value, grad: diff}
}

// Neg returns −g.
func (g Gradient) Neg() Gradient {
	neg := make([]float64, len(g.grad))
	for i := range neg {
		neg[i] = -g.grad[i]
	}
	return Gradient{value: -g.value, grad: neg}
}

// Mul returns g·o, propagating the product rule (uv)' = u'v + uv'.
func (g Gradient) Mul(o Gradient) Gradient {
	g.mustMatch(o)
	prod := make([]float64, len(g.grad))
	for i := range prod {
		prod[i] = g.grad[i]*o.value + g.value*o.grad[i]
	}
	return Gradient{value: g.value * o.value, grad: prod}
}

// Div returns g/o, propagating the quotient rule (u/v)' = (u'v − uv')/v².
// A zero divisor follows IEEE-754 semantics (±Inf or NaN entries).
func (g Gradient) Div(o Gradient) Gradient {
	g.mustMatch(o)
	inv2 := 1 / (o.value * o.value)
	quot := make([]float64, len(g.grad))
	for i := range quot {
		quot[i] = (g.grad[i]*o.value - g.value*o.grad[i]) * inv2
	}
	return Gradient{value: g.value / o.value, grad: quot}
}

// AddScalar returns g + s for a plain constant s.
func (g Gradient) AddScalar(s float64) Gradient {
	out := make([]float64, len(g.grad))
	copy(out, g.grad)
	return Gradient{value: g.value + s, grad: out}
}

// Scale returns s·g for a plain constant s.
func (g Gradient) Scale(s float64) Gradient {
	out := make([]float64, len(g.grad))
	for i := range out {
		out[i] = s * g.grad[i]
	}
	return Gradient{value: s * g.value, grad: out}
}

// Sin returns sin(g) with derivative cos(g)·g'.
func (g Gradient) Sin() Gradient {
	sin, _ := g.SinCos()
	return sin
}

// Cos returns cos(g) with derivative −sin(g)·g'.
func (g Gradient) Cos() Gradient {
	_, cos := g.SinCos()
	return cos
}

// SinCos returns sin(g) and cos(g) from a single math.Sincos call. Useful
// when both are needed, as in the pin-offset formula.
func (g Gradient) SinCos() (sin, cos Gradient) {
	s, c := math.Sincos(g.value)
	sg := make([]float64, len(g.grad))
	cg := make([]float64, len(g.grad))
	for i := range g.grad {
		sg[i] = c * g.grad[i]
		cg[i] = -s * g.grad[i]
	}
	return Gradient{value: s, grad: sg}, Gradient{value: c, grad: cg}
}

// mustMatch panics unless both operands share the same freedom count.
func (g Gradient) mustMatch(o Gradient) {
	if len(g.grad) != len(o.grad) {
		panic(ErrFreedomMismatch)
	}
}
