package levmar

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Result is the solver output: the terminal point with everything needed to
// judge and post-process the fit. Immutable once returned; the accessor
// methods return fresh slices.
type Result struct {
	// Point is the terminal parameter vector.
	Point []float64
	// Value holds the model's predicted values at Point.
	Value []float64
	// Target holds the observed values the fit aimed at.
	Target []float64
	// Jacobian is the model Jacobian evaluated at Point, one row per
	// observation and one column per parameter.
	Jacobian *mat.Dense
	// Cost is the sum of squared residuals at Point.
	Cost float64
	// Iterations counts accepted steps.
	Iterations int
	// Evaluations counts model evaluations, including rejected trials.
	Evaluations int
}

// newResult snapshots the solver state into an immutable Result.
func newResult(point []float64, value *mat.VecDense, target []float64,
	jacobian *mat.Dense, cost float64, iterations, evaluations int) *Result {

	pt := make([]float64, len(point))
	copy(pt, point)
	vl := make([]float64, value.Len())
	for i := range vl {
		vl[i] = value.AtVec(i)
	}
	tg := make([]float64, len(target))
	copy(tg, target)

	return &Result{
		Point:       pt,
		Value:       vl,
		Target:      tg,
		Jacobian:    jacobian,
		Cost:        cost,
		Iterations:  iterations,
		Evaluations: evaluations,
	}
}

// Residuals returns target − value per observation, in observation order.
func (r *Result) Residuals() []float64 {
	residuals := make([]float64, len(r.Target))
	for i := range residuals {
		residuals[i] = r.Target[i] - r.Value[i]
	}
	return residuals
}

// RMS returns the root-mean-square residual sqrt(Σrᵢ²/n), the global
// goodness-of-fit indicator.
func (r *Result) RMS() float64 {
	return math.Sqrt(r.Cost / float64(len(r.Target)))
}

// Sigma estimates the per-parameter standard deviations from the optimum:
// the square roots of the diagonal of RMS²·pinv(JᵀJ).
//
// The pseudo-inverse comes from the SVD of the Jacobian: with J = UΣVᵀ,
// pinv(JᵀJ) = VΣ⁻²Vᵀ over the singular values above threshold×σ_max;
// smaller singular values are treated as zero so that near-degenerate
// parameter directions (e.g. all pins sharing one diameter and height) do
// not blow the estimate up. A non-positive threshold selects
// DefaultSigmaThreshold.
func (r *Result) Sigma(threshold float64) ([]float64, error) {
	if threshold <= 0 {
		threshold = DefaultSigmaThreshold
	}

	var svd mat.SVD
	if ok := svd.Factorize(r.Jacobian, mat.SVDThin); !ok {
		return nil, ErrNoFactorization
	}
	values := svd.Values(nil)
	var v mat.Dense
	svd.VTo(&v)

	_, p := r.Jacobian.Dims()
	cutoff := threshold * values[0]
	rms := r.RMS()
	sigma := make([]float64, p)
	for k := 0; k < p; k++ {
		var sum float64
		for i, s := range values {
			if s <= cutoff {
				continue
			}
			ratio := v.At(k, i) / s
			sum += ratio * ratio
		}
		sigma[k] = rms * math.Sqrt(sum)
	}
	return sigma, nil
}
