package prism

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/prismfit/levmar"
	"github.com/katalvlaran/prismfit/measure"
	"github.com/katalvlaran/prismfit/triangle"
)

// Fit recovers the rule geometry that best explains the observed
// measurements, in the least-squares sense.
//
// The observation list is validated first (length, per-record domain), the
// initial guess is checked against the triangle domain, then the solver
// iterates. On levmar.ErrMaxIterations / levmar.ErrMaxEvaluations the best
// FitResult found is returned together with the error; any other failure
// returns a nil result.
func Fit(observed []measure.ObservedMeasurement, opts ...Option) (*FitResult, error) {
	if len(observed) < MinMeasurements {
		return nil, ErrNotEnoughMeasurements
	}
	for _, obs := range observed {
		if _, err := measure.New(obs.Top, obs.D, obs.H, obs.M); err != nil {
			return nil, err
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(observed)
	target := make([]float64, n)
	var sum float64
	for i, obs := range observed {
		target[i] = obs.M
		sum += obs.M
	}

	start := o.InitialGuess
	if start == nil {
		start = []float64{sum / float64(n), math.Pi / 3, math.Pi / 3}
	}
	if _, err := triangle.New(start[triangle.ParamR],
		start[triangle.ParamAlpha1], start[triangle.ParamAlpha2]); err != nil {
		return nil, err
	}

	model := levmar.ModelFunc(func(point []float64) (*mat.VecDense, *mat.Dense, error) {
		tri, err := triangle.New(point[triangle.ParamR],
			point[triangle.ParamAlpha1], point[triangle.ParamAlpha2])
		if err != nil {
			return nil, nil, err
		}
		value := mat.NewVecDense(n, nil)
		jacobian := mat.NewDense(n, triangle.Params, nil)
		for i, obs := range observed {
			theoretical := tri.TheoreticalMeasurement(obs)
			value.SetVec(i, theoretical.Value())
			jacobian.SetRow(i, theoretical.Partials())
		}
		return value, jacobian, nil
	})

	res, solveErr := levmar.Solve(model, target, start, o.Solver...)
	if solveErr != nil && res == nil {
		return nil, solveErr
	}

	fr, err := newFitResult(res, observed, o.SigmaThreshold)
	if err != nil {
		return nil, err
	}
	// solveErr is nil or a budget sentinel tagging fr as unconverged
	return fr, solveErr
}

// newFitResult packages a solver result into a FitResult.
func newFitResult(res *levmar.Result, observed []measure.ObservedMeasurement,
	sigmaThreshold float64) (*FitResult, error) {

	tri, err := triangle.New(res.Point[triangle.ParamR],
		res.Point[triangle.ParamAlpha1], res.Point[triangle.ParamAlpha2])
	if err != nil {
		return nil, err
	}
	sigmas, err := res.Sigma(sigmaThreshold)
	if err != nil {
		return nil, err
	}

	fr := &FitResult{
		Triangle:    tri,
		RMS:         res.RMS(),
		Residuals:   res.Residuals(),
		Predicted:   res.Value,
		Iterations:  res.Iterations,
		Evaluations: res.Evaluations,
		observed:    observed,
	}
	copy(fr.Sigma[:], sigmas)
	return fr, nil
}
