package prism

import (
	"errors"

	"github.com/katalvlaran/prismfit/levmar"
	"github.com/katalvlaran/prismfit/measure"
	"github.com/katalvlaran/prismfit/triangle"
)

// MinMeasurements is the smallest observation list a fit accepts: three
// free parameters need at least three measurements.
const MinMeasurements = 3

// ErrNotEnoughMeasurements indicates fewer than MinMeasurements
// observations. Its message is an external contract shared with the
// command-line tool, so it carries no package prefix.
var ErrNotEnoughMeasurements = errors.New("not enough measurements")

// FitResult is the sole output of a fit: the recovered geometry with its
// uncertainty and diagnostics. Immutable once returned.
type FitResult struct {
	// Triangle is the fitted geometry (R, α₁, α₂ free; α₃ derived).
	Triangle *triangle.Triangle
	// RMS is the root-mean-square residual at the optimum.
	RMS float64
	// Sigma holds one standard deviation per free parameter, indexed by
	// triangle.ParamR, triangle.ParamAlpha1 and triangle.ParamAlpha2. The
	// uncertainty of α₃ is not reported: it is fully determined by the two
	// free angles.
	Sigma [triangle.Params]float64
	// Residuals holds observed − predicted per observation, in input order.
	Residuals []float64
	// Predicted holds the theoretical measurement values at the optimum, in
	// input order.
	Predicted []float64
	// Iterations counts accepted solver steps.
	Iterations int
	// Evaluations counts model evaluations, including rejected trials.
	Evaluations int

	observed []measure.ObservedMeasurement
}

// DistributeResiduals spreads the fit residuals over the rule faces at the
// pin contact locations, for plotting. See triangle.DistributeResiduals.
func (fr *FitResult) DistributeResiduals() map[triangle.Face][]triangle.Residual {
	return fr.Triangle.DistributeResiduals(fr.observed)
}

// Options configures a fit.
//
// InitialGuess   – optional (R, α₁, α₂) start; nil selects the default
//
//	(mean of measured values, π/3, π/3).
//
// SigmaThreshold – relative singular-value cutoff for the uncertainty
//
//	estimate; non-positive selects levmar.DefaultSigmaThreshold.
//
// Solver         – options forwarded to levmar.Solve.
type Options struct {
	InitialGuess   []float64
	SigmaThreshold float64
	Solver         []levmar.Option
}

// Option is a functional option for configuring Fit.
type Option func(*Options)

// DefaultOptions returns the fit defaults: default initial guess, default
// sigma threshold, default solver configuration.
func DefaultOptions() Options {
	return Options{SigmaThreshold: levmar.DefaultSigmaThreshold}
}

// WithInitialGuess overrides the default starting point. The guess is
// validated against the triangle domain when the fit starts.
func WithInitialGuess(r, alpha1, alpha2 float64) Option {
	return func(o *Options) {
		o.InitialGuess = []float64{r, alpha1, alpha2}
	}
}

// WithSigmaThreshold sets the relative singular-value cutoff used for the
// parameter uncertainty estimate.
func WithSigmaThreshold(threshold float64) Option {
	return func(o *Options) {
		o.SigmaThreshold = threshold
	}
}

// WithSolverOptions forwards options to the underlying solver, e.g.
// levmar.WithMaxIterations or levmar.WithDampingSchedule.
func WithSolverOptions(opts ...levmar.Option) Option {
	return func(o *Options) {
		o.Solver = append(o.Solver, opts...)
	}
}

// WithObserver registers a per-evaluation progress callback on the solver;
// shorthand for WithSolverOptions(levmar.WithObserver(obs)).
func WithObserver(obs levmar.Observer) Option {
	return func(o *Options) {
		o.Solver = append(o.Solver, levmar.WithObserver(obs))
	}
}
