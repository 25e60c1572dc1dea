package levmar

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the solver.
var (
	// ErrDimensionMismatch indicates inconsistent problem dimensions: empty
	// target or start, a model whose output size disagrees with the target,
	// or fewer observations than free parameters.
	ErrDimensionMismatch = errors.New("levmar: problem dimensions mismatch")

	// ErrSingularStep indicates that the damped normal-equations matrix was
	// numerically singular while solving for a step. Fatal to the fit
	// attempt: the caller should adjust the initial guess or damping seed.
	ErrSingularStep = errors.New("levmar: damped normal equations are singular")

	// ErrMaxIterations indicates the iteration budget ran out before the
	// convergence criteria were met. The best point found so far is still
	// returned, explicitly tagged by this error.
	ErrMaxIterations = errors.New("levmar: iteration budget exhausted before convergence")

	// ErrMaxEvaluations indicates the evaluation budget ran out before the
	// convergence criteria were met. The best point found so far is still
	// returned, explicitly tagged by this error.
	ErrMaxEvaluations = errors.New("levmar: evaluation budget exhausted before convergence")

	// ErrNoFactorization indicates that the SVD of the optimum Jacobian did
	// not converge while estimating parameter uncertainties.
	ErrNoFactorization = errors.New("levmar: SVD of Jacobian failed")

	// ErrBadMaxIterations indicates a non-positive iteration budget.
	ErrBadMaxIterations = errors.New("levmar: MaxIterations must be positive")

	// ErrBadMaxEvaluations indicates a non-positive evaluation budget.
	ErrBadMaxEvaluations = errors.New("levmar: MaxEvaluations must be positive")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("levmar: tolerances must be positive")

	// ErrBadDamping indicates an invalid damping seed or schedule: the seed
	// must be positive, the increase factor > 1 and the decrease factor in
	// (0, 1).
	ErrBadDamping = errors.New("levmar: invalid damping configuration")
)

// DefaultSigmaThreshold is the relative singular-value cutoff used by
// Result.Sigma when the caller passes a non-positive threshold. Singular
// values below threshold×(largest singular value) are treated as zero.
const DefaultSigmaThreshold = 1e-10

// Model evaluates a vector-valued function and its Jacobian at a point.
//
// Value must return a length-n value vector and an n×p Jacobian whose row i
// holds the partials of value i with respect to the p parameters. It must be
// side-effect free with respect to the point slice (the solver reuses it) and
// return fresh matrices each call. A non-nil error is fatal to the solve:
// the solver never retries or clamps a point the model rejected.
type Model interface {
	Value(point []float64) (value *mat.VecDense, jacobian *mat.Dense, err error)
}

// ModelFunc adapts a plain function to the Model interface.
type ModelFunc func(point []float64) (*mat.VecDense, *mat.Dense, error)

// Value implements Model.
func (f ModelFunc) Value(point []float64) (*mat.VecDense, *mat.Dense, error) {
	return f(point)
}

// Observer is invoked once per model evaluation with the 1-based evaluation
// index and the point being evaluated. The point slice is a private copy;
// observers may keep it. Replaces any notion of a global evaluation counter.
type Observer func(evaluation int, point []float64)

// Options configures the solver.
//
// MaxIterations   – accepted-step budget (each accepted step is one iteration).
// MaxEvaluations  – model evaluation budget, counting rejected trials too.
// PointTolerance  – per-component step threshold: a step Δ is "small" when
//
//	|Δₖ| ≤ PointTolerance·(|pointₖ| + PointTolerance) for every k.
//
// CostTolerance   – relative cost-decrease threshold for convergence.
// InitialDamping  – seed value for the damping factor λ.
// DampingIncrease – factor applied to λ after a rejected step (> 1).
// DampingDecrease – factor applied to λ after an accepted step (in (0, 1)).
// Observer        – optional per-evaluation progress callback.
type Options struct {
	MaxIterations   int
	MaxEvaluations  int
	PointTolerance  float64
	CostTolerance   float64
	InitialDamping  float64
	DampingIncrease float64
	DampingDecrease float64
	Observer        Observer
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the solver defaults: budgets of 1000 iterations and
// 1000 evaluations, 1e-10 point and cost tolerances, λ seeded at 1e-3 with
// the classic ×10 / ÷10 schedule, and no observer.
func DefaultOptions() Options {
	return Options{
		MaxIterations:   1000,
		MaxEvaluations:  1000,
		PointTolerance:  1e-10,
		CostTolerance:   1e-10,
		InitialDamping:  1e-3,
		DampingIncrease: 10,
		DampingDecrease: 0.1,
	}
}

// WithMaxIterations caps the number of accepted steps.
// Panics with ErrBadMaxIterations if max is not positive.
func WithMaxIterations(max int) Option {
	return func(o *Options) {
		if max <= 0 {
			panic(ErrBadMaxIterations)
		}
		o.MaxIterations = max
	}
}

// WithMaxEvaluations caps the total number of model evaluations, including
// rejected trial steps. Panics with ErrBadMaxEvaluations if max is not
// positive.
func WithMaxEvaluations(max int) Option {
	return func(o *Options) {
		if max <= 0 {
			panic(ErrBadMaxEvaluations)
		}
		o.MaxEvaluations = max
	}
}

// WithPointTolerance sets the step-size convergence threshold.
// Panics with ErrBadTolerance if tol is not positive.
func WithPointTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance)
		}
		o.PointTolerance = tol
	}
}

// WithCostTolerance sets the relative cost-decrease convergence threshold.
// Panics with ErrBadTolerance if tol is not positive.
func WithCostTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance)
		}
		o.CostTolerance = tol
	}
}

// WithInitialDamping seeds the damping factor λ.
// Panics with ErrBadDamping if seed is not positive.
func WithInitialDamping(seed float64) Option {
	return func(o *Options) {
		if seed <= 0 {
			panic(ErrBadDamping)
		}
		o.InitialDamping = seed
	}
}

// WithDampingSchedule sets the λ update factors: increase after a rejected
// step, decrease after an accepted one. Panics with ErrBadDamping unless
// increase > 1 and 0 < decrease < 1.
func WithDampingSchedule(increase, decrease float64) Option {
	return func(o *Options) {
		if increase <= 1 || decrease <= 0 || decrease >= 1 {
			panic(ErrBadDamping)
		}
		o.DampingIncrease = increase
		o.DampingDecrease = decrease
	}
}

// WithObserver registers a per-evaluation progress callback.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}
