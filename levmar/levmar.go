package levmar

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solve minimizes ‖target − model(point)‖² starting from start.
//
// The returned Result is the converged optimum on a nil error. On
// ErrMaxIterations or ErrMaxEvaluations the Result holds the best point
// found before the budget ran out — usable for diagnostics, not validated.
// On ErrSingularStep or a model evaluation error the Result is nil: the fit
// attempt failed and no point should be trusted.
//
// Solve never mutates target or start, keeps all intermediate state local to
// the call, and is fully deterministic: the same inputs always produce the
// same Result.
func Solve(model Model, target, start []float64, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n, p := len(target), len(start)
	if n == 0 || p == 0 || n < p {
		return nil, ErrDimensionMismatch
	}

	evaluations := 0
	evaluate := func(point []float64) (*mat.VecDense, *mat.Dense, error) {
		evaluations++
		if o.Observer != nil {
			snapshot := make([]float64, p)
			copy(snapshot, point)
			o.Observer(evaluations, snapshot)
		}
		value, jacobian, err := model.Value(point)
		if err != nil {
			return nil, nil, err
		}
		if value.Len() != n {
			return nil, nil, ErrDimensionMismatch
		}
		if jr, jc := jacobian.Dims(); jr != n || jc != p {
			return nil, nil, ErrDimensionMismatch
		}
		return value, jacobian, nil
	}

	point := make([]float64, p)
	copy(point, start)

	value, jacobian, err := evaluate(point)
	if err != nil {
		return nil, err
	}
	residual := residualOf(target, value)
	cost := floats.Dot(residual, residual)
	lambda := o.InitialDamping
	iterations := 0

	snapshot := func() *Result {
		return newResult(point, value, target, jacobian, cost, iterations, evaluations)
	}

	for iterations < o.MaxIterations {
		// normal-equations pieces at the current point; reused across
		// rejected trials since the point does not move
		var jtj mat.Dense
		jtj.Mul(jacobian.T(), jacobian)
		var rhs mat.VecDense
		rhs.MulVec(jacobian.T(), mat.NewVecDense(n, residual))

		accepted := false
		for !accepted {
			// Marquardt scaling: damp each diagonal entry proportionally
			damped := mat.DenseCopyOf(&jtj)
			for k := 0; k < p; k++ {
				damped.Set(k, k, jtj.At(k, k)*(1+lambda))
			}

			var delta mat.VecDense
			if solveErr := delta.SolveVec(damped, &rhs); solveErr != nil {
				return nil, fmt.Errorf("%w: %v", ErrSingularStep, solveErr)
			}
			step := make([]float64, p)
			for k := range step {
				step[k] = delta.AtVec(k)
			}
			candidate := make([]float64, p)
			floats.AddTo(candidate, point, step)

			if evaluations >= o.MaxEvaluations {
				return snapshot(), ErrMaxEvaluations
			}
			cValue, cJacobian, evalErr := evaluate(candidate)
			if evalErr != nil {
				// the model rejected the candidate (e.g. out of its domain);
				// fatal, never clamp and continue
				return nil, evalErr
			}
			cResidual := residualOf(target, cValue)
			cCost := floats.Dot(cResidual, cResidual)

			if cCost < cost {
				previous := cost
				point, value, jacobian = candidate, cValue, cJacobian
				residual, cost = cResidual, cCost
				lambda *= o.DampingDecrease
				iterations++
				accepted = true
				if previous-cost <= o.CostTolerance*previous &&
					stepSmall(step, point, o.PointTolerance) {
					return snapshot(), nil
				}
			} else {
				lambda *= o.DampingIncrease
				// more damping only shrinks the step further; once it is
				// already below the point tolerance the iterate cannot move
				if stepSmall(step, point, o.PointTolerance) {
					return snapshot(), nil
				}
			}
		}
	}
	return snapshot(), ErrMaxIterations
}

// residualOf returns target − value as a plain slice.
func residualOf(target []float64, value *mat.VecDense) []float64 {
	residual := make([]float64, len(target))
	for i := range residual {
		residual[i] = target[i] - value.AtVec(i)
	}
	return residual
}

// stepSmall reports whether every step component is below the mixed
// relative/absolute point tolerance.
func stepSmall(step, point []float64, tol float64) bool {
	for k := range step {
		limit := tol * (abs(point[k]) + tol)
		if abs(step[k]) > limit {
			return false
		}
	}
	return true
}

// abs returns the absolute value of a float64.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
