// Package prism ties observations, the triangle model and the
// Levenberg–Marquardt solver into one call: Fit recovers the geometry of a
// prismatic rule from a set of gauge-pin measurements.
//
// Overview:
//
//   - Fit validates the observation list (at least 3 measurements, each with
//     a positive pin diameter and non-negative spacer height), builds the
//     least-squares model as a closure over the list, runs the solver and
//     packages the optimum into a FitResult: the fitted Triangle, the RMS,
//     one standard deviation per free parameter, the per-observation
//     residuals and predictions, and the work counters.
//   - The default initial guess is (mean of measured values, π/3, π/3) —
//     most rules are near-equilateral, so seeding both free angles at 60°
//     starts the solver close to the optimum. WithInitialGuess overrides it.
//   - Candidate points that leave the triangle domain (α ≤ 0 or α₁+α₂ ≥ π or
//     R ≤ 0) abort the fit with triangle.ErrInvalidGeometry; the solver
//     never clamps a candidate back inside. Callers recover by fitting again
//     from a different initial guess.
//   - A fit is a batch computation over a fixed observation list: the list
//     is never mutated, every candidate geometry is a fresh Triangle, and
//     independent fits may run concurrently with no shared state.
//
// Unconverged fits:
//
//   - When the solver budget runs out (levmar.ErrMaxIterations or
//     levmar.ErrMaxEvaluations), Fit still returns the FitResult for the
//     best point found, together with the error, so diagnostics can show
//     where the search stalled — the non-nil error marks the geometry as
//     unvalidated.
//
// Errors (sentinel):
//
//   - ErrNotEnoughMeasurements if fewer than 3 observations are supplied.
//     The message carries no package prefix: it is an external contract
//     shared with the command-line tool.
//   - measure.ErrBadDiameter / measure.ErrBadHeight for invalid records,
//     detected before the solver starts.
//   - triangle.ErrInvalidGeometry for an out-of-domain initial guess or a
//     degenerate candidate point during the search.
//   - levmar sentinels for solver-level failures.
//
// Example usage:
//
//	result, err := prism.Fit(observed,
//	    prism.WithObserver(func(eval int, point []float64) {
//	        fmt.Printf("%4d  R=%.3f\n", eval, point[0])
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("R = %.6f (±%.6f), RMS = %.6f\n",
//	    result.Triangle.R(), result.Sigma[triangle.ParamR], result.RMS)
package prism
