// Package levmar implements a Levenberg–Marquardt nonlinear least-squares
// solver with Marquardt's scaled damping, plus the covariance-based parameter
// uncertainty estimate derived from the optimum.
//
// Overview:
//
// The solver minimizes ‖target − value(point)‖² for a Model that can evaluate
// its predicted values and the exact Jacobian at any point. Each iteration
// solves the damped normal equations
//
//	(JᵀJ + λ·diag(JᵀJ)) Δ = Jᵀ(target − value)
//
// for a tentative step Δ. Steps that lower the cost are accepted and the
// damping factor λ shrinks (towards Gauss-Newton behavior); steps that do
// not are rejected and λ grows (towards gradient descent), retrying from
// the same point. Marquardt's diagonal scaling keeps the step well
// conditioned even when one Jacobian column is much smaller than the others.
//
// Convergence is declared when both the relative cost decrease and the
// step size fall below the configured tolerances. Budget exhaustion
// (iterations or evaluations) returns the best point found so far together
// with ErrMaxIterations/ErrMaxEvaluations, so a caller can never mistake an
// unconverged point for a validated fit.
//
// Uncertainty:
//
//   - Result.Sigma computes per-parameter standard deviations as the square
//     roots of the diagonal of RMS²·pinv(JᵀJ), where the pseudo-inverse is
//     built from the SVD of the Jacobian with a relative singular-value
//     cutoff. A naive inverse would blow up when measurements are highly
//     correlated; dropping near-zero singular values keeps the estimate
//     finite and meaningful.
//
// Determinism and state:
//
//   - One Solve call is a single-threaded, synchronous computation with no
//     shared state: all buffers are local to the call, the same model, target
//     and start always produce the same Result. Independent solves may run
//     concurrently without coordination.
//
// Errors (sentinel):
//
//   - ErrDimensionMismatch  if target/start/model dimensions disagree or the
//     problem is underdetermined.
//   - ErrSingularStep       if the damped normal equations cannot be solved;
//     fatal to the fit attempt (no silent recovery).
//   - ErrMaxIterations      iteration budget exhausted; best Result attached.
//   - ErrMaxEvaluations     evaluation budget exhausted; best Result attached.
//   - Model evaluation errors propagate unchanged and are fatal: the solver
//     never clamps a candidate point back into the model domain.
//
// Example usage:
//
//	res, err := levmar.Solve(model, target, start,
//	    levmar.WithMaxIterations(200),
//	    levmar.WithObserver(func(eval int, point []float64) {
//	        fmt.Println(eval, point)
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sigma, err := res.Sigma(levmar.DefaultSigmaThreshold)
package levmar
