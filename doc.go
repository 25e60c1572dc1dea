// Package prismfit recovers the geometry of a prismatic (triangular-section)
// rule from indirect workshop measurements taken with gauge pins and spacer
// blocks, using nonlinear least squares.
//
// 🚀 What is prismfit?
//
//	A small, focused library that brings together:
//		• Forward-mode dual numbers: exact first derivatives of the model
//		• Geometry model: closed-form pin/spacer measurement prediction
//		• Levenberg–Marquardt: damped Gauss-Newton with Marquardt scaling
//		• Uncertainty: SVD-based parameter standard deviations
//		• Diagnostics: per-face residual distribution for plotting
//
// ✨ Why choose prismfit?
//
//   - Exact derivatives – no finite differences near singular angles
//   - Rock-solid guarantees – the angle-sum constraint is structural,
//     α₃ is always derived, never fitted
//   - Deterministic – the same measurements and start always give the
//     same fit
//   - Extensible – the solver takes any Model, not just triangles
//
// Everything is organized under five subpackages:
//
//	gradient/ — dual-number arithmetic carrying (value, ∂R, ∂α₁, ∂α₂)
//	measure/  — observed measurements and the measurement-file format
//	triangle/ — triangle model, theoretical measurements, residual faces
//	levmar/   — Levenberg–Marquardt solver and covariance estimation
//	prism/    — high-level Fit tying observations, model and solver together
//
// Quick ASCII example:
//
//	        A₃
//	        /\
//	       /  \          a pin of diameter d rests on a spacer of
//	      /    \         height h against each slanted face; the
//	     / R    \        distance m over the two pins is measured
//	    /________\
//	   A₁        A₂
//	  (o)        (o)
//	__/_\________/_\__
//
// Fit a rule from a measurement file:
//
//	observed, err := measure.Read(file)
//	if err != nil { ... }
//	result, err := prism.Fit(observed)
//	if err != nil { ... }
//	fmt.Println(result.Triangle.R(), result.RMS)
package prismfit
