// Package gradient provides forward-mode automatic differentiation through a
// small dual-number type carrying a value together with a fixed-length vector
// of first partial derivatives.
//
// Overview:
//
//   - A Gradient represents a differentiable quantity f together with
//     (∂f/∂x₀, …, ∂f/∂xₙ₋₁) for n free variables.
//   - Free variables are created with Variable(n, index, v); their derivative
//     vector is the index-th unit vector. Constants are created with
//     Constant(n, v); their derivative vector is zero.
//   - Every arithmetic operation (Add, Sub, Mul, Div, Scale, Sin, Cos, …)
//     propagates derivatives exactly by the usual calculus rules, so the
//     partials of any closed-form expression come out exact to machine
//     precision — no finite-difference step, no truncation error.
//
// When to use:
//
//   - Whenever a nonlinear least-squares model needs an exact Jacobian and
//     the model contains denominators (here: sin α) that make finite
//     differences lose precision near the domain boundary.
//   - Derived quantities with exact constraints: a dependent variable such as
//     α₃ = π − α₁ − α₂ is simply the corresponding Gradient expression, and
//     the chain-rule contributions (∂α₃/∂α₁ = ∂α₃/∂α₂ = −1) flow through
//     every use automatically.
//
// Semantics:
//
//   - Gradient is an immutable value type: every operation returns a fresh
//     Gradient and never mutates its operands.
//   - Combining two Gradients with different freedom counts is a programmer
//     error and panics with ErrFreedomMismatch. All other operations are
//     total; division by a zero value follows IEEE-754 semantics.
//
// Complexity:
//
//	Every operation is O(n) in the freedom count n (here n is small and
//	fixed, typically 3), with one allocation for the new derivative vector.
package gradient
