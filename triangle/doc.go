// Package triangle models the triangular cross-section of a prismatic rule
// and predicts gauge-pin measurements, with exact first derivatives.
//
// Overview:
//
//   - A Triangle is described by its circumradius R and two vertex angles
//     α₁, α₂. The third angle is never free: α₃ = π − α₁ − α₂ is derived at
//     construction time through dual-number arithmetic (package gradient),
//     so the triangle angle-sum constraint holds exactly and the chain-rule
//     contributions ∂α₃/∂α₁ = ∂α₃/∂α₂ = −1 flow through every expression
//     that uses α₃. There is deliberately no way to set α₃.
//   - TheoreticalMeasurement predicts the distance measured over two gauge
//     pins of diameter d resting on spacer blocks of height h against the
//     two faces adjacent to the measured base, where αA, αB are the two
//     bottom angles for the measurement's top vertex. The returned
//     gradient.Gradient carries the value and its exact partials ∂m/∂R,
//     ∂m/∂α₁, ∂m/∂α₂.
//   - The model is total over the constructor's domain (R > 0, 0 < α₁,
//     0 < α₂, α₁+α₂ < π, d > 0, h ≥ 0): sin α never reaches zero there, so
//     the pin-offset denominator is always safe.
//
// Measurement model:
//
//	m(R, α₁, α₂) = 2R·sin(αA+αB) + pinOffset(αA) + pinOffset(αB)
//	pinOffset(α) = [d·(1+sin α) − (d+2h)·cos α] / (2·sin α)
//
// Diagnostics:
//
//   - DistributeResiduals places each measurement's residual
//     (observed − theoretical) at the two pin contact points along the face
//     opposite the measurement's top vertex, at location
//     l(α) = (2h + d·(1−cos α)) / (2·sin α) from the near vertex. The result
//     is one location-sorted bucket per face, ready for plotting. This is
//     pure reporting; the fit never consumes it.
//
// Errors (sentinel):
//
//   - ErrInvalidGeometry if New is called with R ≤ 0, α₁ ≤ 0, α₂ ≤ 0 or
//     α₁+α₂ ≥ π.
//
// Example usage:
//
//	tri, err := triangle.New(20.0, math.Pi/3, math.Pi/3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := tri.TheoreticalMeasurement(obs)
//	fmt.Println(m.Value(), m.Partials())
package triangle
