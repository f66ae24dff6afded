// Package taylor approximates the wCDM distance integral by a truncated
// Maclaurin series, trading accuracy at high redshift for speed and for
// smoothness by construction: evaluation is a pure Horner polynomial in
// z, with no quadrature and no loop indexed by array size.
//
// The coefficients are derived analytically once per cosmology. The
// series of E(z)² follows from binomial/CPL expansions, E(z) by the
// square-root recurrence, and 1/E(z) by solving the lower-triangular
// Toeplitz system T·b = e₁ built from E's own coefficients
// (ReciprocalSeries). Term-wise integration then yields the polynomial
// for Dc(z)/D_H. Coefficient tables are cached per distinct
// (cosmology, weight, order) behind an explicit per-Engine lock — no
// process-wide state.
//
// Accuracy contract: at order N the approximation matches the exact
// engine to O(z^(N+1)) near z = 0 and degrades predictably and
// unboundedly past the expansion's effective radius (|z| ≳ 1). That
// divergence is the documented trade-off, not a defect; use the exact
// engine for high redshift.
package taylor
