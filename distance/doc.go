// Package distance implements the exact wCDM distance engine: the
// Friedmann-integral distance measures evaluated by fixed-grid
// trapezoidal quadrature through the backend operation bundle, plus
// redshift inversion by bounded bisection.
//
// An Engine is bound to one immutable cosmology and a numeric policy
// (grid size, inversion bracket, iteration cap, tolerance, solid angle):
//
//	p, _ := cosmology.New(67.66, 0.30966)
//	eng, _ := distance.New(p)
//	dl, _ := eng.LuminosityDistance([]float64{0.5, 1.0})
//
// Every operation accepts an array of any registered backend and returns
// an array of the same backend and length. Distances are in Mpc, times
// in Gyr, volumes in Mpc³.
//
// Numeric policy: all integrals run on a fixed grid via the substitution
// ∫₀ᶻ f = z·∫₀¹ f(zt) dt, and curvature is applied through the entire
// function Σ yⁿ/(2n+1)! rather than a sign branch, so every result is a
// smooth, pure function of its inputs — no adaptive step control, no
// data-dependent control flow.
//
// Redshift convention: inputs in (−1, 0) are evaluated as an
// extrapolation (distances come out negative and monotone) and never
// fail; only DistanceModulus rejects, with ErrDomain, once a luminosity
// distance is non-positive. Inputs at or below −1 are not validated and
// propagate NaN/Inf per IEEE-754.
package distance
