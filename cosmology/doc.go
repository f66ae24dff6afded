// Package cosmology defines the immutable wCDM parameter model shared by
// the exact and Taylor distance engines.
//
// A Parameters value holds the Hubble constant H0 (km/s/Mpc), the matter
// density fraction Om0 and the dark-energy equation of state — constant
// w0 or the time-varying CPL pair (w0, wa) — plus the derived dark-energy
// and curvature density fractions. Models are flat by default
// (Ok0 = 0, Ode0 = 1 − Om0); curvature is opted into with WithCurvature
// or WithDarkEnergy.
//
// Parameters are validated once at construction and never mutated:
//
//	p, err := cosmology.New(67.66, 0.30966, cosmology.WithW0(-0.9))
//
// The dimensionless expansion rate follows the Friedmann equation,
//
//	E(z)² = Om0·(1+z)³ + Ok0·(1+z)² + Ode0·f_DE(z)
//
// with f_DE(z) = (1+z)^(3(1+w0)) for constant w and the CPL form
// (1+z)^(3(1+w0+wa))·exp(−3·wa·z/(1+z)) when wa ≠ 0.
//
// Named cosmologies from the Planck and WMAP releases ship as presets.
package cosmology
