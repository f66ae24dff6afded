// Package cosmodist computes cosmological distance and volume measures
// for flat and non-flat wCDM models — comoving distance, luminosity
// distance, distance modulus, comoving volume elements and redshift
// inversion — over whole arrays of redshifts at once.
//
// 🔭 What is cosmodist?
//
//	A backend-agnostic cosmology engine that brings together:
//		• Parameter models: flat/curved wCDM, constant-w and CPL dark energy
//		• Exact distances: fixed-grid quadrature of the Friedmann integral
//		• Taylor distances: Toeplitz-derived series, pure polynomial evaluation
//		• Array dispatch: the same formula runs on []float64 or gonum vectors
//		• Inversion: bounded, fixed-iteration redshift-from-distance solving
//
// ✨ Why choose cosmodist?
//
//   - Deterministic numerics – fixed grids and iteration caps, no adaptive
//     control flow, so results are pure functions of their inputs
//   - Immutable cosmologies – parameters validated once, never mutated
//   - Extensible – register your own array backend against the same Ops set
//
// Everything is organized under six subpackages:
//
//	units/     — physical constants and unit conversions
//	backend/   — array-backend dispatcher and elementary-operation bundles
//	cosmology/ — wCDM parameter model, E(z), named survey cosmologies
//	distance/  — exact distance/volume engine and redshift inversion
//	taylor/    — truncated power-series approximation of the distance integral
//	registry/  — stable-name adapters for population-inference frameworks
//
// Quick example:
//
//	p, _ := cosmology.New(67.66, 0.30966)
//	eng, _ := distance.New(p)
//	dl, _ := eng.LuminosityDistance([]float64{0.1, 0.5, 1.0})
//
// See each subpackage's doc.go for details.
package cosmodist
