// Package registry exposes the engine entry points under fixed string
// identifiers for discovery by an external population-inference plugin
// framework. It is a pure naming/export surface: no inference logic, no
// state, just stable names bound to stable signatures.
//
// Three groups are published, mirroring how the external framework keys
// its lookups:
//
//   - CosmologyFunctions — the exact-engine distance/volume operations;
//   - UtilityFunctions and Constants — scalar helpers and unit factors;
//   - ToeplitzFunctions — the Taylor-series entry points and the
//     Toeplitz-based reciprocal-series helper.
//
// All adapters operate on plain []float64 arrays (the slice backend).
// The names and signatures in this package are frozen; removing or
// retyping an entry is a breaking change for every registered consumer.
package registry
