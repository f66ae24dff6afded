// Package backend implements the array-backend dispatcher: given one or
// more arrays, it selects the elementary-operation bundle (Ops) whose
// implementation matches the arrays' concrete type, so the same formula
// code runs unchanged over different array libraries.
//
// The Ops bundle is a capability set — elementwise arithmetic, power,
// exponential, logarithm, clipping, an elementwise step indicator, min/max
// reductions, fixed-grid trapezoidal integration and bounded root solving.
// Engines are written purely against Ops and never inspect array types
// themselves.
//
// Two backends ship with the package:
//
//   - the slice backend, owning []float64, built on gonum/floats kernels;
//   - the vector backend, owning *mat.VecDense, built on gonum/mat and
//     gonum/integrate.
//
// Additional backends can be registered against the default Registry (or
// a private one) via Register. Dispatch is a pure lookup keyed by the
// runtime type of the inputs: no state, no caching across calls.
//
// Errors:
//
//	ErrUnsupportedBackend - no registered backend owns the input's type.
//	ErrMixedBackend       - inputs belong to different backends.
//	ErrConvergence        - SolveBounded cannot reach its tolerance.
package backend
