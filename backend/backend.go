// Package backend: Array handle, Integrand and the Ops capability set.
// Concrete bundles live in slice.go and vec.go; dispatch in registry.go.

package backend

// Array is an opaque handle to a backend-owned array value. Each backend
// declares which concrete types it owns via Ops.Owns; engines treat the
// value as opaque beyond the dispatched operation set.
type Array any

// Integrand is an elementwise array function used by Trapezoid and
// SolveBounded. It must return an array of the same backend and length
// as its argument.
type Integrand func(Array) Array

// Ops is the elementary-operation bundle bound to one array backend.
//
// All binary operations require both operands to be arrays of this
// backend with equal length; violating that is a programmer error and
// panics, mirroring the underlying kernels. Operations never mutate
// their inputs and always allocate fresh outputs.
type Ops interface {
	// Backend returns the backend's short name ("slice", "vec", ...).
	Backend() string

	// Owns reports whether this backend owns the concrete type of a.
	Owns(a Array) bool

	// Len returns the number of elements in a.
	Len(a Array) int

	// Lift copies xs into a fresh array of this backend.
	Lift(xs []float64) Array

	// Floats copies a out into a plain []float64.
	Floats(a Array) []float64

	// Full returns a new array shaped like `like` with every element v.
	Full(like Array, v float64) Array

	// Add returns a + b elementwise.
	Add(a, b Array) Array
	// Sub returns a - b elementwise.
	Sub(a, b Array) Array
	// Mul returns a * b elementwise.
	Mul(a, b Array) Array
	// Div returns a / b elementwise. Division by zero follows IEEE-754.
	Div(a, b Array) Array

	// Scale returns c * a elementwise.
	Scale(c float64, a Array) Array
	// Shift returns a + c elementwise.
	Shift(c float64, a Array) Array

	// Pow returns a**p elementwise. Negative bases with fractional
	// exponents yield NaN per IEEE-754; no validation is performed.
	Pow(a Array, p float64) Array
	// Exp returns e**a elementwise.
	Exp(a Array) Array
	// Log returns the natural logarithm elementwise.
	Log(a Array) Array

	// Clip bounds every element into [lo, hi].
	Clip(a Array, lo, hi float64) Array

	// Step returns the elementwise indicator of a <= b: 1 where the
	// comparison holds, 0 elsewhere (including NaN operands).
	Step(a, b Array) Array

	// Min returns the smallest element. Panics on empty arrays.
	Min(a Array) float64
	// Max returns the largest element. Panics on empty arrays.
	Max(a Array) float64

	// Trapezoid evaluates the definite integral of f from 0 to each
	// element of upper on a fixed n-interval grid, via the substitution
	//
	//	∫₀ᵘ f(x) dx = u ∫₀¹ f(u·t) dt
	//
	// so the node count never depends on the data. f is invoked n+1
	// times with arrays of the same length as upper.
	Trapezoid(f Integrand, upper Array, n int) Array

	// SolveBounded solves f(x) = target elementwise for x in [lo, hi] by
	// bracketed bisection with a fixed iteration cap. f must be
	// elementwise monotonically increasing over the bracket. It fails
	// with ErrConvergence when maxIter halvings of the bracket cannot
	// reach tol, or when any target lies outside [f(lo), f(hi)].
	SolveBounded(f Integrand, target Array, lo, hi float64, maxIter int, tol float64) (Array, error)
}
