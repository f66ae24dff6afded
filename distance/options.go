// Package distance: functional configuration of the numeric policy.
// Option constructors validate eagerly and panic on nonsensical values
// (programmer error); runtime data failures surface as errors instead.

package distance

import "github.com/astrokit/cosmodist/units"

// Defaults - single source of truth for the zero-option Engine.
const (
	// DefaultGridSize is the number of trapezoid intervals per integral.
	DefaultGridSize = 512

	// DefaultZMin / DefaultZMax bound the redshift-inversion bracket.
	DefaultZMin = 1e-4
	DefaultZMax = 100.0

	// DefaultMaxIterations caps the bisection loop. 96 halvings shrink
	// the default bracket far below DefaultTolerance.
	DefaultMaxIterations = 96

	// DefaultTolerance is the redshift tolerance of the inversion.
	DefaultTolerance = 1e-10
)

// Option configures an Engine.
type Option func(*Engine)

// WithGridSize sets the number of quadrature intervals. The grid is
// fixed per Engine; it never adapts to data. Panics if n < 2.
func WithGridSize(n int) Option {
	if n < 2 {
		panic("distance: WithGridSize requires n >= 2")
	}

	return func(e *Engine) { e.grid = n }
}

// WithBracket sets the redshift bracket used by the inversion solvers.
// Panics unless -1 < zmin < zmax.
func WithBracket(zmin, zmax float64) Option {
	if !(zmin > -1 && zmax > zmin) {
		panic("distance: WithBracket requires -1 < zmin < zmax")
	}

	return func(e *Engine) { e.zMin, e.zMax = zmin, zmax }
}

// WithMaxIterations caps the bisection iteration count. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("distance: WithMaxIterations requires n >= 1")
	}

	return func(e *Engine) { e.maxIter = n }
}

// WithTolerance sets the inversion redshift tolerance. Panics unless
// tol > 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic("distance: WithTolerance requires tol > 0")
	}

	return func(e *Engine) { e.tol = tol }
}

// WithSolidAngle restricts the comoving-volume measures to a survey
// solid angle in steradians (default: the full sky, 4π). Panics unless
// 0 < omega <= 4π.
func WithSolidAngle(omega float64) Option {
	if !(omega > 0 && omega <= units.FullSkySteradian) {
		panic("distance: WithSolidAngle requires 0 < omega <= 4π")
	}

	return func(e *Engine) { e.solidAngle = omega }
}
