package backend

import "errors"

// Sentinel errors for dispatch and bounded solving. Return values wrap
// these with fmt.Errorf("Op: %w: detail", ...); callers match with errors.Is.
var (
	// ErrUnsupportedBackend indicates that no registered backend owns the
	// concrete type of an input array.
	ErrUnsupportedBackend = errors.New("backend: unsupported array backend")

	// ErrMixedBackend indicates that the input arrays belong to two or more
	// different backends and cannot be combined.
	ErrMixedBackend = errors.New("backend: mixed array backends")

	// ErrConvergence indicates that SolveBounded cannot produce a root
	// within its tolerance: either the iteration budget is too small for
	// the bracket, or the target lies outside the achievable range.
	ErrConvergence = errors.New("backend: root solve did not converge")
)
