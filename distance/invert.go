package distance

import (
	"github.com/astrokit/cosmodist/backend"
)

// RedshiftAtComovingDistance inverts Dc(z) elementwise: for each target
// comoving distance (Mpc) it returns the redshift solving
// ComovingDistance(z) = dc inside the engine's bracket.
//
// Fails with backend.ErrConvergence when a target lies outside the
// distances achievable over [zmin, zmax] or when the iteration cap
// cannot reach the configured tolerance.
func (e *Engine) RedshiftAtComovingDistance(dc backend.Array) (backend.Array, error) {
	o, err := backend.For(dc)
	if err != nil {
		return nil, err
	}

	forward := func(z backend.Array) backend.Array { return e.comoving(o, z) }

	return o.SolveBounded(forward, dc, e.zMin, e.zMax, e.maxIter, e.tol)
}

// RedshiftAtLuminosityDistance inverts Dl(z) elementwise: for each
// target luminosity distance (Mpc) it returns the redshift solving
// LuminosityDistance(z) = dl inside the engine's bracket.
//
// Error conditions match RedshiftAtComovingDistance.
func (e *Engine) RedshiftAtLuminosityDistance(dl backend.Array) (backend.Array, error) {
	o, err := backend.For(dl)
	if err != nil {
		return nil, err
	}

	forward := func(z backend.Array) backend.Array { return e.luminosity(o, z) }

	return o.SolveBounded(forward, dl, e.zMin, e.zMax, e.maxIter, e.tol)
}
