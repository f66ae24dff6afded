package distance

import (
	"github.com/astrokit/cosmodist/backend"
)

// DetectorToSourceFrame converts detector-frame masses and luminosity
// distances to source-frame masses and redshift: z is recovered by
// inverting Dl(z) over the engine's bracket, then m = mz/(1+z).
//
// All three inputs must share one backend and length; mixing backends
// fails with backend.ErrMixedBackend, and inversion failures surface
// backend.ErrConvergence.
func (e *Engine) DetectorToSourceFrame(m1z, m2z, dl backend.Array) (m1, m2, z backend.Array, err error) {
	o, err := backend.For(m1z, m2z, dl)
	if err != nil {
		return nil, nil, nil, err
	}

	forward := func(zz backend.Array) backend.Array { return e.luminosity(o, zz) }
	z, err = o.SolveBounded(forward, dl, e.zMin, e.zMax, e.maxIter, e.tol)
	if err != nil {
		return nil, nil, nil, err
	}

	zp1 := o.Shift(1, z)

	return o.Div(m1z, zp1), o.Div(m2z, zp1), z, nil
}

// SourceToDetectorFrame converts source-frame masses and redshift to
// detector-frame masses and luminosity distance: mz = m·(1+z),
// dl = Dl(z).
func (e *Engine) SourceToDetectorFrame(m1, m2, z backend.Array) (m1z, m2z, dl backend.Array, err error) {
	o, err := backend.For(m1, m2, z)
	if err != nil {
		return nil, nil, nil, err
	}

	zp1 := o.Shift(1, z)

	return o.Mul(m1, zp1), o.Mul(m2, zp1), e.luminosity(o, z), nil
}
