package distance

import (
	"github.com/astrokit/cosmodist/backend"
)

// DifferentialComovingVolume returns dV/dz in Mpc³ per unit redshift,
//
//	dV/dz = Ω·D_H·Dm(z)²/E(z),
//
// scaled by the engine's solid angle Ω (full sky unless restricted with
// WithSolidAngle).
func (e *Engine) DifferentialComovingVolume(z backend.Array) (backend.Array, error) {
	o, err := backend.For(z)
	if err != nil {
		return nil, err
	}

	return e.dVdz(o, z), nil
}

func (e *Engine) dVdz(o backend.Ops, z backend.Array) backend.Array {
	dm := e.transverse(o, z)

	return o.Scale(e.solidAngle*e.HubbleDistance(), o.Mul(o.Mul(dm, dm), invEfunc(o, e.params)(z)))
}

// ComovingVolume returns the comoving volume out to each redshift in
// Mpc³. Flat models use the closed form (Ω/3)·Dc³; curved models
// integrate dV/dz on the same fixed grid. The two definitions agree
// continuously in the Ok0 → 0 limit.
func (e *Engine) ComovingVolume(z backend.Array) (backend.Array, error) {
	o, err := backend.For(z)
	if err != nil {
		return nil, err
	}

	if e.params.Ok0() == 0 {
		dc := e.comoving(o, z)

		return o.Scale(e.solidAngle/3, o.Mul(o.Mul(dc, dc), dc)), nil
	}

	integrand := func(zp backend.Array) backend.Array { return e.dVdz(o, zp) }

	return o.Trapezoid(integrand, z, e.grid), nil
}
