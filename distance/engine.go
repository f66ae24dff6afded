package distance

import (
	"fmt"
	"math"

	"github.com/astrokit/cosmodist/backend"
	"github.com/astrokit/cosmodist/cosmology"
	"github.com/astrokit/cosmodist/units"
)

// Engine evaluates the exact distance measures of one cosmology under a
// fixed numeric policy. Engines are immutable after New and safe for
// concurrent use: every method is a pure function of its inputs.
type Engine struct {
	params     cosmology.Parameters
	grid       int
	zMin, zMax float64
	maxIter    int
	tol        float64
	solidAngle float64
}

// New builds an Engine for the given cosmology. The Parameters value
// must come from cosmology.New; the zero value is rejected with
// cosmology.ErrInvalidParameter.
func New(p cosmology.Parameters, opts ...Option) (*Engine, error) {
	if p.H0() <= 0 {
		return nil, fmt.Errorf("New: %w: H0 = %g (zero-value Parameters?)", cosmology.ErrInvalidParameter, p.H0())
	}

	e := &Engine{
		params:     p,
		grid:       DefaultGridSize,
		zMin:       DefaultZMin,
		zMax:       DefaultZMax,
		maxIter:    DefaultMaxIterations,
		tol:        DefaultTolerance,
		solidAngle: units.FullSkySteradian,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Params returns the engine's cosmology.
func (e *Engine) Params() cosmology.Parameters { return e.params }

// HubbleDistance returns D_H = c/H0 in Mpc.
func (e *Engine) HubbleDistance() float64 {
	return units.SpeedOfLightKmPerS / e.params.H0()
}

// HubbleTime returns t_H = 1/H0 in Gyr.
func (e *Engine) HubbleTime() float64 {
	return units.GyrPerKmPerSMpc / e.params.H0()
}

// invEfunc builds the elementwise 1/E(z) integrand against one bundle.
// The wa == 0 short-circuit is a branch on a model constant, not on
// data, and both sides agree exactly at wa = 0; it exists because the
// CPL factor evaluates z/(1+z), which is undefined at z = -1.
func invEfunc(o backend.Ops, p cosmology.Parameters) backend.Integrand {
	om0, ok0, ode0 := p.Om0(), p.Ok0(), p.Ode0()
	w0, wa := p.W0(), p.Wa()

	return func(z backend.Array) backend.Array {
		zp1 := o.Shift(1, z)
		e2 := o.Scale(om0, o.Pow(zp1, 3))
		e2 = o.Add(e2, o.Scale(ok0, o.Pow(zp1, 2)))
		fde := o.Pow(zp1, 3*(1+w0+wa))
		if wa != 0 {
			fde = o.Mul(fde, o.Exp(o.Scale(-3*wa, o.Div(z, zp1))))
		}
		e2 = o.Add(e2, o.Scale(ode0, fde))

		return o.Pow(e2, -0.5)
	}
}

// Efunc returns the dimensionless expansion rate E(z) elementwise.
func (e *Engine) Efunc(z backend.Array) (backend.Array, error) {
	o, err := backend.For(z)
	if err != nil {
		return nil, err
	}

	return o.Pow(invEfunc(o, e.params)(z), -1), nil
}

// InvEfunc returns 1/E(z) elementwise.
func (e *Engine) InvEfunc(z backend.Array) (backend.Array, error) {
	o, err := backend.For(z)
	if err != nil {
		return nil, err
	}

	return invEfunc(o, e.params)(z), nil
}

// ComovingDistance returns the line-of-sight comoving distance
//
//	Dc(z) = D_H ∫₀ᶻ dz'/E(z')
//
// in Mpc, strictly increasing in z for any physical cosmology.
func (e *Engine) ComovingDistance(z backend.Array) (backend.Array, error) {
	o, err := backend.For(z)
	if err != nil {
		return nil, err
	}

	return e.comoving(o, z), nil
}

func (e *Engine) comoving(o backend.Ops, z backend.Array) backend.Array {
	return o.Scale(e.HubbleDistance(), o.Trapezoid(invEfunc(o, e.params), z, e.grid))
}

// curvatureCoeffs are the Maclaurin coefficients of
// g(y) = Σ yⁿ/(2n+1)!, the entire function with
// Dm = Dc·g(Ok0·(Dc/D_H)²). g coincides with sinh-scaling for open
// models (y > 0), sin-scaling for closed ones (y < 0) and is exactly 1
// in the flat limit, so no sign branch is needed anywhere.
var curvatureCoeffs = func() [16]float64 {
	var c [16]float64
	c[0] = 1
	for n := 1; n < len(c); n++ {
		// 1/(2n+1)! = 1/((2n-1)!) / (2n·(2n+1))
		c[n] = c[n-1] / float64(2*n*(2*n+1))
	}

	return c
}()

// TransverseComovingDistance returns Dm(z) in Mpc: equal to Dc(z) for
// flat models and curvature-corrected otherwise, continuously in Ok0.
func (e *Engine) TransverseComovingDistance(z backend.Array) (backend.Array, error) {
	o, err := backend.For(z)
	if err != nil {
		return nil, err
	}

	return e.transverse(o, z), nil
}

func (e *Engine) transverse(o backend.Ops, z backend.Array) backend.Array {
	dc := e.comoving(o, z)
	if e.params.Ok0() == 0 {
		return dc
	}

	dh := e.HubbleDistance()
	y := o.Scale(e.params.Ok0()/(dh*dh), o.Mul(dc, dc))
	g := o.Full(y, curvatureCoeffs[len(curvatureCoeffs)-1])
	for k := len(curvatureCoeffs) - 2; k >= 0; k-- {
		g = o.Shift(curvatureCoeffs[k], o.Mul(g, y))
	}

	return o.Mul(dc, g)
}

// LuminosityDistance returns Dl(z) = (1+z)·Dm(z) in Mpc.
func (e *Engine) LuminosityDistance(z backend.Array) (backend.Array, error) {
	o, err := backend.For(z)
	if err != nil {
		return nil, err
	}

	return e.luminosity(o, z), nil
}

func (e *Engine) luminosity(o backend.Ops, z backend.Array) backend.Array {
	return o.Mul(o.Shift(1, z), e.transverse(o, z))
}

// DistanceModulus returns μ(z) = 5·log10(Dl(z)/pc) − 5. It fails with
// ErrDomain when any luminosity distance is non-positive (z = 0 or a
// negative-redshift extrapolation).
func (e *Engine) DistanceModulus(z backend.Array) (backend.Array, error) {
	o, err := backend.For(z)
	if err != nil {
		return nil, err
	}

	dl := e.luminosity(o, z)
	if v := o.Min(dl); v <= 0 || math.IsNaN(v) {
		return nil, fmt.Errorf("DistanceModulus: %w: luminosity distance %g Mpc, want > 0", ErrDomain, v)
	}

	// 5·log10(Dl·1e6) − 5 = (5/ln 10)·ln(Dl[Mpc]) + 25.
	return o.Shift(25, o.Scale(5/math.Ln10, o.Log(dl))), nil
}

// DLuminosityDz returns the Jacobian dDl/dz in Mpc,
//
//	dDl/dz = Dm(z) + (1+z)·D_H·√(1 + Ok0·(Dm/D_H)²)/E(z),
//
// used to re-express redshift distributions over luminosity distance.
func (e *Engine) DLuminosityDz(z backend.Array) (backend.Array, error) {
	o, err := backend.For(z)
	if err != nil {
		return nil, err
	}

	dh := e.HubbleDistance()
	dm := e.transverse(o, z)
	// dDm/dDc = cosh(√Ok0·Dc/D_H) = √(1 + Ok0·(Dm/D_H)²), valid for
	// either curvature sign and exactly 1 when flat.
	coshTerm := o.Pow(o.Shift(1, o.Scale(e.params.Ok0()/(dh*dh), o.Mul(dm, dm))), 0.5)
	dDmDz := o.Scale(dh, o.Mul(coshTerm, invEfunc(o, e.params)(z)))

	return o.Add(dm, o.Mul(o.Shift(1, z), dDmDz)), nil
}

// LookbackTime returns t_L(z) = t_H ∫₀ᶻ dz'/((1+z')·E(z')) in Gyr.
func (e *Engine) LookbackTime(z backend.Array) (backend.Array, error) {
	o, err := backend.For(z)
	if err != nil {
		return nil, err
	}

	inv := invEfunc(o, e.params)
	integrand := func(zp backend.Array) backend.Array {
		return o.Div(inv(zp), o.Shift(1, zp))
	}

	return o.Scale(e.HubbleTime(), o.Trapezoid(integrand, z, e.grid)), nil
}

// AbsorptionDistance returns the dimensionless absorption distance
// ∫₀ᶻ (1+z')²/E(z') dz'.
func (e *Engine) AbsorptionDistance(z backend.Array) (backend.Array, error) {
	o, err := backend.For(z)
	if err != nil {
		return nil, err
	}

	inv := invEfunc(o, e.params)
	integrand := func(zp backend.Array) backend.Array {
		zp1 := o.Shift(1, zp)

		return o.Mul(o.Mul(zp1, zp1), inv(zp))
	}

	return o.Trapezoid(integrand, z, e.grid), nil
}
