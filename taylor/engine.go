package taylor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/astrokit/cosmodist/backend"
	"github.com/astrokit/cosmodist/cosmology"
	"github.com/astrokit/cosmodist/units"
)

// Sentinel errors for series derivation.
var (
	// ErrInvalidOrder indicates an expansion order below 1 or an empty
	// coefficient series.
	ErrInvalidOrder = errors.New("taylor: invalid expansion order")

	// ErrSingular indicates a series that cannot be inverted (zero
	// leading coefficient); unreachable for validated cosmologies,
	// where E(0) = 1.
	ErrSingular = errors.New("taylor: series is not invertible")
)

// Engine evaluates the order-N Taylor approximation of the distance
// integrals for one cosmology. Coefficient tables are derived once per
// integrand weight and cached behind an RWMutex, so Engines are safe
// for concurrent use; evaluation itself is a pure polynomial.
type Engine struct {
	params cosmology.Parameters
	order  int

	mu    sync.RWMutex
	cache map[int][]float64 // integrand z-power -> polynomial coefficients
}

// New builds a Taylor engine of the given expansion order. order is the
// highest power of z retained in the distance polynomial and must be at
// least 1 (ErrInvalidOrder otherwise); the Parameters value must come
// from cosmology.New.
func New(p cosmology.Parameters, order int) (*Engine, error) {
	if order < 1 {
		return nil, fmt.Errorf("New: %w: order %d, want >= 1", ErrInvalidOrder, order)
	}
	if p.H0() <= 0 {
		return nil, fmt.Errorf("New: %w: H0 = %g (zero-value Parameters?)", cosmology.ErrInvalidParameter, p.H0())
	}

	return &Engine{
		params: p,
		order:  order,
		cache:  make(map[int][]float64),
	}, nil
}

// Order returns the expansion order.
func (e *Engine) Order() int { return e.order }

// Params returns the engine's cosmology.
func (e *Engine) Params() cosmology.Parameters { return e.params }

// eSquaredSeries expands E(z)² = Om0·(1+z)³ + Ok0·(1+z)² + Ode0·f_DE(z)
// to n+1 Maclaurin terms. The CPL factor exp(−3·wa·z/(1+z)) is composed
// from the series of z/(1+z) through the exp-of-series recurrence.
func eSquaredSeries(p cosmology.Parameters, n int) []float64 {
	s := scaleSeries(p.Om0(), binomialSeries(3, n))
	s = addSeries(s, scaleSeries(p.Ok0(), binomialSeries(2, n)))

	fde := binomialSeries(3*(1+p.W0()+p.Wa()), n)
	if wa := p.Wa(); wa != 0 {
		// z/(1+z) = z − z² + z³ − ...
		u := make([]float64, n+1)
		sign := 1.0
		for k := 1; k <= n; k++ {
			u[k] = sign
			sign = -sign
		}
		fde = mulSeries(fde, expSeries(scaleSeries(-3*wa, u)))
	}

	return addSeries(s, scaleSeries(p.Ode0(), fde))
}

// coefficients returns the cached distance polynomial for the integrand
// (1+z)^zpower / E(z): term-wise integration of the reciprocal series,
// so the polynomial has a zero constant term and degree e.order.
// Recomputation on a cache miss is idempotent.
func (e *Engine) coefficients(zpower int) ([]float64, error) {
	e.mu.RLock()
	c, ok := e.cache[zpower]
	e.mu.RUnlock()
	if ok {
		return c, nil
	}

	// The integrand series needs e.order terms (orders 0..order−1).
	n := e.order - 1
	b, err := ReciprocalSeries(sqrtSeries(eSquaredSeries(e.params, n)))
	if err != nil {
		return nil, err
	}
	if zpower != 0 {
		b = mulSeries(b, binomialSeries(float64(zpower), n))
	}

	c = make([]float64, e.order+1)
	for k := 1; k <= e.order; k++ {
		c[k] = b[k-1] / float64(k)
	}

	e.mu.Lock()
	e.cache[zpower] = c
	e.mu.Unlock()

	return c, nil
}

// Coefficients returns a copy of the distance-polynomial coefficients
// for the plain 1/E(z) integrand, indexed by term order (the constant
// term is always zero).
func (e *Engine) Coefficients() ([]float64, error) {
	c, err := e.coefficients(0)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(c))
	copy(out, c)

	return out, nil
}

// horner evaluates the polynomial through the backend bundle: pure
// elementwise arithmetic, no quadrature, fixed term count.
func horner(o backend.Ops, c []float64, z backend.Array) backend.Array {
	res := o.Full(z, c[len(c)-1])
	for k := len(c) - 2; k >= 0; k-- {
		res = o.Shift(c[k], o.Mul(res, z))
	}

	return res
}

// evaluate dispatches, derives (or recalls) coefficients and applies
// Horner evaluation scaled by a unit prefactor.
func (e *Engine) evaluate(z backend.Array, zpower int, prefactor float64) (backend.Array, error) {
	o, err := backend.For(z)
	if err != nil {
		return nil, err
	}
	c, err := e.coefficients(zpower)
	if err != nil {
		return nil, err
	}

	return o.Scale(prefactor, horner(o, c, z)), nil
}

// ComovingDistance returns the order-N polynomial approximation of
// Dc(z) in Mpc.
func (e *Engine) ComovingDistance(z backend.Array) (backend.Array, error) {
	return e.evaluate(z, 0, units.SpeedOfLightKmPerS/e.params.H0())
}

// LuminosityDistance returns (1+z) times the comoving-distance
// polynomial, in Mpc. Valid for flat and near-flat models at low z,
// where Dm ≈ Dc.
func (e *Engine) LuminosityDistance(z backend.Array) (backend.Array, error) {
	o, err := backend.For(z)
	if err != nil {
		return nil, err
	}
	dc, err := e.ComovingDistance(z)
	if err != nil {
		return nil, err
	}

	return o.Mul(o.Shift(1, z), dc), nil
}

// LookbackTime returns the polynomial approximation of t_L(z) in Gyr
// (integrand weight (1+z)⁻¹).
func (e *Engine) LookbackTime(z backend.Array) (backend.Array, error) {
	return e.evaluate(z, -1, units.GyrPerKmPerSMpc/e.params.H0())
}

// AbsorptionDistance returns the dimensionless polynomial approximation
// of the absorption distance (integrand weight (1+z)²).
func (e *Engine) AbsorptionDistance(z backend.Array) (backend.Array, error) {
	return e.evaluate(z, 2, 1)
}
