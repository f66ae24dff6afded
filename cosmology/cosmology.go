package cosmology

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter indicates a malformed cosmology: non-positive or
// non-finite H0, Om0 outside [0, 1], or a non-finite density/EoS value.
// Wrapped errors name the offending field and value; match with errors.Is.
var ErrInvalidParameter = errors.New("cosmology: invalid parameter")

// Defaults for optional parameters.
const (
	// DefaultW0 is the cosmological-constant equation of state.
	DefaultW0 = -1.0

	// DefaultWa is the CPL evolution term for constant-w models.
	DefaultWa = 0.0
)

// densityMode records which density fraction the caller fixed; the
// other one is derived during New.
type densityMode int

const (
	flatMode densityMode = iota
	curvatureMode
	darkEnergyMode
)

// Parameters is an immutable wCDM cosmology. The zero value is not a
// valid cosmology; always construct via New.
type Parameters struct {
	h0   float64
	om0  float64
	w0   float64
	wa   float64
	ok0  float64
	ode0 float64
	mode densityMode
	name string
}

// Option configures optional parameters before validation.
type Option func(*Parameters)

// WithW0 sets the constant dark-energy equation-of-state parameter
// (default −1, a cosmological constant).
func WithW0(w0 float64) Option {
	return func(p *Parameters) { p.w0 = w0 }
}

// WithWa sets the CPL evolution parameter wa, switching f_DE to the
// Chevallier–Polarski–Linder form (default 0).
func WithWa(wa float64) Option {
	return func(p *Parameters) { p.wa = wa }
}

// WithCurvature sets the curvature density fraction Ok0 explicitly; the
// dark-energy fraction is then derived as Ode0 = 1 − Om0 − Ok0. Positive
// Ok0 is an open model, negative a closed one.
func WithCurvature(ok0 float64) Option {
	return func(p *Parameters) {
		p.mode = curvatureMode
		p.ok0 = ok0
	}
}

// WithDarkEnergy sets the dark-energy density fraction Ode0 explicitly;
// curvature is then derived as Ok0 = 1 − Om0 − Ode0.
func WithDarkEnergy(ode0 float64) Option {
	return func(p *Parameters) {
		p.mode = darkEnergyMode
		p.ode0 = ode0
	}
}

// WithName attaches a display name (used by the presets).
func WithName(name string) Option {
	return func(p *Parameters) { p.name = name }
}

// New validates and builds a Parameters value.
//
// h0 is the Hubble constant in km/s/Mpc and must be positive and finite;
// om0 is the matter density fraction and must lie in [0, 1]. Without
// curvature options the model is exactly flat: Ok0 = 0 and
// Ode0 = 1 − Om0.
func New(h0, om0 float64, opts ...Option) (Parameters, error) {
	p := Parameters{
		h0:  h0,
		om0: om0,
		w0:  DefaultW0,
		wa:  DefaultWa,
	}
	for _, opt := range opts {
		opt(&p)
	}

	switch {
	case math.IsNaN(h0) || math.IsInf(h0, 0) || h0 <= 0:
		return Parameters{}, fmt.Errorf("New: %w: H0 = %g, want H0 > 0", ErrInvalidParameter, h0)
	case math.IsNaN(om0) || om0 < 0 || om0 > 1:
		return Parameters{}, fmt.Errorf("New: %w: Om0 = %g, want Om0 in [0, 1]", ErrInvalidParameter, om0)
	case math.IsNaN(p.w0) || math.IsInf(p.w0, 0):
		return Parameters{}, fmt.Errorf("New: %w: w0 = %g", ErrInvalidParameter, p.w0)
	case math.IsNaN(p.wa) || math.IsInf(p.wa, 0):
		return Parameters{}, fmt.Errorf("New: %w: wa = %g", ErrInvalidParameter, p.wa)
	}

	switch p.mode {
	case flatMode:
		p.ok0 = 0
		p.ode0 = 1 - p.om0
	case darkEnergyMode:
		if math.IsInf(p.ode0, 0) || math.IsNaN(p.ode0) {
			return Parameters{}, fmt.Errorf("New: %w: Ode0 = %g", ErrInvalidParameter, p.ode0)
		}
		p.ok0 = 1 - p.om0 - p.ode0
	case curvatureMode:
		if math.IsInf(p.ok0, 0) || math.IsNaN(p.ok0) {
			return Parameters{}, fmt.Errorf("New: %w: Ok0 = %g", ErrInvalidParameter, p.ok0)
		}
		p.ode0 = 1 - p.om0 - p.ok0
	}

	return p, nil
}

// H0 returns the Hubble constant in km/s/Mpc.
func (p Parameters) H0() float64 { return p.h0 }

// Om0 returns the matter density fraction.
func (p Parameters) Om0() float64 { return p.om0 }

// W0 returns the dark-energy equation-of-state parameter at z = 0.
func (p Parameters) W0() float64 { return p.w0 }

// Wa returns the CPL evolution parameter.
func (p Parameters) Wa() float64 { return p.wa }

// Ok0 returns the curvature density fraction (exactly 0 for flat models).
func (p Parameters) Ok0() float64 { return p.ok0 }

// Ode0 returns the dark-energy density fraction.
func (p Parameters) Ode0() float64 { return p.ode0 }

// IsFlat reports whether the model was constructed flat, in which case
// Om0 + Ode0 = 1 holds exactly.
func (p Parameters) IsFlat() bool { return p.mode == flatMode }

// Name returns the display name, empty unless set.
func (p Parameters) Name() string { return p.name }

// FDE returns the dark-energy density evolution factor f_DE(z).
//
// For constant-w models this is (1+z)^(3(1+w0)); with wa ≠ 0 the CPL
// form (1+z)^(3(1+w0+wa))·exp(−3·wa·z/(1+z)) applies. The wa branch is
// on a model constant, not on data, and both sides agree exactly at
// wa = 0.
func (p Parameters) FDE(z float64) float64 {
	zp1 := 1 + z
	if p.wa == 0 {
		return math.Pow(zp1, 3*(1+p.w0))
	}

	return math.Pow(zp1, 3*(1+p.w0+p.wa)) * math.Exp(-3*p.wa*z/zp1)
}

// Efunc returns the dimensionless expansion rate E(z) = H(z)/H0.
func (p Parameters) Efunc(z float64) float64 {
	zp1 := 1 + z

	return math.Sqrt(p.om0*zp1*zp1*zp1 + p.ok0*zp1*zp1 + p.ode0*p.FDE(z))
}

// InvEfunc returns 1/E(z).
func (p Parameters) InvEfunc(z float64) float64 { return 1 / p.Efunc(z) }

// HubbleParameter returns H(z) = H0·E(z) in km/s/Mpc.
func (p Parameters) HubbleParameter(z float64) float64 { return p.h0 * p.Efunc(z) }
