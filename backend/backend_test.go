package backend_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/astrokit/cosmodist/backend"
)

// bundles lists every built-in backend with a lifter into its own type.
func bundles() map[string]backend.Ops {
	return map[string]backend.Ops{
		"slice": backend.Slice(),
		"vec":   backend.Vec(),
	}
}

func TestFor_DispatchByConcreteType(t *testing.T) {
	ops, err := backend.For([]float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, "slice", ops.Backend())

	ops, err = backend.For(mat.NewVecDense(2, []float64{1, 2}))
	require.NoError(t, err)
	require.Equal(t, "vec", ops.Backend())

	ops, err = backend.For([]float64{1}, []float64{2}, []float64{3})
	require.NoError(t, err)
	require.Equal(t, "slice", ops.Backend())
}

func TestFor_UnsupportedBackend(t *testing.T) {
	_, err := backend.For([]int{1, 2})
	require.ErrorIs(t, err, backend.ErrUnsupportedBackend)

	_, err = backend.For()
	require.ErrorIs(t, err, backend.ErrUnsupportedBackend)
}

func TestFor_MixedBackend(t *testing.T) {
	_, err := backend.For([]float64{1}, mat.NewVecDense(1, []float64{1}))
	require.ErrorIs(t, err, backend.ErrMixedBackend)
}

func TestOps_Elementwise(t *testing.T) {
	a := []float64{1, 2, 4}
	b := []float64{2, 2, 0.5}

	for name, o := range bundles() {
		t.Run(name, func(t *testing.T) {
			av, bv := o.Lift(a), o.Lift(b)

			require.Equal(t, []float64{3, 4, 4.5}, o.Floats(o.Add(av, bv)))
			require.Equal(t, []float64{-1, 0, 3.5}, o.Floats(o.Sub(av, bv)))
			require.Equal(t, []float64{2, 4, 2}, o.Floats(o.Mul(av, bv)))
			require.Equal(t, []float64{0.5, 1, 8}, o.Floats(o.Div(av, bv)))
			require.Equal(t, []float64{2, 4, 8}, o.Floats(o.Scale(2, av)))
			require.Equal(t, []float64{2, 3, 5}, o.Floats(o.Shift(1, av)))
			require.Equal(t, []float64{1, 4, 16}, o.Floats(o.Pow(av, 2)))
			require.Equal(t, []float64{1, 2, 2}, o.Floats(o.Clip(av, 1, 2)))
			require.Equal(t, []float64{1, 1, 0}, o.Floats(o.Step(av, bv)))
			require.Equal(t, 1.0, o.Min(av))
			require.Equal(t, 4.0, o.Max(av))
			require.Equal(t, 3, o.Len(av))

			exp := o.Floats(o.Exp(av))
			lg := o.Floats(o.Log(av))
			for i, v := range a {
				require.InDelta(t, math.Exp(v), exp[i], 1e-15)
				require.InDelta(t, math.Log(v), lg[i], 1e-15)
			}
		})
	}
}

func TestOps_StepTreatsNaNAsFalse(t *testing.T) {
	for name, o := range bundles() {
		t.Run(name, func(t *testing.T) {
			a := o.Lift([]float64{math.NaN(), 1})
			b := o.Lift([]float64{1, math.NaN()})
			require.Equal(t, []float64{0, 0}, o.Floats(o.Step(a, b)))
		})
	}
}

func TestOps_FullAndLift(t *testing.T) {
	for name, o := range bundles() {
		t.Run(name, func(t *testing.T) {
			like := o.Lift([]float64{0, 0, 0, 0})
			require.Equal(t, []float64{7, 7, 7, 7}, o.Floats(o.Full(like, 7)))

			// Lift copies: mutating the source must not leak in.
			src := []float64{1, 2}
			arr := o.Lift(src)
			src[0] = 99
			require.Equal(t, []float64{1, 2}, o.Floats(arr))
		})
	}
}

// TestOps_Trapezoid checks ∫₀ᵘ x² dx = u³/3 elementwise, including the
// degenerate u = 0 and a negative upper limit.
func TestOps_Trapezoid(t *testing.T) {
	upper := []float64{0, 0.5, 1, 2, -0.5}
	square := func(o backend.Ops) backend.Integrand {
		return func(x backend.Array) backend.Array { return o.Mul(x, x) }
	}

	for name, o := range bundles() {
		t.Run(name, func(t *testing.T) {
			got := o.Floats(o.Trapezoid(square(o), o.Lift(upper), 2048))
			for i, u := range upper {
				require.InDelta(t, u*u*u/3, got[i], 1e-5, "upper=%g", u)
			}
		})
	}
}

// TestVecOps_StridedColumnView: column views of a Dense matrix are
// *mat.VecDense values with a non-unit stride; every operation must
// read them through their stride, not as contiguous data.
func TestVecOps_StridedColumnView(t *testing.T) {
	o := backend.Vec()
	d := mat.NewDense(3, 2, []float64{
		1, 100,
		2, 200,
		3, 300,
	})
	col := d.ColView(0).(*mat.VecDense)

	require.Equal(t, []float64{1, 2, 3}, o.Floats(col))
	require.Equal(t, []float64{2, 3, 4}, o.Floats(o.Shift(1, col)))
	require.Equal(t, []float64{1, 4, 9}, o.Floats(o.Pow(col, 2)))

	lg := o.Floats(o.Log(col))
	for i, v := range []float64{1, 2, 3} {
		require.InDelta(t, math.Log(v), lg[i], 1e-15)
	}

	// ∫₀ᵘ 2x dx = u², exact for a linear integrand.
	double := func(x backend.Array) backend.Array { return o.Scale(2, x) }
	got := o.Floats(o.Trapezoid(double, col, 16))
	for i, u := range []float64{1, 2, 3} {
		require.InDelta(t, u*u, got[i], 1e-12)
	}

	// Dispatch still owns the view.
	ops, err := backend.For(col)
	require.NoError(t, err)
	require.Equal(t, "vec", ops.Backend())
}

// TestOps_BackendEquivalence feeds identical data through both backends
// and requires float64-level agreement from the same formula.
func TestOps_BackendEquivalence(t *testing.T) {
	s, v := backend.Slice(), backend.Vec()
	data := []float64{0.1, 0.7, 1.3, 2.9}

	formula := func(o backend.Ops) []float64 {
		z := o.Lift(data)
		zp1 := o.Shift(1, z)
		e2 := o.Add(o.Scale(0.3, o.Pow(zp1, 3)), o.Full(z, 0.7))

		return o.Floats(o.Trapezoid(func(x backend.Array) backend.Array {
			return o.Pow(o.Shift(1, o.Mul(x, x)), -0.5)
		}, o.Pow(e2, -0.5), 256))
	}

	got1, got2 := formula(s), formula(v)
	for i := range got1 {
		require.InDelta(t, got1[i], got2[i], 1e-13)
	}
}

func TestSolveBounded_RecoversRoots(t *testing.T) {
	for name, o := range bundles() {
		t.Run(name, func(t *testing.T) {
			square := func(x backend.Array) backend.Array { return o.Mul(x, x) }
			target := o.Lift([]float64{4, 9, 0.25})

			got, err := o.SolveBounded(square, target, 0, 10, 80, 1e-10)
			require.NoError(t, err)

			want := []float64{2, 3, 0.5}
			for i, w := range want {
				require.InDelta(t, w, o.Floats(got)[i], 1e-9)
			}
		})
	}
}

func TestSolveBounded_Failures(t *testing.T) {
	o := backend.Slice()
	square := func(x backend.Array) backend.Array { return o.Mul(x, x) }

	// Target above f(hi).
	_, err := o.SolveBounded(square, o.Lift([]float64{200}), 0, 10, 80, 1e-10)
	require.ErrorIs(t, err, backend.ErrConvergence)

	// Target below f(lo).
	_, err = o.SolveBounded(square, o.Lift([]float64{-1}), 0, 10, 80, 1e-10)
	require.ErrorIs(t, err, backend.ErrConvergence)

	// Iteration budget cannot reach the tolerance.
	_, err = o.SolveBounded(square, o.Lift([]float64{4}), 0, 10, 3, 1e-10)
	require.ErrorIs(t, err, backend.ErrConvergence)

	// Empty bracket.
	_, err = o.SolveBounded(square, o.Lift([]float64{4}), 5, 5, 80, 1e-10)
	require.ErrorIs(t, err, backend.ErrConvergence)
}

func TestRegistry_CustomRegistration(t *testing.T) {
	r := backend.NewRegistry(backend.Slice())

	_, err := r.For(mat.NewVecDense(1, []float64{1}))
	require.ErrorIs(t, err, backend.ErrUnsupportedBackend)

	r.Register(backend.Vec())
	ops, err := r.For(mat.NewVecDense(1, []float64{1}))
	require.NoError(t, err)
	require.Equal(t, "vec", ops.Backend())
}

func TestRegistry_ErrorsMentionOffender(t *testing.T) {
	_, err := backend.For([]int32{5})
	require.Error(t, err)
	require.True(t, errors.Is(err, backend.ErrUnsupportedBackend))
	require.Contains(t, err.Error(), "[]int32")
}
