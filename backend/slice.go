// Package backend: the slice backend. Owns []float64 and builds its
// kernels on gonum/floats; transcendental elementwise ops fall back to
// tight math loops, matching the floats style (fixed loop order, one
// output allocation, no hidden state).

package backend

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// sliceOps is the stateless bundle for []float64 arrays.
type sliceOps struct{}

// sliceSingleton is shared by every dispatch; the bundle carries no state.
var sliceSingleton Ops = sliceOps{}

// Slice returns the operation bundle owning []float64 arrays.
func Slice() Ops { return sliceSingleton }

func (sliceOps) Backend() string { return "slice" }

func (sliceOps) Owns(a Array) bool {
	_, ok := a.([]float64)

	return ok
}

func (sliceOps) Len(a Array) int { return len(a.([]float64)) }

func (sliceOps) Lift(xs []float64) Array {
	out := make([]float64, len(xs))
	copy(out, xs)

	return out
}

func (sliceOps) Floats(a Array) []float64 {
	in := a.([]float64)
	out := make([]float64, len(in))
	copy(out, in)

	return out
}

func (sliceOps) Full(like Array, v float64) Array {
	out := make([]float64, len(like.([]float64)))
	for i := range out {
		out[i] = v
	}

	return out
}

func (o sliceOps) Add(a, b Array) Array {
	out := o.Floats(a)
	floats.Add(out, b.([]float64))

	return out
}

func (o sliceOps) Sub(a, b Array) Array {
	out := o.Floats(a)
	floats.Sub(out, b.([]float64))

	return out
}

func (o sliceOps) Mul(a, b Array) Array {
	out := o.Floats(a)
	floats.Mul(out, b.([]float64))

	return out
}

func (o sliceOps) Div(a, b Array) Array {
	out := o.Floats(a)
	floats.Div(out, b.([]float64))

	return out
}

func (sliceOps) Scale(c float64, a Array) Array {
	in := a.([]float64)

	return floats.ScaleTo(make([]float64, len(in)), c, in)
}

func (o sliceOps) Shift(c float64, a Array) Array {
	out := o.Floats(a)
	floats.AddConst(c, out)

	return out
}

func (sliceOps) Pow(a Array, p float64) Array {
	in := a.([]float64)
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = math.Pow(v, p)
	}

	return out
}

func (sliceOps) Exp(a Array) Array {
	in := a.([]float64)
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = math.Exp(v)
	}

	return out
}

func (sliceOps) Log(a Array) Array {
	in := a.([]float64)
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = math.Log(v)
	}

	return out
}

func (sliceOps) Clip(a Array, lo, hi float64) Array {
	in := a.([]float64)
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = math.Min(math.Max(v, lo), hi)
	}

	return out
}

func (sliceOps) Step(a, b Array) Array {
	av, bv := a.([]float64), b.([]float64)
	out := make([]float64, len(av))
	for i := range av {
		if av[i] <= bv[i] {
			out[i] = 1
		}
	}

	return out
}

func (sliceOps) Min(a Array) float64 { return floats.Min(a.([]float64)) }

func (sliceOps) Max(a Array) float64 { return floats.Max(a.([]float64)) }

// Trapezoid accumulates the weighted integrand samples with
// floats.AddScaled, then scales by the elementwise upper limit:
// ∫₀ᵘ f = u · Σⱼ wⱼ f(tⱼ·u) over the fixed grid tⱼ = j/n.
func (sliceOps) Trapezoid(f Integrand, upper Array, n int) Array {
	u := upper.([]float64)
	h := 1.0 / float64(n)
	acc := make([]float64, len(u))
	zt := make([]float64, len(u))
	for j := 0; j <= n; j++ {
		w := h
		if j == 0 || j == n {
			w = h / 2
		}
		floats.ScaleTo(zt, float64(j)*h, u)
		floats.AddScaled(acc, w, f(zt).([]float64))
	}
	floats.Mul(acc, u)

	return acc
}

func (o sliceOps) SolveBounded(f Integrand, target Array, lo, hi float64, maxIter int, tol float64) (Array, error) {
	return bisect(o, f, target, lo, hi, maxIter, tol)
}
