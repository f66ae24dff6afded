// Package backend: the vector backend. Owns *mat.VecDense and builds its
// kernels on gonum/mat; quadrature delegates to gonum/integrate.

package backend

import (
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
)

// vecOps is the stateless bundle for *mat.VecDense arrays.
type vecOps struct{}

// vecSingleton is shared by every dispatch; the bundle carries no state.
var vecSingleton Ops = vecOps{}

// Vec returns the operation bundle owning *mat.VecDense arrays.
func Vec() Ops { return vecSingleton }

func (vecOps) Backend() string { return "vec" }

func (vecOps) Owns(a Array) bool {
	_, ok := a.(*mat.VecDense)

	return ok
}

func (vecOps) Len(a Array) int { return a.(*mat.VecDense).Len() }

func (vecOps) Lift(xs []float64) Array {
	data := make([]float64, len(xs))
	copy(data, xs)

	return mat.NewVecDense(len(data), data)
}

func (vecOps) Floats(a Array) []float64 {
	v := a.(*mat.VecDense)
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}

func (vecOps) Full(like Array, v float64) Array {
	n := like.(*mat.VecDense).Len()
	data := make([]float64, n)
	for i := range data {
		data[i] = v
	}

	return mat.NewVecDense(n, data)
}

func (vecOps) Add(a, b Array) Array {
	av := a.(*mat.VecDense)
	out := mat.NewVecDense(av.Len(), nil)
	out.AddVec(av, b.(*mat.VecDense))

	return out
}

func (vecOps) Sub(a, b Array) Array {
	av := a.(*mat.VecDense)
	out := mat.NewVecDense(av.Len(), nil)
	out.SubVec(av, b.(*mat.VecDense))

	return out
}

func (vecOps) Mul(a, b Array) Array {
	av := a.(*mat.VecDense)
	out := mat.NewVecDense(av.Len(), nil)
	out.MulElemVec(av, b.(*mat.VecDense))

	return out
}

func (vecOps) Div(a, b Array) Array {
	av := a.(*mat.VecDense)
	out := mat.NewVecDense(av.Len(), nil)
	out.DivElemVec(av, b.(*mat.VecDense))

	return out
}

func (vecOps) Scale(c float64, a Array) Array {
	av := a.(*mat.VecDense)
	out := mat.NewVecDense(av.Len(), nil)
	out.ScaleVec(c, av)

	return out
}

// vecMap applies a scalar kernel elementwise; shared by the
// transcendental ops below. Indexing goes through AtVec so strided
// views (Dense column views carry Inc != 1) read correctly.
func vecMap(a Array, f func(float64) float64) Array {
	av := a.(*mat.VecDense)
	data := make([]float64, av.Len())
	for i := range data {
		data[i] = f(av.AtVec(i))
	}

	return mat.NewVecDense(len(data), data)
}

func (vecOps) Shift(c float64, a Array) Array {
	return vecMap(a, func(v float64) float64 { return v + c })
}

func (vecOps) Pow(a Array, p float64) Array {
	return vecMap(a, func(v float64) float64 { return math.Pow(v, p) })
}

func (vecOps) Exp(a Array) Array { return vecMap(a, math.Exp) }

func (vecOps) Log(a Array) Array { return vecMap(a, math.Log) }

func (vecOps) Clip(a Array, lo, hi float64) Array {
	return vecMap(a, func(v float64) float64 { return math.Min(math.Max(v, lo), hi) })
}

func (vecOps) Step(a, b Array) Array {
	av, bv := a.(*mat.VecDense), b.(*mat.VecDense)
	data := make([]float64, av.Len())
	for i := range data {
		if av.AtVec(i) <= bv.AtVec(i) {
			data[i] = 1
		}
	}

	return mat.NewVecDense(len(data), data)
}

func (vecOps) Min(a Array) float64 { return mat.Min(a.(*mat.VecDense)) }

func (vecOps) Max(a Array) float64 { return mat.Max(a.(*mat.VecDense)) }

// Trapezoid samples the integrand on the fixed grid tⱼ = j/n and hands
// each element's sample column to integrate.Trapezoidal, then scales by
// the elementwise upper limit (same substitution as the slice backend).
func (o vecOps) Trapezoid(f Integrand, upper Array, n int) Array {
	u := upper.(*mat.VecDense)

	ts := make([]float64, n+1)
	samples := make([][]float64, n+1)
	for j := 0; j <= n; j++ {
		ts[j] = float64(j) / float64(n)
		samples[j] = o.Floats(f(o.Scale(ts[j], u)))
	}

	data := make([]float64, u.Len())
	ys := make([]float64, n+1)
	for i := range data {
		for j := range ys {
			ys[j] = samples[j][i]
		}
		data[i] = integrate.Trapezoidal(ts, ys) * u.AtVec(i)
	}

	return mat.NewVecDense(len(data), data)
}

func (o vecOps) SolveBounded(f Integrand, target Array, lo, hi float64, maxIter int, tol float64) (Array, error) {
	return bisect(o, f, target, lo, hi, maxIter, tol)
}
