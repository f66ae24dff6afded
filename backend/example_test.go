package backend_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/astrokit/cosmodist/backend"
)

// ExampleFor shows type-keyed dispatch: the same call site serves both
// array libraries without branching on the backend.
func ExampleFor() {
	sliceOps, _ := backend.For([]float64{0.5, 1.0})
	vecOps, _ := backend.For(mat.NewVecDense(2, []float64{0.5, 1.0}))

	fmt.Println(sliceOps.Backend())
	fmt.Println(vecOps.Backend())

	// Output:
	// slice
	// vec
}

// ExampleOps_Trapezoid integrates f(x) = 2x elementwise from 0 to each
// upper limit; the result is exact because the integrand is linear.
func ExampleOps_Trapezoid() {
	o, _ := backend.For([]float64{1, 2, 3})
	double := func(x backend.Array) backend.Array { return o.Scale(2, x) }

	got := o.Trapezoid(double, []float64{1, 2, 3}, 16)
	fmt.Println(o.Floats(got))

	// Output:
	// [1 4 9]
}
